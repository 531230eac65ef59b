package cli

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/wireview/wireview/pkg/errors"
)

// resolveColor turns a --color flag value into the explicit enablement
// boolean the renderer takes. "auto" checks whether stdout is an interactive
// terminal.
func resolveColor(mode string) (bool, error) {
	switch strings.ToLower(mode) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "", "auto":
		fd := os.Stdout.Fd()
		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd), nil
	}
	return false, errors.New(errors.ErrCodeInvalidColorMode, "unknown color mode %q (want auto, always, or never)", mode)
}
