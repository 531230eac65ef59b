package cli

import (
	"testing"

	"github.com/wireview/wireview/pkg/errors"
)

func TestResolveColor(t *testing.T) {
	if got, err := resolveColor("always"); err != nil || !got {
		t.Errorf("resolveColor(always) = %v, %v; want true", got, err)
	}
	if got, err := resolveColor("Never"); err != nil || got {
		t.Errorf("resolveColor(Never) = %v, %v; want false", got, err)
	}
	// auto depends on whether stdout is a terminal; it just must not fail.
	for _, mode := range []string{"auto", ""} {
		if _, err := resolveColor(mode); err != nil {
			t.Errorf("resolveColor(%q) failed: %v", mode, err)
		}
	}
	_, err := resolveColor("rainbow")
	if !errors.Is(err, errors.ErrCodeInvalidColorMode) {
		t.Errorf("code = %v, want INVALID_COLOR_MODE", errors.GetCode(err))
	}
}
