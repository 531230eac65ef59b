package scene

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
)

func TestLoad(t *testing.T) {
	obj, err := Load(filepath.Join("testdata", "station.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if obj.Name != "station" {
		t.Errorf("root name = %q, want %q", obj.Name, "station")
	}
	if got := len(obj.Faces()); got != 1 {
		t.Errorf("root has %d faces, want 1", got)
	}
	kids := obj.Children()
	if len(kids) != 2 {
		t.Fatalf("root has %d children, want 2", len(kids))
	}

	platform := kids[0]
	if platform.Name != "platform" {
		t.Errorf("child name = %q, want %q", platform.Name, "platform")
	}
	if platform.Position != geom.V(1, 1, 0) {
		t.Errorf("child position = %s", platform.Position)
	}
	if platform.Rotation != geom.Rotate90 {
		t.Errorf("child rotation = %v, want %v", platform.Rotation, geom.Rotate90)
	}
	if got := len(platform.Children()); got != 1 {
		t.Errorf("platform has %d children, want 1", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does-not-exist.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want FILE_NOT_FOUND", errors.GetCode(err))
	}
}

func TestDecodeDefaults(t *testing.T) {
	obj, err := Decode([]byte(`
[[faces]]
points = [[0, 0, 0], [1, 0, 0], [1, 1, 0]]
`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if obj.Name != "object" {
		t.Errorf("default name = %q, want %q", obj.Name, "object")
	}
	if obj.Position != geom.V(0, 0, 0) {
		t.Errorf("default position = %s", obj.Position)
	}
	if obj.Rotation != geom.Rotate0 {
		t.Errorf("default rotation = %v", obj.Rotation)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantIn  string
		wantErr errors.Code
	}{
		{
			name:    "BadRotation",
			data:    "name = \"a\"\nrotation = 45\n",
			wantErr: errors.ErrCodeInvalidRotation,
		},
		{
			name:   "ShortPosition",
			data:   "name = \"a\"\nposition = [1, 2]\n",
			wantIn: "want 3 components",
		},
		{
			name:    "BadFace",
			data:    "name = \"a\"\n[[faces]]\npoints = [[0, 0, 0], [1, 0, 0]]\n",
			wantErr: errors.ErrCodeInvalidFace,
		},
		{
			name:   "BadFacePoint",
			data:   "name = \"a\"\n[[faces]]\npoints = [[0, 0], [1, 0, 0], [1, 1, 0]]\n",
			wantIn: "face 0",
		},
		{
			name: "BadChild",
			data: `name = "a"

[[objects]]
name = "b"
rotation = 30
`,
			wantErr: errors.ErrCodeInvalidRotation,
			wantIn:  "a/b",
		},
		{
			name:   "NotTOML",
			data:   "{not toml}",
			wantIn: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("Decode succeeded, want error")
			}
			if tt.wantErr != "" && !errors.Is(err, tt.wantErr) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.wantErr)
			}
			if tt.wantIn != "" && !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("error %q does not mention %q", err, tt.wantIn)
			}
		})
	}
}

func TestLoadBadScene(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "bad-rotation.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidScene) {
		t.Errorf("code = %v, want INVALID_SCENE", errors.GetCode(err))
	}
}
