// Package scene loads object trees from TOML scene files.
//
// A scene file describes one root object; children nest recursively:
//
//	name = "station"
//	position = [0, 0, 0]
//	rotation = 0
//
//	[[faces]]
//	points = [[0, 0, 0], [4, 0, 0], [4, 4, 0], [0, 4, 0]]
//
//	[[objects]]
//	name = "platform"
//	position = [1, 1, 0]
//	rotation = 90
//
//	[[objects.faces]]
//	points = [[0, 0, 0], [2, 0, 0], [2, 0, 2], [0, 0, 2]]
//
// Positions are [x, y, z] triples; omitted positions default to the origin.
// Rotations are degrees about the vertical axis and must be multiples of 90.
package scene

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/wireview/wireview/pkg/errors"
	"github.com/wireview/wireview/pkg/geom"
)

type objectDoc struct {
	Name     string      `toml:"name"`
	Position []float64   `toml:"position"`
	Rotation float64     `toml:"rotation"`
	Faces    []faceDoc   `toml:"faces"`
	Objects  []objectDoc `toml:"objects"`
}

type faceDoc struct {
	Points [][]float64 `toml:"points"`
}

// Load reads and decodes a scene file into an object tree.
func Load(path string) (*geom.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "read scene file %s", path)
	}
	obj, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "scene file %s", path)
	}
	return obj, nil
}

// Decode parses TOML scene data into an object tree.
func Decode(data []byte) (*geom.Object, error) {
	var doc objectDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	name := doc.Name
	if name == "" {
		name = "scene"
	}
	return build(doc, name)
}

// build constructs one object node; path is the slash-joined name chain used
// in error messages.
func build(doc objectDoc, path string) (*geom.Object, error) {
	name := doc.Name
	if name == "" {
		name = "object"
	}

	position, err := vector(doc.Position)
	if err != nil {
		return nil, fmt.Errorf("%s: position: %w", path, err)
	}
	rotation, err := geom.NewRotation(doc.Rotation)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	obj := geom.NewObject(name, position, rotation)
	for i, f := range doc.Faces {
		points := make([]geom.Vector, 0, len(f.Points))
		for _, p := range f.Points {
			v, err := vector(p)
			if err != nil {
				return nil, fmt.Errorf("%s: face %d: %w", path, i, err)
			}
			points = append(points, v)
		}
		if err := obj.AddFace(points...); err != nil {
			return nil, fmt.Errorf("%s: face %d: %w", path, i, err)
		}
	}

	for _, childDoc := range doc.Objects {
		childName := childDoc.Name
		if childName == "" {
			childName = "object"
		}
		child, err := build(childDoc, path+"/"+childName)
		if err != nil {
			return nil, err
		}
		obj.Attach(child)
	}
	return obj, nil
}

func vector(values []float64) (geom.Vector, error) {
	switch len(values) {
	case 0:
		return geom.Vector{}, nil
	case 3:
		return geom.V(values[0], values[1], values[2]), nil
	}
	return geom.Vector{}, fmt.Errorf("want 3 components, got %d", len(values))
}
