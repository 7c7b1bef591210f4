package scene

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"

	"github.com/Faultbox/printsim/pkg/math"
)

// ReadOFF decodes an OFF triangle mesh into a single-mesh model. Shared
// vertices are welded so the mesh is indexed.
func ReadOFF(r io.Reader, name string) (*Model, error) {
	triangles, err := model3d.ReadOFF(r)
	if err != nil {
		return nil, errors.Wrap(err, "read OFF")
	}

	positions := make([]math.Vec3, 0, len(triangles)*3)
	for _, tri := range triangles {
		for _, c := range tri {
			positions = append(positions, math.Vec3{
				X: float32(c.X),
				Y: float32(c.Y),
				Z: float32(c.Z),
			})
		}
	}

	mesh := NewMesh(name, positions, nil).Weld(DefaultWeldEpsilon)
	return NewModel(name, mesh), nil
}

// LoadOFF reads an OFF file. The model is named after the file.
func LoadOFF(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open model")
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	model, err := ReadOFF(f, name)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return model, nil
}
