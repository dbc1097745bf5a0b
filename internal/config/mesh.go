package config

import (
	"fmt"

	"github.com/katalvlaran/harmonic/builder"
	"github.com/katalvlaran/harmonic/mesh"
)

// Build generates the configured mesh.
func (m MeshConfig) Build() (*mesh.Mesh, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	bopts := []builder.BuilderOption{builder.WithSpacing(m.Spacing)}
	if m.Jitter > 0 {
		bopts = append(bopts, builder.WithSeed(m.Seed), builder.WithJitter(m.Jitter))
	}

	var con builder.Constructor
	switch m.Kind {
	case KindGrid:
		con = builder.Grid(m.Rows, m.Cols)
	case KindTriangle:
		con = builder.Triangle()
	case KindFan:
		con = builder.Fan(m.Rim)
	case KindTetra:
		con = builder.TetraBlock(m.NX, m.NY, m.NZ)
	case KindPlatonic:
		name, _ := builder.ParsePlatonicName(m.Solid)
		con = builder.PlatonicSolid(name)
	}
	out, err := builder.BuildMesh(bopts, con)
	if err != nil {
		return nil, fmt.Errorf("mesh %s: %w", m.Kind, err)
	}

	return out, nil
}
