package topology

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrbd/core"
)

// FromGraph describes g as a File. Every node gets availability def unless
// avail overrides it; weights equal to core.DefaultWeight are omitted.
func FromGraph(name string, g *core.Graph, def float64, avail map[core.NodeID]float64) *File {
	f := &File{Name: name, DefaultAvailability: &def}
	for _, id := range g.Nodes() {
		spec := NodeSpec{ID: int(id)}
		if p, ok := avail[id]; ok && p != def {
			spec.Availability = &p
		}
		f.Nodes = append(f.Nodes, spec)
	}
	for _, e := range g.Edges() {
		link := LinkSpec{A: int(e.From), B: int(e.To)}
		if e.Weight != core.DefaultWeight {
			w := e.Weight
			link.Weight = &w
		}
		f.Links = append(f.Links, link)
	}

	return f
}

// Marshal validates f and renders it as YAML.
func (f *File) Marshal() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("topology: encode: %w", err)
	}

	return out, nil
}
