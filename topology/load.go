package topology

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvrbd/core"
)

// Topology is a validated, buildable network description.
type Topology struct {
	Name         string
	Graph        *core.Graph
	Availability map[core.NodeID]float64
	Names        map[core.NodeID]string
}

// Load reads and builds the topology at path.
func Load(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("topology: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML, rejecting unknown fields, then validates and builds.
func Parse(data []byte) (*Topology, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInvalidTopology)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidTopology, err)
	}

	return f.Build()
}

// Build validates f and converts it to a graph plus availability map.
// Nodes are added in declaration order, so dense relabelling follows the
// file.
//
// Errors (all wrap ErrInvalidTopology):
//   - struct-tag violations.
//   - duplicate node ids, links naming undeclared nodes, duplicate links.
//   - a node with neither its own availability nor a file default.
func (f *File) Build() (*Topology, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	t := &Topology{
		Name:         f.Name,
		Graph:        core.NewGraph(core.WithCapacity(len(f.Nodes))),
		Availability: make(map[core.NodeID]float64, len(f.Nodes)),
		Names:        make(map[core.NodeID]string),
	}
	for i, n := range f.Nodes {
		id := core.NodeID(n.ID)
		if t.Graph.HasNode(id) {
			return nil, fmt.Errorf("nodes[%d]: duplicate id %d: %w", i, n.ID, ErrInvalidTopology)
		}
		p := f.DefaultAvailability
		if n.Availability != nil {
			p = n.Availability
		}
		if p == nil {
			return nil, fmt.Errorf("nodes[%d]: id %d has no availability and no default is set: %w", i, n.ID, ErrInvalidTopology)
		}
		t.Graph.AddNode(id)
		t.Availability[id] = *p
		if n.Name != "" {
			t.Names[id] = n.Name
		}
	}
	for i, l := range f.Links {
		a, b := core.NodeID(l.A), core.NodeID(l.B)
		if !t.Graph.HasNode(a) || !t.Graph.HasNode(b) {
			return nil, fmt.Errorf("links[%d]: %d-%d names an undeclared node: %w", i, l.A, l.B, ErrInvalidTopology)
		}
		w := core.DefaultWeight
		if l.Weight != nil {
			w = *l.Weight
		}
		if err := t.Graph.AddEdge(a, b, w); err != nil {
			return nil, fmt.Errorf("links[%d]: %w: %w", i, ErrInvalidTopology, err)
		}
	}

	return t, nil
}

// Label returns the display name of id, or its number when unnamed.
func (t *Topology) Label(id core.NodeID) string {
	if name, ok := t.Names[id]; ok {
		return name
	}

	return fmt.Sprint(int(id))
}
