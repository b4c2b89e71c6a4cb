package sdp

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvrbd/core"
)

// ParallelThreshold is the path count below which FromPathsParallel falls
// back to the sequential builder.
const ParallelThreshold = 200

// Product is a conjunction over Nodes: all up when Complement is false,
// "not all up" when Complement is true. Nodes is ascending.
type Product struct {
	Nodes      []core.NodeID
	Complement bool
}

// Group is a conjunction of products; distinct groups are disjoint events.
type Group []Product

// String renders p as "{1 2}" or "¬{3 4}".
func (p Product) String() string {
	var b strings.Builder
	if p.Complement {
		b.WriteString("¬")
	}
	b.WriteByte('{')
	for i, id := range p.Nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteByte('}')

	return b.String()
}

// String renders g as its products joined by spaces.
func (g Group) String() string {
	parts := make([]string, len(g))
	for i, p := range g {
		parts[i] = p.String()
	}

	return strings.Join(parts, " ")
}

// sameKind reports whether a and b are both normal or both complemented.
func sameKind(a, b Product) bool { return a.Complement == b.Complement }

// within reports whether every node of a is in b. Both are ascending.
func within(a, b []core.NodeID) bool {
	for _, id := range a {
		if _, ok := slices.BinarySearch(b, id); !ok {
			return false
		}
	}

	return true
}

// intersect returns the ascending intersection of two ascending slices.
func intersect(a, b []core.NodeID) []core.NodeID {
	var out []core.NodeID
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// difference returns the ascending elements of a missing from b.
func difference(a, b []core.NodeID) []core.NodeID {
	var out []core.NodeID
	for _, id := range a {
		if _, ok := slices.BinarySearch(b, id); !ok {
			out = append(out, id)
		}
	}

	return out
}
