// Package term defines signed literals, conjunctive terms and the
// probability map used to evaluate them.
//
// A Literal is a node id with a sign: positive means the node is
// operational, negative means it has failed. Zero is never a valid literal,
// which is why evaluated graphs carry dense ids starting at 1.
package term

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvrbd/core"
)

var (
	// ErrUnknownNode is returned when a literal references a node the
	// probability map does not cover.
	ErrUnknownNode = errors.New("term: node not in probability map")

	// ErrZeroLiteral is returned for the reserved literal 0 or a node id ≤ 0.
	ErrZeroLiteral = errors.New("term: literal must reference a positive node id")

	// ErrInvalidProbability is returned for probabilities outside [0,1].
	ErrInvalidProbability = errors.New("term: probability out of [0,1]")
)

// Literal is a signed node reference.
type Literal int

// Up is the literal "id is operational".
func Up(id core.NodeID) Literal { return Literal(id) }

// Down is the literal "id has failed".
func Down(id core.NodeID) Literal { return Literal(-id) }

// Node returns the referenced node.
func (l Literal) Node() core.NodeID {
	if l < 0 {
		return core.NodeID(-l)
	}

	return core.NodeID(l)
}

// Operational reports whether l is positive.
func (l Literal) Operational() bool { return l > 0 }

// Negate flips the sign.
func (l Literal) Negate() Literal { return -l }

// Term is an ordered conjunction of literals.
type Term []Literal

// Extend returns a new Term with l appended; t is left untouched.
func (t Term) Extend(l Literal) Term {
	out := make(Term, len(t), len(t)+1)
	copy(out, t)

	return append(out, l)
}

// Contains reports whether l occurs in t.
func (t Term) Contains(l Literal) bool { return slices.Contains(t, l) }

// Conflicts reports whether some literal of t occurs negated in other, in
// which case the two events are mutually exclusive.
func (t Term) Conflicts(other Term) bool {
	for _, l := range t {
		if other.Contains(l.Negate()) {
			return true
		}
	}

	return false
}

// Key renders t as a stable map key.
func (t Term) Key() string {
	var b strings.Builder
	for i, l := range t {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(l)))
	}

	return b.String()
}

// String renders t as "[2 -5 7]".
func (t Term) String() string {
	return "[" + strings.ReplaceAll(t.Key(), ",", " ") + "]"
}

// Of builds a Term from raw signed integers.
func Of(lits ...int) Term {
	out := make(Term, len(lits))
	for i, l := range lits {
		out[i] = Literal(l)
	}

	return out
}
