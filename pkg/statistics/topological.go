package statistics

import (
	"fmt"
	"strings"
)

// noCopy lets `go vet` (copylocks) flag TopologicalStatistics values that
// are copied instead of moved.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// TopologicalStatistics holds the structural soundness measures of a mesh:
// edge and body counts plus the edges that violate the two-manifold
// property. The edge list has a single owner. Move and Take transfer it to
// another record and leave the source moved-from; every accessor except
// Moved and String panics on a moved-from record. The zero value is
// moved-from; build records with NewTopologicalStatistics.
//
// Reads of a record that is not being moved are safe from any number of
// goroutines. Moving a record that other goroutines can see requires
// external synchronization.
type TopologicalStatistics struct {
	_ noCopy

	numEdges  int
	numBodies int
	edges     Owned[[]Edge]
}

// NewTopologicalStatistics records the counts and takes ownership of the
// non-two-manifold edge list. nonTwoManifoldEdges is emptied: the caller
// can no longer Get or Take from it. Passing nil or an already-emptied
// container panics.
func NewTopologicalStatistics(numEdges, numBodies int, nonTwoManifoldEdges *Owned[[]Edge]) *TopologicalStatistics {
	if !nonTwoManifoldEdges.Held() {
		panic("statistics: NewTopologicalStatistics requires a held edge list")
	}
	checkTopological(numEdges, numBodies)

	return &TopologicalStatistics{
		numEdges:  numEdges,
		numBodies: numBodies,
		edges:     Owned[[]Edge]{v: nonTwoManifoldEdges.Take(), held: true},
	}
}

// Moved reports whether the record's contents have been transferred away.
func (t *TopologicalStatistics) Moved() bool {
	return !t.edges.held
}

// NumEdges returns the number of edges in the mesh.
func (t *TopologicalStatistics) NumEdges() int {
	t.mustBeValid("NumEdges")
	return t.numEdges
}

// NumBodies returns the number of connected components.
func (t *TopologicalStatistics) NumBodies() int {
	t.mustBeValid("NumBodies")
	return t.numBodies
}

// IsTwoManifold reports whether no edge violates the two-manifold
// property. It reads the edge list on every call.
func (t *TopologicalStatistics) IsTwoManifold() bool {
	t.mustBeValid("IsTwoManifold")
	return len(t.edges.v) == 0
}

// NonTwoManifoldEdges returns the owned edge list. The slice shares
// storage with the record and must not be modified.
func (t *TopologicalStatistics) NonTwoManifoldEdges() []Edge {
	t.mustBeValid("NonTwoManifoldEdges")
	return t.edges.v
}

// HasNonTwoManifoldEdge reports whether e, in either orientation, is in
// the non-two-manifold edge list.
func (t *TopologicalStatistics) HasNonTwoManifoldEdge(e Edge) bool {
	t.mustBeValid("HasNonTwoManifoldEdge")
	for _, x := range t.edges.v {
		if x.Equal(e) {
			return true
		}
	}
	return false
}

// Move transfers the record's contents to a new record and leaves t
// moved-from.
func (t *TopologicalStatistics) Move() *TopologicalStatistics {
	t.mustBeValid("Move")
	dst := &TopologicalStatistics{}
	dst.Take(t)
	return dst
}

// Take replaces t's contents with src's and leaves src moved-from. t may
// itself be moved-from. t.Take(t) does nothing.
func (t *TopologicalStatistics) Take(src *TopologicalStatistics) {
	if src == t {
		return
	}
	src.mustBeValid("Take")

	t.numEdges = src.numEdges
	t.numBodies = src.numBodies
	t.edges = Owned[[]Edge]{v: src.edges.Take(), held: true}

	src.numEdges = 0
	src.numBodies = 0
}

func (t *TopologicalStatistics) String() string {
	if t.Moved() {
		return "TopologicalStatistics{moved}"
	}
	parts := make([]string, len(t.edges.v))
	for i, e := range t.edges.v {
		parts[i] = e.String()
	}
	return fmt.Sprintf(
		"TopologicalStatistics{edges=%d bodies=%d two-manifold=%t non-manifold=[%s]}",
		t.numEdges, t.numBodies, len(t.edges.v) == 0, strings.Join(parts, " "),
	)
}

func (t *TopologicalStatistics) mustBeValid(op string) {
	if t.Moved() {
		panic(fmt.Sprintf("statistics: TopologicalStatistics.%s on moved-from record", op))
	}
}
