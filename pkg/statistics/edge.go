package statistics

import "fmt"

// VertexID identifies a mesh vertex. It has the same width as the
// triangle indices of a mesh.
type VertexID uint32

// Edge is an unordered pair of vertices. (3,7) and (7,3) name the same
// edge; use Equal rather than == when either side may not be canonical.
type Edge struct {
	V0 VertexID
	V1 VertexID
}

// NewEdge returns the canonical edge between a and b (V0 <= V1).
func NewEdge(a, b VertexID) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{V0: a, V1: b}
}

// Canonical returns e with its endpoints ordered so that V0 <= V1.
func (e Edge) Canonical() Edge {
	return NewEdge(e.V0, e.V1)
}

// Equal reports whether e and o join the same two vertices.
func (e Edge) Equal(o Edge) bool {
	return e.Canonical() == o.Canonical()
}

// Contains reports whether v is an endpoint of e.
func (e Edge) Contains(v VertexID) bool {
	return e.V0 == v || e.V1 == v
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d)", e.V0, e.V1)
}
