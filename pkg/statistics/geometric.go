package statistics

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
)

// GeometricStatistics holds the size and shape measures of a mesh as
// reported by an analysis pass. It is a read-only value: the bounding box
// is stored by value, so every copy of the record owns its own box.
//
// Volume is stored exactly as reported. Its sign convention (for example,
// negative for inward-facing orientation) belongs to whatever produced it.
type GeometricStatistics struct {
	numVertices   int
	numTriangles  int
	area          float64
	volume        float64
	minEdgeLength float64
	maxEdgeLength float64
	boundingBox   sdf.Box3
}

// NewGeometricStatistics records already-computed measures. The caller is
// trusted to pass self-consistent values; with the meshstatsdebug build tag
// inconsistent input panics instead.
//
// A mesh without triangles has no edges; pass 0 for both edge lengths.
func NewGeometricStatistics(
	numVertices, numTriangles int,
	area, volume float64,
	minEdgeLength, maxEdgeLength float64,
	boundingBox sdf.Box3,
) GeometricStatistics {
	checkGeometric(numVertices, numTriangles, area, minEdgeLength, maxEdgeLength, boundingBox)

	return GeometricStatistics{
		numVertices:   numVertices,
		numTriangles:  numTriangles,
		area:          area,
		volume:        volume,
		minEdgeLength: minEdgeLength,
		maxEdgeLength: maxEdgeLength,
		boundingBox:   boundingBox,
	}
}

// NumVertices returns the number of vertices.
func (s GeometricStatistics) NumVertices() int {
	return s.numVertices
}

// NumTriangles returns the number of triangles.
func (s GeometricStatistics) NumTriangles() int {
	return s.numTriangles
}

// Area returns the total surface area.
func (s GeometricStatistics) Area() float64 {
	return s.area
}

// Volume returns the enclosed volume.
func (s GeometricStatistics) Volume() float64 {
	return s.volume
}

// MinEdgeLength returns the length of the shortest edge.
func (s GeometricStatistics) MinEdgeLength() float64 {
	return s.minEdgeLength
}

// MaxEdgeLength returns the length of the longest edge.
func (s GeometricStatistics) MaxEdgeLength() float64 {
	return s.maxEdgeLength
}

// BoundingBox returns a copy of the axis-aligned bounding box.
func (s GeometricStatistics) BoundingBox() sdf.Box3 {
	return s.boundingBox
}

// EdgeLengthsDefined reports whether MinEdgeLength and MaxEdgeLength
// describe real edges. They do not when the mesh has no triangles.
func (s GeometricStatistics) EdgeLengthsDefined() bool {
	return s.numTriangles > 0
}

func (s GeometricStatistics) String() string {
	bb := s.boundingBox
	edges := "n/a"
	if s.EdgeLengthsDefined() {
		edges = fmt.Sprintf("[%g, %g]", s.minEdgeLength, s.maxEdgeLength)
	}
	return fmt.Sprintf(
		"GeometricStatistics{vertices=%d triangles=%d area=%g volume=%g edges=%s bbox=[(%g,%g,%g) (%g,%g,%g)]}",
		s.numVertices, s.numTriangles, s.area, s.volume, edges,
		bb.Min.X, bb.Min.Y, bb.Min.Z, bb.Max.X, bb.Max.Y, bb.Max.Z,
	)
}
