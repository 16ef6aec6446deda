//go:build meshstatsdebug

package statistics

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
)

// checkGeometric panics when the values passed to NewGeometricStatistics
// contradict each other. Enabled with -tags=meshstatsdebug.
func checkGeometric(numVertices, numTriangles int, area, minEdge, maxEdge float64, bb sdf.Box3) {
	if numVertices < 0 {
		panic(fmt.Sprintf("statistics: vertex count is %d, must be >= 0", numVertices))
	}
	if numTriangles < 0 {
		panic(fmt.Sprintf("statistics: triangle count is %d, must be >= 0", numTriangles))
	}
	if area < 0 {
		panic(fmt.Sprintf("statistics: area is %.6g, must be >= 0", area))
	}
	if minEdge < 0 || maxEdge < 0 {
		panic(fmt.Sprintf("statistics: edge lengths [%.6g, %.6g] must be >= 0", minEdge, maxEdge))
	}
	if numTriangles > 0 && minEdge > maxEdge {
		panic(fmt.Sprintf("statistics: min edge length %.6g exceeds max edge length %.6g", minEdge, maxEdge))
	}
	if bb.Min.X > bb.Max.X {
		panic(fmt.Sprintf("statistics: bounding box X is inverted (min %.6g > max %.6g)", bb.Min.X, bb.Max.X))
	}
	if bb.Min.Y > bb.Max.Y {
		panic(fmt.Sprintf("statistics: bounding box Y is inverted (min %.6g > max %.6g)", bb.Min.Y, bb.Max.Y))
	}
	if bb.Min.Z > bb.Max.Z {
		panic(fmt.Sprintf("statistics: bounding box Z is inverted (min %.6g > max %.6g)", bb.Min.Z, bb.Max.Z))
	}
}

// checkTopological panics on negative counts.
func checkTopological(numEdges, numBodies int) {
	if numEdges < 0 {
		panic(fmt.Sprintf("statistics: edge count is %d, must be >= 0", numEdges))
	}
	if numBodies < 0 {
		panic(fmt.Sprintf("statistics: body count is %d, must be >= 0", numBodies))
	}
}
