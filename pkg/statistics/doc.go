// Package statistics defines the immutable result records a mesh analysis
// pass reports: GeometricStatistics (size and shape measures) and
// TopologicalStatistics (edge/body counts and non-two-manifold edges).
// The records store already-computed values; nothing here inspects a mesh.
package statistics
