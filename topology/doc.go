// Package topology builds the canonical open-graph shapes spec.md's seed
// scenarios and MBQC practice use — linear chains, square-grid cluster
// states, and disjoint unions of either — plus a ConnectedComponents
// diagnostic used only by tests to assert the disjoint-union property.
//
// Unlike the teacher's builder package, a constructor here returns the
// plain (n, edges) pair rather than mutating a live graph.Graph: that
// pair is exactly convert's input shape (spec.md §6), so a caller feeds
// a topology constructor straight into convert.ToGraph.
package topology
