// Package model defines the report data structures shared by the anchor
// scanner and the report writers.
//
// This package contains the following main types:
//   - ScanReport: the anchors of one source that matched a phrase
//   - AnchorFinding: a single matched anchor
//   - RewriteReport: the anchors whose href was replaced
//
// The models live in their own package so that the scanner and the
// writers can both use them without importing each other.
//
// All types are serializable to JSON for report output.
package model
