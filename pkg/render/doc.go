// Package render turns encoded Code 39 element streams into visual
// output. Two sinks are provided: a single-line block-character
// rendering for terminals and an SVG document for scalable output.
// Both consume the same code39.Sequence and share one Config.
package render
