// Package code39 implements the Code 39 linear barcode symbology.
//
// Code 39 encodes each character as nine elements (five bars and four
// spaces), exactly three of which are wide. This package provides the
// static symbol table, input validation against the supported repertoire,
// and encoding of a message into a flat element stream bracketed by the
// '*' start/stop sentinel.
//
// The symbol table is initialized once at process start and never
// mutated, so all functions are safe for unrestricted concurrent use.
// Rendering of encoded sequences lives in the render package.
package code39
