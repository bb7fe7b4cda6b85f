// Package pkg provides the core libraries for code39 barcode generation.
//
// # Overview
//
// code39 encodes text strings as Code 39 linear barcodes. The pkg
// directory is organized into four main areas:
//
//  1. [code39] - Symbology (symbol table, validation, encoding)
//  2. [render] - Output sinks (block-character text, SVG)
//  3. [pipeline] - Orchestration (validate → encode → render)
//  4. [cache], [errors], [buildinfo] - Supporting infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Input text
//	     ↓
//	[code39] package (validate against the repertoire, encode elements)
//	     ↓
//	[render] package (text art or SVG document)
//	     ↓
//	Terminal/file/HTTP output
//
// # Quick Start
//
//	cfg := render.DefaultConfig()
//	cfg.Format = render.FormatSVG
//	svg, err := pipeline.Generate("CODE 39", cfg)
package pkg
