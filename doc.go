// Package ecap turns raw evoked compound action potential (ECAP)
// recordings into clean, analyzable neural responses — from long-form
// measurement tables to artifact-free traces and stacked figures.
//
// 🚀 What is ecap?
//
//	A small, deterministic library for ECAP post-processing that brings together:
//		• Template subtraction: zero-template, scaled and arctan-damped variants
//		• Alternating stimulation: weighted anodic/cathodic summation
//		• Dataset extraction: long-form tables → aligned signal/current/time arrays
//		• Visualization: paired anodic/cathodic traces, one panel per current level
//		• Synthetic fixtures: seed-stable ECAP recordings and tables for tests
//
// ✨ Why ecap?
//
//   - Explicit contracts – every shape and domain violation is a sentinel error
//   - Deterministic – pure functions over immutable inputs, no global state
//   - Robust extraction – marker-based row lookup, cross-polarity validation
//   - Honest scope – loading instrument files and threshold statistics stay out
//
// Everything is organized under four subpackages:
//
//	artifact/ — stimulation-artifact removal on []float64 signals
//	dataset/  — measurement table model and electrode-pair extraction
//	ecapplot/ — figure styling and rendering of extraction results
//	builder/  — deterministic synthetic recordings & tables
//
// Quick sketch of the pipeline:
//
//	table ──extract──▶ anodic/cathodic signals ──subtract──▶ ECAP ──render──▶ figure
//
// See each package's doc.go for contracts, error sets and examples.
//
//	go get github.com/openecap/ecap
package ecap
