// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for the install hot paths:
//   - locales.cue decoding and schema validation
//   - config loading with a project file
//   - a full install pass over a populated locales package
//
// Run with:
//
//	go test -bench=. -benchmem ./internal/benchmark/
package benchmark
