// Package main hosts the mixtape CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into the three
// conversion pipelines (timeline synthesis, chapter formatting, Ableton
// project extraction) plus configuration scaffolding. It centralizes
// configuration resolution, logging setup, and status/table rendering so
// subcommands can focus on argument handling and stream conventions.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
