// Package internal contains the core implementation packages for sitegen.
//
// This package follows Go's internal package convention, making these
// packages unavailable for import by external modules while providing
// all the core functionality for the sitegen CLI tool.
//
// # Package Organization
//
// The internal packages are organized by functional domain:
//
//   - plan: Precomputed page metadata table with neighbor and hub indices
//   - content: Language-keyed data banks, text assembly, and UI strings
//   - links: Internal and external link sampling against the plan
//   - render: Article and aggregate page markup, structured data
//   - site: Emission to disk, checkpointing, feeds, sitemaps, compression
//   - config: Configuration management with validation
//   - errors: Per-page error collection across an emission run
//   - logging: Structured logging shared across the generator
//   - watcher: File system monitoring with debouncing
//   - version: Build-time version information
//
// # Design Principles
//
// Generation is strictly two-phase: the plan is built completely in memory
// before any file is written, so every emitted link resolves to a page that
// exists by the end of the run. Emission failures for individual pages are
// collected, never fatal; failures preparing shared output abort the run.
package internal
