// Package testutils provides shared helpers for tests across the codebase.
//
// Helper functions follow these naming conventions:
//   - Create*: build entities in memory
//   - MustWrite*: write fixture files under t.TempDir, failing the test on error
//   - Assert*: verify conditions in tests
//
// The package also provides TestSlogHandler, a memory-backed slog.Handler
// for asserting on structured log output.
package testutils
