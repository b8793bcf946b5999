// Package sqlite stores deck snapshots in a SQLite database file using the
// pure-Go modernc.org/sqlite driver. The schema is managed by goose
// migrations embedded in the binary and applied whenever a database is
// opened.
//
// Each Save replaces the stored cards inside one transaction and appends a
// row to the snapshots table recording the session that wrote it.
package sqlite
