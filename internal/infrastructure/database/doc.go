// Package database manages the SQLite connection and schema migrations
// for FitTrack Core.
//
// The connection is opened with WAL mode, a busy timeout, and foreign
// keys enabled, and is capped at a single writer to match SQLite's
// concurrency model. Schema migrations are plain SQL files embedded into
// the binary by the top-level migrations package and applied in version
// order, one transaction per migration.
package database
