// Package database implements "volt database": adapter setup-file emission
// keyed by engine type, and the migration/seed runner that applies the
// project's SQL files in filename order.
package database

import "errors"

// Sentinel errors for the database package.
var (
	// ErrUnsupportedType indicates an engine name with no registered
	// renderer. Unlike feature tags, adapter types select a required,
	// mutually-exclusive code path and are rejected hard.
	ErrUnsupportedType = errors.New("unsupported database type")

	// ErrNoDatabaseURL indicates DATABASE_URL is unset in both .env and
	// the environment.
	ErrNoDatabaseURL = errors.New("DATABASE_URL not set (in .env or environment)")

	// ErrNotPostgres indicates live migration execution was requested for
	// an engine the built-in runner cannot drive.
	ErrNotPostgres = errors.New("built-in migration runner supports postgresql only; use the generated runner script for other engines")
)
