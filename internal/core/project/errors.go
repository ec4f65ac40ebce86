// Package project implements the "volt init" workflow: option resolution,
// directory scaffolding, concurrent rendering of the generated file set,
// version-control initialization, and dependency installation.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrTargetExists indicates the target directory already exists and
	// neither --force nor the overwrite confirmation allowed reuse.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrEmptyName indicates no project name was supplied.
	ErrEmptyName = errors.New("project name must not be empty")
)
