package config

import "errors"

// Sentinel errors for the config package.
var (
	// ErrManifestNotFound indicates the working directory has no volt.yaml,
	// i.e. it is not a volt project root.
	ErrManifestNotFound = errors.New("volt.yaml not found: not a volt project (run \"volt init\" first)")

	// ErrInvalidManifest indicates volt.yaml exists but fails validation.
	ErrInvalidManifest = errors.New("invalid volt.yaml")
)
