// Package version carries the build identity of the volt binary. Release
// builds stamp these variables through -ldflags; source builds keep the
// defaults below.
package version

import "fmt"

var (
	// Version is the semantic release tag.
	Version = "v0.9.2"

	// Commit is the short hash of the source revision the binary was
	// built from.
	Commit = "none"

	// Date is the build timestamp in RFC 3339 form.
	Date = "unknown"
)

// GetVersion returns the release tag alone, for banners and manifests.
func GetVersion() string {
	return Version
}

// Detailed returns the tag together with commit and build date, shown by
// the --version flag.
func Detailed() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
