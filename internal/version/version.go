// Package version reports the widget API version and the build SHA.
package version

import "fmt"

// API version of the widget toolkit.
const (
	Major = 0
	Minor = 0
	Patch = 7

	// API is the version string in MAJOR.MINOR.PATCH form.
	API = "0.0.7-dev"
)

// These variables are set at build time using ldflags.
// Example: go build -ldflags "-X github.com/abdullathedruid/termwidget/internal/version.GitSHA=$(git rev-parse --short HEAD)"
var (
	// GitSHA is the git commit SHA (short form) at build time.
	GitSHA = "dev"
)

// APIInt returns the API version as a single comparable number.
func APIInt() int {
	return Major*1000000 + Minor*10000 + Patch*100
}

// Short returns a short version string suitable for display.
func Short() string {
	return GitSHA
}

// String returns the API version followed by the build SHA.
func String() string {
	return fmt.Sprintf("%s (%s)", API, GitSHA)
}
