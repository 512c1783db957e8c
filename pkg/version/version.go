// Package version exposes the build version injected at link time.
package version

// version is overridden via -ldflags "-X github.com/tokenconv/tokenconv/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // set by the linker

// GetVersion returns the build version string.
func GetVersion() string {
	return version
}
