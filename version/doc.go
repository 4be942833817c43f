// Package version reports iva build information.
//
// Version, commit, branch and build time are set at link time:
//
//	go build -ldflags "-X github.com/ivakit/iva/version.Version=1.2.0"
//
// Unset values fall back to the module and VCS data the Go toolchain
// embeds in the binary.
package version
