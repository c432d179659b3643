package scanner

import "context"

// BundleSuffix is the directory extension of a macOS application bundle
const BundleSuffix = ".app"

// Scanner interface for locating application bundles
type Scanner interface {
	// Locate resolves a bundle path or application name to a bundle directory
	Locate(ctx context.Context, target string) (string, error)
}
