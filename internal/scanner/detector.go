package scanner

import (
	"os"
	"path/filepath"
	"strings"
)

// IsBundleDir reports whether path is an existing directory
func IsBundleDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// BundleBaseName returns the bundle's filesystem name with the bundle
// suffix stripped, e.g. "/Applications/Rectangle.app" -> "Rectangle".
func BundleBaseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), BundleSuffix)
}

// bundleFileName normalizes an application name to its bundle directory name
func bundleFileName(name string) string {
	if strings.HasSuffix(name, BundleSuffix) {
		return name
	}
	return name + BundleSuffix
}
