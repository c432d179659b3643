package scanner

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ralt/patchstarter/internal/models"
	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner interface for the local filesystem
type FileSystemScanner struct {
	searchDir string
}

// NewFileSystemScanner creates a scanner that resolves bare application
// names inside searchDir
func NewFileSystemScanner(searchDir string) *FileSystemScanner {
	if searchDir == "" {
		searchDir = models.DefaultApplicationsDir
	}
	return &FileSystemScanner{searchDir: searchDir}
}

// Locate returns target itself when it is an existing directory. Otherwise
// target is treated as an application name (glob patterns allowed) and
// matched inside the search directory; the first match wins.
func (s *FileSystemScanner) Locate(ctx context.Context, target string) (string, error) {
	if IsBundleDir(target) {
		logrus.Debugf("Using bundle path as given: %s", target)
		return target, nil
	}

	pattern := filepath.Join(s.searchDir, bundleFileName(target))
	logrus.Debugf("Searching for application with pattern %s", pattern)

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", &models.PatchError{
			Type: models.ErrBundleNotFound,
			Path: target,
			Err:  fmt.Errorf("invalid application name pattern: %w", err),
		}
	}

	for _, match := range matches {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if IsBundleDir(match) {
			logrus.Debugf("Found application bundle: %s", match)
			return match, nil
		}
	}

	return "", &models.PatchError{
		Type: models.ErrBundleNotFound,
		Path: target,
		Err:  fmt.Errorf("application not found in %s", s.searchDir),
	}
}
