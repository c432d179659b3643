// Package extractor reads an application bundle's identity manifest and
// normalizes it into a BundleMetadata record.
package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ralt/patchstarter/internal/models"
	"github.com/ralt/patchstarter/internal/scanner"
	"github.com/sirupsen/logrus"
)

// Identity manifest keys
const (
	keyBundleName       = "CFBundleName"
	keyBundleIdentifier = "CFBundleIdentifier"
	keyShortVersion     = "CFBundleShortVersionString"
	keyMinimumSystem    = "LSMinimumSystemVersion"
)

// ManifestPath returns the identity manifest location inside a bundle
func ManifestPath(bundlePath string) string {
	return filepath.Join(bundlePath, "Contents", "Info.plist")
}

// Extractor builds BundleMetadata records
type Extractor struct {
	now func() time.Time
}

// NewExtractor creates an extractor reading the wall clock
func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// Extract reads the bundle at bundlePath and applies overrides.
// Each overridable field resolves as override, then manifest, then default.
func (e *Extractor) Extract(bundlePath string, overrides models.Overrides) (*models.BundleMetadata, error) {
	manifestPath := ManifestPath(bundlePath)
	logrus.Debugf("Reading identity manifest: %s", manifestPath)

	m, err := readManifest(manifestPath)
	if err != nil {
		return nil, &models.PatchError{
			Type: models.ErrMetadataRead,
			Path: manifestPath,
			Err:  err,
		}
	}

	info, err := os.Stat(bundlePath)
	if err != nil {
		return nil, &models.PatchError{
			Type: models.ErrMetadataRead,
			Path: bundlePath,
			Err:  fmt.Errorf("failed to stat bundle: %w", err),
		}
	}

	displayName := resolve(overrides.DisplayName, m.BundleName, scanner.BundleBaseName(bundlePath))

	meta := &models.BundleMetadata{
		DisplayName:      displayName,
		IdentitySlug:     Slug(displayName),
		BundleIdentifier: resolve("", m.BundleIdentifier, models.DefaultBundleID),
		Version:          resolve(overrides.Version, m.ShortVersion, models.DefaultVersion),
		MinimumOS:        resolve(overrides.MinimumOS, m.MinimumSystem, models.DefaultMinimumOS),
		GeneratedAt:      FormatTimestamp(e.now()),
		BundleModifiedAt: FormatTimestamp(info.ModTime()),
	}

	logrus.Debugf("Extracted metadata: %+v", *meta)
	return meta, nil
}

// Slug removes every space from a display name
func Slug(displayName string) string {
	return strings.ReplaceAll(displayName, " ", "")
}

// FormatTimestamp renders t in UTC as ISO-8601 with a numeric offset,
// microseconds only when non-zero, followed by a literal "Z".
// Consumers of existing catalogs expect the "+00:00Z" ending.
func FormatTimestamp(t time.Time) string {
	t = roundMicros(t.UTC())
	s := t.Format("2006-01-02T15:04:05")
	if micros := t.Nanosecond() / 1000; micros != 0 {
		s += fmt.Sprintf(".%06d", micros)
	}
	return s + "+00:00Z"
}

// roundMicros rounds t to the nearest microsecond, ties to even
func roundMicros(t time.Time) time.Time {
	rem := t.Nanosecond() % 1000
	t = t.Add(-time.Duration(rem))
	if rem > 500 || (rem == 500 && (t.Nanosecond()/1000)%2 == 1) {
		t = t.Add(time.Microsecond)
	}
	return t
}

// resolve picks the override when set, otherwise the declared manifest
// value when present, otherwise the default.
func resolve(override string, declared *string, fallback string) string {
	if override != "" {
		return override
	}
	if declared != nil {
		return *declared
	}
	return fallback
}
