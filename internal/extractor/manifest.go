package extractor

import (
	"bytes"
	"fmt"
	"os"

	"howett.net/plist"
)

// manifest holds the identity keys of an Info.plist. A nil field means
// the key was absent.
type manifest struct {
	BundleName       *string
	BundleIdentifier *string
	ShortVersion     *string
	MinimumSystem    *string
}

// readManifest parses an XML, binary or OpenStep property list. Keys this
// package reads must hold strings; anything else is rejected.
func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("failed to parse property list: empty document")
	}

	var raw map[string]interface{}
	if _, err := plist.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse property list: %w", err)
	}

	m := &manifest{}
	fields := []struct {
		key string
		dst **string
	}{
		{keyBundleName, &m.BundleName},
		{keyBundleIdentifier, &m.BundleIdentifier},
		{keyShortVersion, &m.ShortVersion},
		{keyMinimumSystem, &m.MinimumSystem},
	}

	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("key %s has type %T, expected string", f.key, v)
		}
		*f.dst = &s
	}

	return m, nil
}
