package models

// Defaults applied when neither an override nor the identity manifest
// supplies a value.
const (
	DefaultBundleID  = "unknown.bundle.id"
	DefaultVersion   = "0.0.0"
	DefaultMinimumOS = "10.9"
)

// Overrides carries operator-supplied values that take precedence over
// the identity manifest. Empty strings mean "not supplied".
type Overrides struct {
	DisplayName string
	Version     string
	MinimumOS   string
}

// BundleMetadata is the normalized record extracted from an application bundle
type BundleMetadata struct {
	DisplayName      string `json:"displayName"`
	IdentitySlug     string `json:"identitySlug"`
	BundleIdentifier string `json:"bundleIdentifier"`
	Version          string `json:"version"`
	MinimumOS        string `json:"minimumOS"`
	GeneratedAt      string `json:"generatedAt"`
	BundleModifiedAt string `json:"bundleModifiedAt"`
}
