package models

// DefaultApplicationsDir is searched when the bundle argument is a bare name
const DefaultApplicationsDir = "/Applications"

// GenerateConfig contains configuration for one generate run
type GenerateConfig struct {
	// Input
	BundlePath      string
	ApplicationsDir string // Search root when BundlePath is an application name

	// Overrides
	Publisher   string
	DisplayName string
	AppVersion  string
	MinSysVer   string

	// Extension attribute script paths, in order
	ExtensionAttributes []string

	// Output
	OutputDir string // Empty prints to stdout
	PatchOnly bool
	Gzip      bool

	// Signing
	GPGKeyPath    string
	GPGPassphrase string
}

// Overrides returns the metadata overrides carried by the config
func (c *GenerateConfig) Overrides() Overrides {
	return Overrides{
		DisplayName: c.DisplayName,
		Version:     c.AppVersion,
		MinimumOS:   c.MinSysVer,
	}
}
