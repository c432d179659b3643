package models

// Criterion is a single recon match rule used by components,
// capabilities and requirements.
type Criterion struct {
	Name     string `json:"name"`
	Operator string `json:"operator"`
	Value    string `json:"value"`
	Type     string `json:"type"`
}

// KillApp names an application that must be terminated before patching
type KillApp struct {
	BundleID string `json:"bundleId"`
	AppName  string `json:"appName"`
}

// Component identifies when a patch applies
type Component struct {
	Name     string      `json:"name"`
	Version  string      `json:"version"`
	Criteria []Criterion `json:"criteria"`
}

// Dependency is reserved for inter-title dependencies. Nothing populates it yet.
type Dependency struct {
	Name string `json:"name"`
}

// PatchRecord describes how to detect and apply one version of an application
type PatchRecord struct {
	Version                string       `json:"version"`
	ReleaseDate            string       `json:"releaseDate"`
	Standalone             bool         `json:"standalone"`
	MinimumOperatingSystem string       `json:"minimumOperatingSystem"`
	Reboot                 bool         `json:"reboot"`
	KillApps               []KillApp    `json:"killApps"`
	Components             []Component  `json:"components"`
	Capabilities           []Criterion  `json:"capabilities"`
	Dependencies           []Dependency `json:"dependencies"`
}

// ExtensionAttribute is an administrator-supplied script attached to a title
type ExtensionAttribute struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	DisplayName string `json:"displayName"`
}

// FullDefinition is a catalog entry wrapping the patches of one title
type FullDefinition struct {
	ID                  string               `json:"id"`
	Name                string               `json:"name"`
	Publisher           string               `json:"publisher"`
	AppName             string               `json:"appName"`
	BundleID            string               `json:"bundleId"`
	LastModified        string               `json:"lastModified"`
	CurrentVersion      string               `json:"currentVersion"`
	Requirements        []Criterion          `json:"requirements"`
	Patches             []PatchRecord        `json:"patches"`
	ExtensionAttributes []ExtensionAttribute `json:"extensionAttributes"`
}
