package definition

import "github.com/ralt/patchstarter/internal/models"

// Mode selects which document a run emits
type Mode int

const (
	ModeFull Mode = iota
	ModePatchOnly
)

// String returns the string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModePatchOnly:
		return "patch-only"
	default:
		return "full"
	}
}

// ModeFor maps the patch-only flag to a Mode
func ModeFor(patchOnly bool) Mode {
	if patchOnly {
		return ModePatchOnly
	}
	return ModeFull
}

// Build synthesizes the document for mode: the bare patch record in
// patch-only mode, otherwise the full definition wrapping it.
func Build(meta *models.BundleMetadata, mode Mode, publisher string, attachments []string) (interface{}, error) {
	patch := BuildPatch(meta)
	if mode == ModePatchOnly {
		return patch, nil
	}
	full, err := BuildFullDefinition(meta, patch, publisher, attachments)
	if err != nil {
		return nil, err
	}
	return full, nil
}

// FileName returns the document file name for mode
func FileName(meta *models.BundleMetadata, mode Mode) string {
	if mode == ModePatchOnly {
		return meta.IdentitySlug + "-patch.json"
	}
	return meta.IdentitySlug + ".json"
}
