// Package definition synthesizes patch records and full title definitions
// from extracted bundle metadata.
package definition

import "github.com/ralt/patchstarter/internal/models"

// Recon criterion names and operators understood by the patch catalog
const (
	criterionBundleID  = "Application Bundle ID"
	criterionVersion   = "Application Version"
	criterionOSVersion = "Operating System Version"

	operatorIs         = "is"
	operatorAtLeast    = "greater than or equal"
	criterionTypeRecon = "recon"
)

func recon(name, operator, value string) models.Criterion {
	return models.Criterion{
		Name:     name,
		Operator: operator,
		Value:    value,
		Type:     criterionTypeRecon,
	}
}

// BuildPatch creates the patch record for one application version
func BuildPatch(meta *models.BundleMetadata) models.PatchRecord {
	return models.PatchRecord{
		Version:                meta.Version,
		ReleaseDate:            meta.BundleModifiedAt,
		Standalone:             true,
		MinimumOperatingSystem: meta.MinimumOS,
		Reboot:                 false,
		KillApps: []models.KillApp{
			{BundleID: meta.BundleIdentifier, AppName: meta.DisplayName},
		},
		Components: []models.Component{
			{
				Name:    meta.DisplayName,
				Version: meta.Version,
				Criteria: []models.Criterion{
					recon(criterionBundleID, operatorIs, meta.BundleIdentifier),
					recon(criterionVersion, operatorIs, meta.Version),
				},
			},
		},
		Capabilities: []models.Criterion{
			recon(criterionOSVersion, operatorAtLeast, meta.MinimumOS),
		},
		Dependencies: []models.Dependency{},
	}
}
