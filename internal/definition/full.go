package definition

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/ralt/patchstarter/internal/models"
	"github.com/sirupsen/logrus"
)

// BuildFullDefinition wraps patch in a title definition. An empty publisher
// falls back to the display name. Every attachment is read and base64
// encoded in order; the first unreadable one fails the whole build.
func BuildFullDefinition(meta *models.BundleMetadata, patch models.PatchRecord, publisher string, attachments []string) (*models.FullDefinition, error) {
	if publisher == "" {
		publisher = meta.DisplayName
	}

	attrs := make([]models.ExtensionAttribute, 0, len(attachments))
	for _, path := range attachments {
		attr, err := buildExtensionAttribute(meta, path)
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}

	return &models.FullDefinition{
		ID:             meta.IdentitySlug,
		Name:           meta.DisplayName,
		Publisher:      publisher,
		AppName:        meta.DisplayName + ".app",
		BundleID:       meta.BundleIdentifier,
		LastModified:   meta.GeneratedAt,
		CurrentVersion: meta.Version,
		Requirements: []models.Criterion{
			recon(criterionBundleID, operatorIs, meta.BundleIdentifier),
		},
		Patches:             []models.PatchRecord{patch},
		ExtensionAttributes: attrs,
	}, nil
}

// ExtensionAttributeKey lower-cases the display name and hyphenates spaces
func ExtensionAttributeKey(displayName string) string {
	return strings.ReplaceAll(strings.ToLower(displayName), " ", "-")
}

func buildExtensionAttribute(meta *models.BundleMetadata, path string) (models.ExtensionAttribute, error) {
	logrus.Debugf("Reading extension attribute: %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return models.ExtensionAttribute{}, &models.PatchError{
			Type: models.ErrAttachmentRead,
			Path: path,
			Err:  fmt.Errorf("failed to read extension attribute: %w", err),
		}
	}

	return models.ExtensionAttribute{
		Key:         ExtensionAttributeKey(meta.DisplayName),
		Value:       base64.StdEncoding.EncodeToString(data),
		DisplayName: meta.DisplayName,
	}, nil
}
