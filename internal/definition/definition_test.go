package definition

import (
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ralt/patchstarter/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectangle() *models.BundleMetadata {
	return &models.BundleMetadata{
		DisplayName:      "Rectangle",
		IdentitySlug:     "Rectangle",
		BundleIdentifier: "com.knollsoft.Rectangle",
		Version:          "0.55",
		MinimumOS:        models.DefaultMinimumOS,
		GeneratedAt:      "2024-05-01T12:30:45+00:00Z",
		BundleModifiedAt: "2024-04-02T08:15:00+00:00Z",
	}
}

func writeAttachment(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestBuildPatch(t *testing.T) {
	meta := rectangle()
	patch := BuildPatch(meta)

	assert.Equal(t, "0.55", patch.Version)
	assert.Equal(t, meta.BundleModifiedAt, patch.ReleaseDate)
	assert.True(t, patch.Standalone)
	assert.False(t, patch.Reboot)
	assert.Equal(t, "10.9", patch.MinimumOperatingSystem)

	require.Len(t, patch.KillApps, 1)
	assert.Equal(t, models.KillApp{BundleID: "com.knollsoft.Rectangle", AppName: "Rectangle"}, patch.KillApps[0])

	require.Len(t, patch.Components, 1)
	component := patch.Components[0]
	assert.Equal(t, "Rectangle", component.Name)
	assert.Equal(t, "0.55", component.Version)
	assert.Equal(t, []models.Criterion{
		{Name: "Application Bundle ID", Operator: "is", Value: "com.knollsoft.Rectangle", Type: "recon"},
		{Name: "Application Version", Operator: "is", Value: "0.55", Type: "recon"},
	}, component.Criteria)

	assert.Equal(t, []models.Criterion{
		{Name: "Operating System Version", Operator: "greater than or equal", Value: "10.9", Type: "recon"},
	}, patch.Capabilities)

	assert.NotNil(t, patch.Dependencies)
	assert.Empty(t, patch.Dependencies)
}

func TestBuildFullDefinitionDefaults(t *testing.T) {
	meta := rectangle()
	patch := BuildPatch(meta)

	full, err := BuildFullDefinition(meta, patch, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "Rectangle", full.ID)
	assert.Equal(t, "Rectangle", full.Name)
	assert.Equal(t, "Rectangle", full.Publisher)
	assert.Equal(t, "Rectangle.app", full.AppName)
	assert.Equal(t, "com.knollsoft.Rectangle", full.BundleID)
	assert.Equal(t, meta.GeneratedAt, full.LastModified)
	assert.Equal(t, "0.55", full.CurrentVersion)
	assert.Equal(t, []models.Criterion{
		{Name: "Application Bundle ID", Operator: "is", Value: "com.knollsoft.Rectangle", Type: "recon"},
	}, full.Requirements)
	require.Len(t, full.Patches, 1)
	assert.Equal(t, patch, full.Patches[0])
	assert.NotNil(t, full.ExtensionAttributes)
	assert.Empty(t, full.ExtensionAttributes)
}

func TestBuildFullDefinitionPublisherOverride(t *testing.T) {
	meta := rectangle()

	full, err := BuildFullDefinition(meta, BuildPatch(meta), "Knollsoft", nil)
	require.NoError(t, err)
	assert.Equal(t, "Knollsoft", full.Publisher)
}

func TestBuildFullDefinitionExtensionAttributes(t *testing.T) {
	meta := &models.BundleMetadata{
		DisplayName:  "Visual Studio Code",
		IdentitySlug: "VisualStudioCode",
	}

	first := []byte("#!/bin/sh\necho \"<result>1.0</result>\"\n")
	second := []byte{0x00, 0xff, 0x10, 0x80}
	paths := []string{
		writeAttachment(t, "first.sh", first),
		writeAttachment(t, "second.bin", second),
		writeAttachment(t, "first-again.sh", first),
	}

	full, err := BuildFullDefinition(meta, BuildPatch(meta), "", paths)
	require.NoError(t, err)
	require.Len(t, full.ExtensionAttributes, 3)

	for i, want := range [][]byte{first, second, first} {
		attr := full.ExtensionAttributes[i]
		assert.Equal(t, "visual-studio-code", attr.Key)
		assert.Equal(t, "Visual Studio Code", attr.DisplayName)

		decoded, err := base64.StdEncoding.DecodeString(attr.Value)
		require.NoError(t, err)
		assert.Equal(t, want, decoded)
	}
}

func TestBuildFullDefinitionAttachmentMissing(t *testing.T) {
	meta := rectangle()
	good := writeAttachment(t, "ok.sh", []byte("echo ok"))
	missing := filepath.Join(t.TempDir(), "missing.sh")

	full, err := BuildFullDefinition(meta, BuildPatch(meta), "", []string{good, missing})
	require.Error(t, err)
	assert.Nil(t, full)
	assert.True(t, models.IsErrorType(err, models.ErrAttachmentRead))
	assert.Contains(t, err.Error(), missing)
}

func TestExtensionAttributeKey(t *testing.T) {
	assert.Equal(t, "rectangle", ExtensionAttributeKey("Rectangle"))
	assert.Equal(t, "visual-studio-code", ExtensionAttributeKey("Visual Studio Code"))
}

func TestBuildModes(t *testing.T) {
	meta := rectangle()

	doc, err := Build(meta, ModePatchOnly, "ignored", nil)
	require.NoError(t, err)
	patch, ok := doc.(models.PatchRecord)
	require.True(t, ok)

	doc, err = Build(meta, ModeFull, "", nil)
	require.NoError(t, err)
	full, ok := doc.(*models.FullDefinition)
	require.True(t, ok)

	patchJSON, err := json.Marshal(patch)
	require.NoError(t, err)
	embeddedJSON, err := json.Marshal(full.Patches[0])
	require.NoError(t, err)
	assert.JSONEq(t, string(patchJSON), string(embeddedJSON))

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(patchJSON, &fields))
	for _, key := range []string{"id", "publisher", "extensionAttributes"} {
		assert.NotContains(t, fields, key)
	}
}

func TestBuildFullModeAttachmentError(t *testing.T) {
	doc, err := Build(rectangle(), ModeFull, "", []string{filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Nil(t, doc)
}

func TestFileName(t *testing.T) {
	meta := rectangle()
	assert.Equal(t, "Rectangle.json", FileName(meta, ModeFull))
	assert.Equal(t, "Rectangle-patch.json", FileName(meta, ModePatchOnly))
	assert.Equal(t, ModePatchOnly, ModeFor(true))
	assert.Equal(t, ModeFull, ModeFor(false))
	assert.Equal(t, "patch-only", ModePatchOnly.String())
}
