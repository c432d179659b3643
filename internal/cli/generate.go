package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ralt/patchstarter/internal/config"
	"github.com/ralt/patchstarter/internal/definition"
	"github.com/ralt/patchstarter/internal/extractor"
	"github.com/ralt/patchstarter/internal/models"
	"github.com/ralt/patchstarter/internal/output"
	"github.com/ralt/patchstarter/internal/scanner"
	"github.com/ralt/patchstarter/internal/signer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var cfg models.GenerateConfig
	var configPath string

	cmd := &cobra.Command{
		Use:   "generate <bundle>",
		Short: "Generate a patch definition for an application bundle",
		Long: `Reads <bundle>/Contents/Info.plist and generates a patch definition.
<bundle> is a path to an application bundle, or an application name that is
looked up in --applications-dir.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.BundlePath = args[0]

			if configPath != "" {
				if err := applyConfigFile(cmd, configPath, &cfg); err != nil {
					return err
				}
			}

			logrus.Debugf("Configuration: %+v", cfg)

			return runGeneration(cmd.Context(), &cfg, cmd.OutOrStdout())
		},
	}

	// Output flags
	cmd.Flags().StringVarP(&cfg.OutputDir, "output", "o", "", "Directory to save JSON file (prints to stdout if unset)")
	cmd.Flags().BoolVar(&cfg.PatchOnly, "patch-only", false, "Create only a patch, not a full definition")
	cmd.Flags().BoolVar(&cfg.Gzip, "gzip", false, "Also write a gzip-compressed copy of the saved file")

	// Metadata overrides
	cmd.Flags().StringVarP(&cfg.Publisher, "publisher", "p", "", "Publisher name (defaults to the display name)")
	cmd.Flags().StringVarP(&cfg.DisplayName, "name", "n", "", "Display name")
	cmd.Flags().StringVar(&cfg.AppVersion, "app-version", "", "Override app version")
	cmd.Flags().StringVar(&cfg.MinSysVer, "min-sys-version", "", "Override minimum macOS version")
	cmd.Flags().StringArrayVarP(&cfg.ExtensionAttributes, "extension-attribute", "e", nil, "Path to an extension attribute script (repeatable)")

	// Bundle lookup
	cmd.Flags().StringVar(&cfg.ApplicationsDir, "applications-dir", models.DefaultApplicationsDir, "Directory searched when <bundle> is an application name")

	// Signing flags
	cmd.Flags().StringVarP(&cfg.GPGKeyPath, "gpg-key", "k", "", "Path to GPG private key for a detached signature")
	cmd.Flags().StringVar(&cfg.GPGPassphrase, "gpg-passphrase", "", "GPG key passphrase")

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with default option values")

	return cmd
}

func applyConfigFile(cmd *cobra.Command, path string, cfg *models.GenerateConfig) error {
	fileCfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			err = fmt.Errorf("config file not found")
		}
		return &models.PatchError{Type: models.ErrInvalidConfig, Path: path, Err: err}
	}

	logrus.Debugf("Loaded defaults from %s", path)
	fileCfg.Apply(cfg, cmd.Flags().Changed)
	return nil
}

// extractMetadata locates the bundle and extracts its metadata
func extractMetadata(ctx context.Context, target, searchDir string, overrides models.Overrides) (*models.BundleMetadata, error) {
	bundlePath, err := scanner.NewFileSystemScanner(searchDir).Locate(ctx, target)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Reading application bundle: %s", bundlePath)
	return extractor.NewExtractor().Extract(bundlePath, overrides)
}

func runGeneration(ctx context.Context, cfg *models.GenerateConfig, stdout io.Writer) error {
	// Step 1: Extract metadata
	meta, err := extractMetadata(ctx, cfg.BundlePath, cfg.ApplicationsDir, cfg.Overrides())
	if err != nil {
		return err
	}

	logrus.Infof("Found %s %s (%s)", meta.DisplayName, meta.Version, meta.BundleIdentifier)

	// Step 2: Synthesize the document
	mode := definition.ModeFor(cfg.PatchOnly)
	logrus.Debugf("Building %s document", mode)

	doc, err := definition.Build(meta, mode, cfg.Publisher, cfg.ExtensionAttributes)
	if err != nil {
		return err
	}

	// Step 3: Initialize signer
	var s signer.Signer
	if cfg.GPGKeyPath != "" {
		gpgSigner, err := signer.NewGPGSigner(cfg.GPGKeyPath, cfg.GPGPassphrase)
		if err != nil {
			return &models.PatchError{
				Type: models.ErrSigning,
				Path: cfg.GPGKeyPath,
				Err:  fmt.Errorf("failed to initialize GPG signer: %w", err),
			}
		}
		s = gpgSigner
		logrus.Debug("GPG signer initialized")
	}

	// Step 4: Write output
	w := output.NewWriter(stdout, cfg.OutputDir, cfg.Gzip, s)
	if _, err := w.Write(doc, definition.FileName(meta, mode)); err != nil {
		return err
	}

	return nil
}
