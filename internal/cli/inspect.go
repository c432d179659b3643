package cli

import (
	"fmt"

	"github.com/ralt/patchstarter/internal/models"
	"github.com/ralt/patchstarter/internal/output"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var overrides models.Overrides
	var searchDir string

	cmd := &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "Print the metadata extracted from an application bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := extractMetadata(cmd.Context(), args[0], searchDir, overrides)
			if err != nil {
				return err
			}

			data, err := output.Render(meta)
			if err != nil {
				return &models.PatchError{Type: models.ErrOutputWrite, Err: err}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}

	cmd.Flags().StringVarP(&overrides.DisplayName, "name", "n", "", "Display name")
	cmd.Flags().StringVar(&overrides.Version, "app-version", "", "Override app version")
	cmd.Flags().StringVar(&overrides.MinimumOS, "min-sys-version", "", "Override minimum macOS version")
	cmd.Flags().StringVar(&searchDir, "applications-dir", models.DefaultApplicationsDir, "Directory searched when <bundle> is an application name")

	return cmd
}
