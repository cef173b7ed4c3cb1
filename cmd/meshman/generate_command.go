package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meshman/internal/logging"
	"meshman/internal/manifestrun"
)

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "generate [assets-root]",
		Short: "Scan the assets tree and write the manifest",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			opts := manifestrun.Options{ManifestPath: outputFlag}
			if len(args) == 1 {
				opts.AssetsRoot = args[0]
			}

			result, err := manifestrun.Run(cmd.Context(), cfg, logger, opts)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, result.Manifest)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d folders.\n",
				result.ManifestPath, result.Stats.Folders)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Manifest output path (overrides config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the manifest as JSON instead of the summary line")
	return cmd
}
