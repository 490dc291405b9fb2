package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/brandkit-cli/internal/leads"
	"github.com/sells-group/brandkit-cli/internal/pipeline"
)

var generateReset bool

var generateCmd = &cobra.Command{
	Use:   "generate <company name>",
	Short: "Generate a profile for a single lead",
	Long:  "Matches the lead list by case-insensitive name substring, runs the full extraction flow, and writes the YAML profile.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		query := strings.Join(args, " ")

		records, err := loadLeads()
		if err != nil {
			return err
		}

		match, err := leads.FindByName(records, query)
		if err != nil {
			return err
		}

		p, store, err := buildPipeline()
		if err != nil {
			return err
		}
		defer store.Close() //nolint:errcheck

		slug := pipeline.Slug(match.Name)
		if generateReset {
			if err := store.Reset(ctx, slug); err != nil {
				return err
			}
		}

		result, err := p.Process(ctx, match, generateReset)
		if err != nil {
			return err
		}
		if result.Skipped {
			zap.L().Info("already completed, use --reset to regenerate",
				zap.String("company", match.Name),
				zap.String("slug", result.Slug),
			)
			return nil
		}

		zap.L().Info("profile generated",
			zap.String("company", match.Name),
			zap.String("path", result.ArtifactPath),
			zap.Int("placeholders", result.Placeholders),
			zap.Bool("used_fallback", result.UsedFallback),
		)
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVar(&generateReset, "reset", false, "clear checkpoint state and regenerate")
	rootCmd.AddCommand(generateCmd)
}
