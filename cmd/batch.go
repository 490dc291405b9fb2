package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/brandkit-cli/internal/pipeline"
)

var (
	batchLimit     int
	batchForce     bool
	batchMinRating float64
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every eligible lead in the list",
	Long:  "Walks the lead list in order, skipping leads without a website or below the minimum rating, and checkpoints progress after every profile.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := loadLeads()
		if err != nil {
			return err
		}

		p, store, err := buildPipeline()
		if err != nil {
			return err
		}
		defer store.Close() //nolint:errcheck

		minRating := batchMinRating
		if !cmd.Flags().Changed("min-rating") {
			minRating = cfg.Batch.MinRating
		}

		zap.L().Info("batch starting",
			zap.Int("leads", len(records)),
			zap.Float64("min_rating", minRating),
			zap.Bool("force", batchForce),
		)

		summary, err := p.RunBatch(ctx, records, pipeline.BatchOptions{
			Force:     batchForce,
			Limit:     batchLimit,
			MinRating: minRating,
		})
		if err != nil {
			return err
		}

		zap.L().Info("batch finished",
			zap.Int("processed", summary.Processed),
			zap.Int("skipped", summary.Skipped),
			zap.Int("failed", summary.Failed),
		)
		return nil
	},
}

func init() {
	batchCmd.Flags().IntVar(&batchLimit, "limit", 0, "stop after this many attempted leads (0 = no limit)")
	batchCmd.Flags().BoolVar(&batchForce, "force", false, "reprocess leads already marked completed")
	batchCmd.Flags().Float64Var(&batchMinRating, "min-rating", 3.0, "skip leads rated below this")
	rootCmd.AddCommand(batchCmd)
}
