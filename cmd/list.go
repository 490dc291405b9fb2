package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/brandkit-cli/internal/checkpoint"
	"github.com/sells-group/brandkit-cli/internal/model"
	"github.com/sells-group/brandkit-cli/internal/pipeline"
	"github.com/sells-group/brandkit-cli/internal/profile"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List leads with their processing status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		records, err := loadLeads()
		if err != nil {
			return err
		}

		store, err := initCheckpoint()
		if err != nil {
			return err
		}
		defer store.Close() //nolint:errcheck

		state, err := store.State(ctx)
		if err != nil {
			return err
		}

		writer := profile.NewWriter(cfg.Output.Dir)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STATUS\tCOMPANY\tSLUG\tRATING\tWEBSITE\tARTIFACT")
		var done, failed int
		for _, rec := range records {
			slug := pipeline.Slug(rec.Name)

			status := leadStatus(state, slug)
			switch status {
			case model.StatusCompleted:
				done++
			case model.StatusFailed:
				failed++
			}

			website := rec.Website
			if website == "" {
				website = "-"
			}
			rating := rec.Rating
			if rating == "" {
				rating = "-"
			}
			artifact := "-"
			if writer.Exists(slug) {
				artifact = writer.Path(slug)
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", status, rec.Name, slug, rating, website, artifact)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		fmt.Fprintf(os.Stdout, "\n%d leads: %d completed, %d failed, %d pending\n",
			len(records), done, failed, len(records)-done-failed)
		return nil
	},
}

// leadStatus maps checkpoint state to the display status of one slug.
func leadStatus(state checkpoint.State, slug string) model.Status {
	switch {
	case state.HasCompleted(slug):
		return model.StatusCompleted
	case state.HasFailed(slug):
		return model.StatusFailed
	default:
		return model.StatusPending
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
