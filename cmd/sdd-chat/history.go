package main

import (
	"github.com/spf13/cobra"
	"github.com/sddchat/sdd-chat/internal/history"
	"github.com/sddchat/sdd-chat/internal/workflow"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently generated context bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}

			hist, err := history.Open(a.ws.HistoryDBPath())
			if err != nil {
				return err
			}
			defer hist.Close()

			records, err := hist.Recent(limit)
			if err != nil {
				return err
			}

			a.ui.header("Bundle History")
			if len(records) == 0 {
				a.ui.warn("No bundles generated yet.")
				return nil
			}

			for _, r := range records {
				phaseName := "?"
				if info, err := workflow.Lookup(r.Phase); err == nil {
					phaseName = info.Name
				}
				feature := r.Feature
				if feature == "" {
					feature = "-"
				}
				a.ui.printf("  %s  phase %d (%s)  %s/%s  %d bytes\n",
					r.CreatedAt, r.Phase, phaseName,
					r.Project, feature, r.Bytes)
			}
			a.ui.println()
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries to show")
	return cmd
}
