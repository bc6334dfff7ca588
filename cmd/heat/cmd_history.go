package main

import (
	"encoding/json"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/katalvlaran/heat1d/internal/archive"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs",
		Long: `List runs recorded in the SQLite archive, newest first.

The archive is selected with --db or HEAT_DB.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath := databasePath(cmd)
			if dbPath == "" {
				return fmt.Errorf("no archive: set --db or HEAT_DB")
			}
			limit, _ := cmd.Flags().GetInt("limit")
			jsonOut, _ := cmd.Flags().GetBool("json")

			store, err := archive.Open(cmd.Context(), dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]any{
					"runs":  jsonRuns(runs),
					"count": len(runs),
				})
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs archived.")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tALG\tPREC\tSTEPS\tCHANGE\tCONVERGED\tWHEN")
			for _, r := range runs {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%.6g\t%t\t%s\n",
					r.ID, r.Name, r.Algorithm, r.Precision, r.Steps, r.Change, r.Converged,
					r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum runs to list (0 = all)")

	return cmd
}

// jsonRuns flattens records for encoding/json, which rejects NaN and Inf.
func jsonRuns(runs []archive.Record) []map[string]any {
	out := make([]map[string]any, 0, len(runs))
	for _, r := range runs {
		var change any = r.Change
		if math.IsNaN(r.Change) || math.IsInf(r.Change, 0) {
			change = fmt.Sprint(r.Change)
		}
		out = append(out, map[string]any{
			"id":         r.ID,
			"name":       r.Name,
			"algorithm":  r.Algorithm,
			"precision":  r.Precision,
			"stop":       r.Stop,
			"nx":         r.Nx,
			"steps":      r.Steps,
			"sim_time":   r.SimTime,
			"change":     change,
			"converged":  r.Converged,
			"counts":     r.Counts,
			"elapsed":    r.Elapsed.String(),
			"created_at": r.CreatedAt,
		})
	}
	return out
}
