package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newScenesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List the configured scenes and rings",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			cfg, err := loadScenes(cmd)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if jsonOut {
				data, err := json.MarshalIndent(cfg, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(w, string(data))
				return err
			}

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tID\tMODE\tENTITY\tCAPTION")
			for i, s := range cfg.Scenes {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i, s.ID, s.Mode, s.Entity, s.Caption)
			}
			fmt.Fprintln(tw)
			fmt.Fprintln(tw, "RING\tCAPACITY\tFACTOR")
			for i, r := range cfg.Rings {
				fmt.Fprintf(tw, "%d\t%s\t%.2f\n", i, r.Capacity, r.Factor)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}
