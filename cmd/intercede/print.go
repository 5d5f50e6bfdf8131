package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abelbrown/intercede/internal/render"
)

const noSnapshotText = "No saved prayers yet. Run intercede to gather today's prayers."

func newPrintCmd(c *cli) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the last saved prayers without contacting the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			snap, ok, err := st.LoadSnapshot()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok || snap.Prayers.Empty() {
				fmt.Fprintln(out, noSnapshotText)
				return nil
			}

			r := render.New(width)
			fmt.Fprintln(out, r.Header())
			fmt.Fprintln(out, r.DateBadge(snap.FetchedAt))
			fmt.Fprintln(out)
			fmt.Fprintln(out, r.Batch(snap.Prayers).View())
			fmt.Fprintln(out, r.Footer())
			return nil
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Render width in columns")
	return cmd
}
