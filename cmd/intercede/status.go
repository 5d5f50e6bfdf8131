package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abelbrown/intercede/internal/cooldown"
	"github.com/abelbrown/intercede/internal/ui"
)

func newStatusCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the refresh cooldown and the saved snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			now := time.Now()
			cd := cooldown.New(st)

			fmt.Fprintf(out, "Backend:      %s\n", c.cfg.APIBase)

			if rem := cd.Remaining(); rem > 0 {
				fmt.Fprintf(out, "Refresh:      in %s (at %s)\n", ui.FormatCountdown(rem), cd.ReadyAt().Local().Format(time.Kitchen))
			} else {
				fmt.Fprintf(out, "Refresh:      ready\n")
			}

			if last, ok := cd.LastFetch(); ok {
				fmt.Fprintf(out, "Last fetch:   %s\n", humanize.RelTime(last, now, "ago", "from now"))
			} else {
				fmt.Fprintf(out, "Last fetch:   never\n")
			}

			snap, ok, err := st.LoadSnapshot()
			if err != nil {
				return err
			}
			if ok {
				fmt.Fprintf(out, "Saved:        %d items (%s)\n", len(snap.Prayers), humanize.RelTime(snap.FetchedAt, now, "ago", "from now"))
			} else {
				fmt.Fprintf(out, "Saved:        none\n")
			}
			return nil
		},
	}
}
