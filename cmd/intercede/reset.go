package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abelbrown/intercede/internal/cooldown"
)

func newResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the refresh cooldown on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.openStore()
			if err != nil {
				return err
			}
			defer st.Close()

			if err := cooldown.New(st).Reset(); err != nil {
				return fmt.Errorf("failed to clear cooldown: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cooldown cleared. You can refresh now.")
			return nil
		},
	}
}
