package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abelbrown/intercede/internal/ui"
)

const healthTimeout = 10 * time.Second

func newHealthCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the backend is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), healthTimeout)
			defer cancel()

			client := c.client()
			h, err := client.Health(ctx)
			if err != nil {
				return fmt.Errorf("%s: %s", client.BaseURL(), ui.UserMessage(err))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", client.BaseURL(), h.Status)
			if h.Message != "" {
				fmt.Fprintln(out, h.Message)
			}
			return nil
		},
	}
}
