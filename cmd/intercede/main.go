// Command intercede is the terminal client for the Intercede prayer
// service.
//
// Usage:
//
//	intercede               Run the TUI
//	intercede status        Cooldown and snapshot state
//	intercede reset         Clear the refresh cooldown
//	intercede health        Probe the backend
//	intercede print         Print the last saved prayers
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abelbrown/intercede/internal/logging"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs cmd and closes the log whether or not the command failed.
func execute(cmd *cobra.Command) error {
	defer logging.Close()
	return cmd.Execute()
}
