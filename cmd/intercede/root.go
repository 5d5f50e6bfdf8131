package main

import (
	"context"
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/abelbrown/intercede/internal/api"
	"github.com/abelbrown/intercede/internal/app"
	"github.com/abelbrown/intercede/internal/config"
	"github.com/abelbrown/intercede/internal/cooldown"
	"github.com/abelbrown/intercede/internal/logging"
	"github.com/abelbrown/intercede/internal/store"
	"github.com/abelbrown/intercede/internal/ui"
)

// cli carries the resolved configuration from the root's pre-run hook to
// whichever command runs.
type cli struct {
	cfg config.Config

	apiBase  string
	dataDir  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "intercede",
		Short: "Daily intercessory prayers for today's news",
		Long: `Intercede fetches today's news headlines paired with intercessory
prayers from the Intercede backend and shows them in the terminal.

A successful refresh starts a 30 minute cooldown that survives restarts.

Examples:
  # Run against a local backend
  intercede

  # Run against another backend
  intercede --api https://intercede.example.org

  # See how long until the next refresh
  intercede status`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		RunE: c.runTUI,
	}

	root.PersistentFlags().StringVar(&c.apiBase, "api", "", "Backend base URL (overrides INTERCEDE_API_BASE)")
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "Data directory (overrides INTERCEDE_DATA_DIR)")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newStatusCmd(c),
		newResetCmd(c),
		newHealthCmd(c),
		newPrintCmd(c),
	)
	return root
}

// setup loads configuration, applies flag overrides and opens the log.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.apiBase != "" {
		cfg.APIBase = c.apiBase
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if err := cfg.EnsureDataDir(); err != nil {
		return err
	}
	if err := logging.Init(cfg.DataDir, cfg.LogLevel); err != nil {
		return err
	}
	logging.Debug("Configuration loaded", "api", cfg.APIBase, "data_dir", cfg.DataDir, "cmd", cmd.Name())
	c.cfg = cfg
	return nil
}

func (c *cli) openStore() (*store.Store, error) {
	st, err := store.Open(c.cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

// client has no timeout: prayer generation can take a while, and the
// caller's context is what bounds a request.
func (c *cli) client() *api.Client {
	return api.NewClient(c.cfg.APIBase, &http.Client{})
}

func (c *cli) runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	st, err := c.openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	cfg := app.Config(ctx, app.Deps{
		Client:   c.client(),
		Store:    st,
		Cooldown: cooldown.New(st),
	})

	program := tea.NewProgram(ui.NewAppWithConfig(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	logging.Info("Intercede stopped")
	return nil
}
