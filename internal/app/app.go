// Package app wires the backend client and local store into the UI's
// command functions. The UI never sees either directly.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/intercede/internal/api"
	"github.com/abelbrown/intercede/internal/cooldown"
	"github.com/abelbrown/intercede/internal/logging"
	"github.com/abelbrown/intercede/internal/model"
	"github.com/abelbrown/intercede/internal/store"
	"github.com/abelbrown/intercede/internal/ui"
)

// prayerFetcher is the client surface the UI needs.
type prayerFetcher interface {
	FetchPrayers(ctx context.Context) (model.Batch, error)
}

// snapshotStore is the persistence surface the UI needs.
type snapshotStore interface {
	LoadSnapshot() (model.Snapshot, bool, error)
	SaveSnapshot(model.Snapshot) error
}

var (
	_ prayerFetcher = (*api.Client)(nil)
	_ snapshotStore = (*store.Store)(nil)
)

// Deps are the collaborators behind the UI.
type Deps struct {
	Client   prayerFetcher
	Store    snapshotStore
	Cooldown *cooldown.Store
}

// Config builds the UI configuration. ctx bounds every fetch; cancel it
// on shutdown.
func Config(ctx context.Context, d Deps) ui.AppConfig {
	log := logging.WithPrefix("fetch")
	cfg := ui.AppConfig{
		FetchPrayers: func() tea.Cmd {
			return func() tea.Msg {
				start := time.Now()
				batch, err := d.Client.FetchPrayers(ctx)
				if err != nil {
					log.Debug("Settled with error", "dur", time.Since(start), "error", err)
					return ui.PrayersLoaded{Err: err}
				}
				log.Debug("Settled", "dur", time.Since(start), "count", len(batch))
				return ui.PrayersLoaded{Prayers: batch}
			}
		},
	}
	if d.Cooldown != nil {
		cfg.Cooldown = d.Cooldown
	}

	if d.Store != nil {
		cfg.LoadSnapshot = func() tea.Cmd {
			return func() tea.Msg {
				snap, ok, err := d.Store.LoadSnapshot()
				return ui.SnapshotLoaded{Snapshot: snap, OK: ok, Err: err}
			}
		}
		cfg.SaveSnapshot = func(snap model.Snapshot) tea.Cmd {
			return func() tea.Msg {
				return ui.SnapshotSaved{Err: d.Store.SaveSnapshot(snap)}
			}
		}
	}

	return cfg
}
