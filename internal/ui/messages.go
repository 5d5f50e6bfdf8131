// Package ui provides the Bubble Tea TUI for Intercede.
package ui

import "github.com/abelbrown/intercede/internal/model"

// PrayersLoaded is sent when a fetch attempt settles.
type PrayersLoaded struct {
	Prayers model.Batch
	Err     error
}

// SnapshotLoaded is sent when the cached batch has been read at boot.
// OK is false when nothing was cached.
type SnapshotLoaded struct {
	Snapshot model.Snapshot
	OK       bool
	Err      error
}

// SnapshotSaved is sent after a successful batch has been persisted.
type SnapshotSaved struct {
	Err error
}

// CountdownTick advances the cooldown countdown. Ticks whose ID is not
// the live countdown's ID are stale and dropped.
type CountdownTick struct {
	ID int
}
