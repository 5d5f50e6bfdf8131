package store

import (
	"encoding/json"
	"fmt"

	"github.com/abelbrown/intercede/internal/model"
)

// SnapshotKey is where the last successful batch is kept.
const SnapshotKey = "intercede_last_batch"

// SaveSnapshot persists snap, replacing the previous one.
func (s *Store) SaveSnapshot(snap model.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.Set(SnapshotKey, string(data))
}

// LoadSnapshot returns the last saved snapshot. ok is false when none
// has been saved yet.
func (s *Store) LoadSnapshot() (snap model.Snapshot, ok bool, err error) {
	raw, ok, err := s.Get(SnapshotKey)
	if err != nil || !ok {
		return model.Snapshot{}, false, err
	}
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return model.Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, true, nil
}
