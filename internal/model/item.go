// Package model provides the prayer data types shared by the client,
// the store and the UI.
package model

import "time"

// Item is one headline paired with its prayer, exactly as the backend
// returns it. Every field except Title is optional.
type Item struct {
	Title      string `json:"title"`
	Link       string `json:"link,omitempty"`
	Source     string `json:"source,omitempty"`
	Published  string `json:"published,omitempty"` // raw backend string; may not parse
	ESVVerse   string `json:"esv_verse,omitempty"`
	Reflection string `json:"reflection,omitempty"`
	Prayer     string `json:"prayer,omitempty"`
}

// Batch is the ordered result of one fetch. Display order is slice order.
type Batch []Item

// Empty reports whether the batch has no items.
func (b Batch) Empty() bool {
	return len(b) == 0
}

// Snapshot is the last successful batch together with the time it was
// fetched. It is what a restart inside the cooldown window shows.
type Snapshot struct {
	Prayers   Batch     `json:"prayers"`
	FetchedAt time.Time `json:"fetched_at"`
}
