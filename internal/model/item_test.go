package model

import (
	"encoding/json"
	"testing"
)

func TestItemDecodesBackendFields(t *testing.T) {
	raw := `{
		"title": "Floods in the valley",
		"link": "https://example.com/floods",
		"source": "Reuters",
		"published": "Mon, 13 Oct 2026 08:00:00 GMT",
		"esv_verse": "\"The LORD sits enthroned over the flood.\" — Psalm 29:10",
		"reflection": "God reigns over the waters.",
		"prayer": "Lord, you ordain all things for your glory..."
	}`

	var item Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if item.Title != "Floods in the valley" {
		t.Errorf("unexpected title %q", item.Title)
	}
	if item.Source != "Reuters" {
		t.Errorf("unexpected source %q", item.Source)
	}
	if item.ESVVerse == "" {
		t.Error("esv_verse should be decoded")
	}
	if item.Prayer == "" {
		t.Error("prayer should be decoded")
	}
}

func TestItemOmitsMissingOptionalFields(t *testing.T) {
	data, err := json.Marshal(Item{Title: "A"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"title":"A"}` {
		t.Errorf("expected only title, got %s", data)
	}
}

func TestBatchEmpty(t *testing.T) {
	var nilBatch Batch
	if !nilBatch.Empty() {
		t.Error("nil batch should be empty")
	}
	if (Batch{{Title: "A"}}).Empty() {
		t.Error("batch with one item should not be empty")
	}
}
