package render

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/intercede/internal/model"
)

func testRenderer(width int) Renderer {
	return Renderer{Width: width, Location: time.UTC}
}

func TestNewsLabelAndTitle(t *testing.T) {
	r := testRenderer(80)

	f := r.News(model.Item{Title: "Ceasefire talks resume"}, 0)

	if f.Kind != KindNews {
		t.Errorf("expected KindNews, got %v", f.Kind)
	}
	if f.Label != "News 1" {
		t.Errorf("expected label 'News 1', got %q", f.Label)
	}
	view := f.View()
	if !strings.Contains(view, "News 1") {
		t.Errorf("view missing label: %q", view)
	}
	if !strings.Contains(view, "Ceasefire talks resume") {
		t.Errorf("view missing title: %q", view)
	}
	if !strings.Contains(view, DefaultSource) {
		t.Errorf("view should fall back to %q source: %q", DefaultSource, view)
	}
}

func TestNewsWithLinkSourceAndDate(t *testing.T) {
	r := testRenderer(80)

	f := r.News(model.Item{
		Title:     "Harvest report",
		Link:      "https://example.com/harvest",
		Source:    "AP",
		Published: "Tue, 13 Oct 2026 08:00:00 GMT",
	}, 2)

	view := f.View()
	if f.Label != "News 3" {
		t.Errorf("expected label 'News 3', got %q", f.Label)
	}
	if !strings.Contains(view, "https://example.com/harvest") {
		t.Errorf("linked title should show its URL: %q", view)
	}
	if !strings.Contains(view, "AP") {
		t.Errorf("view missing source: %q", view)
	}
	if strings.Contains(view, DefaultSource) {
		t.Errorf("explicit source should replace default: %q", view)
	}
	if !strings.Contains(view, "Oct 13, 08:00 AM") {
		t.Errorf("view missing formatted date: %q", view)
	}
}

func TestNewsWithUnparseableDate(t *testing.T) {
	r := testRenderer(80)

	f := r.News(model.Item{Title: "Odd date", Published: "sometime yesterday"}, 0)

	if !strings.Contains(f.View(), "sometime yesterday") {
		t.Errorf("raw date should be shown unchanged: %q", f.View())
	}
}

func TestPrayerOptionalBlocks(t *testing.T) {
	r := testRenderer(80)

	full := r.Prayer(model.Item{
		Title:      "A",
		ESVVerse:   "The LORD is my shepherd.",
		Reflection: "He leads.",
		Prayer:     "Lord, lead us.",
	}, 0)
	if full.Kind != KindPrayer {
		t.Errorf("expected KindPrayer, got %v", full.Kind)
	}
	if full.Label != "Intercessory Prayer 1" {
		t.Errorf("expected label 'Intercessory Prayer 1', got %q", full.Label)
	}
	for _, want := range []string{"The LORD is my shepherd.", "He leads.", "Lord, lead us."} {
		if !strings.Contains(full.View(), want) {
			t.Errorf("full prayer card missing %q: %q", want, full.View())
		}
	}

	bare := r.Prayer(model.Item{Title: "A"}, 4)
	if bare.Label != "Intercessory Prayer 5" {
		t.Errorf("expected label 'Intercessory Prayer 5', got %q", bare.Label)
	}
	if !strings.Contains(bare.View(), "Intercessory Prayer 5") {
		t.Errorf("bare card should still render its label: %q", bare.View())
	}
	if strings.Contains(bare.View(), "shepherd") {
		t.Error("bare card should not contain verse text")
	}
}

func TestBatchPairsInOrder(t *testing.T) {
	for _, width := range []int{60, 140} {
		t.Run(fmt.Sprintf("width=%d", width), func(t *testing.T) {
			r := testRenderer(width)
			batch := model.Batch{{Title: "First"}, {Title: "Second"}, {Title: "Third"}}

			grid := r.Batch(batch)

			if len(grid.Blocks) != len(batch) {
				t.Fatalf("expected %d blocks, got %d", len(batch), len(grid.Blocks))
			}
			for i, b := range grid.Blocks {
				if b.News.Label != fmt.Sprintf("News %d", i+1) {
					t.Errorf("block %d news label %q", i, b.News.Label)
				}
				if b.Prayer.Label != fmt.Sprintf("Intercessory Prayer %d", i+1) {
					t.Errorf("block %d prayer label %q", i, b.Prayer.Label)
				}
				if b.News.Index != i || b.Prayer.Index != i {
					t.Errorf("block %d has indexes %d/%d", i, b.News.Index, b.Prayer.Index)
				}
			}

			view := grid.View()
			first := strings.Index(view, "First")
			second := strings.Index(view, "Second")
			third := strings.Index(view, "Third")
			if first < 0 || second < 0 || third < 0 || !(first < second && second < third) {
				t.Errorf("titles out of order in view: %d %d %d", first, second, third)
			}
		})
	}
}

func TestBatchTwoItems(t *testing.T) {
	grid := testRenderer(80).Batch(model.Batch{{Title: "A"}, {Title: "B"}})

	view := grid.View()
	for _, want := range []string{"News 1", "Intercessory Prayer 1", "News 2", "Intercessory Prayer 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("grid missing %q", want)
		}
	}
	if strings.Contains(view, "News 3") {
		t.Error("grid should contain exactly two blocks")
	}
}

func TestBatchEmpty(t *testing.T) {
	grid := testRenderer(80).Batch(nil)
	if len(grid.Blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(grid.Blocks))
	}
	if grid.View() != "" {
		t.Errorf("expected empty view, got %q", grid.View())
	}
}

func TestNarrowWidthStillRenders(t *testing.T) {
	f := testRenderer(5).News(model.Item{Title: "Tiny"}, 0)
	if !strings.Contains(f.View(), "Tiny") {
		t.Errorf("narrow render lost title: %q", f.View())
	}
}
