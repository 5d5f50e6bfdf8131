// Package render turns prayer batches into display fragments.
//
// Everything here is a pure function of its inputs: a Fragment is built
// once and never mutated, and the controller decides where it goes.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/intercede/internal/model"
)

// DefaultSource labels items whose source the backend did not report.
const DefaultSource = "Google News"

// Kind identifies what a Fragment displays.
type Kind int

const (
	KindNews Kind = iota
	KindPrayer
)

// Fragment is one rendered card.
type Fragment struct {
	Kind  Kind
	Index int    // 0-based position in the batch
	Label string // "News 3", "Intercessory Prayer 3"
	body  string
}

// View returns the styled card.
func (f Fragment) View() string {
	return f.body
}

// Block pairs an item's news card with its prayer card.
type Block struct {
	News   Fragment
	Prayer Fragment
}

// Grid is a rendered batch, one Block per item in batch order.
type Grid struct {
	Blocks []Block
	body   string
}

// View returns the whole grid.
func (g Grid) View() string {
	return g.body
}

// Renderer holds the layout inputs shared by every fragment.
type Renderer struct {
	Width    int            // total columns available
	Location *time.Location // zone for published times; nil means time.Local
}

// New creates a Renderer for the given terminal width.
func New(width int) Renderer {
	return Renderer{Width: width, Location: time.Local}
}

// sideBySide reports whether block cards sit next to each other.
func (r Renderer) sideBySide() bool {
	return r.Width >= minSideBySide
}

// cardWidth is the outer width of one card.
func (r Renderer) cardWidth() int {
	w := r.Width
	if r.sideBySide() {
		w = (r.Width - 1) / 2
	}
	if w < cardChrome+10 {
		w = cardChrome + 10
	}
	return w
}

// textWidth is the wrap width inside a card.
func (r Renderer) textWidth() int {
	return r.cardWidth() - cardChrome
}

// News renders the headline card for the item at index.
func (r Renderer) News(item model.Item, index int) Fragment {
	label := fmt.Sprintf("News %d", index+1)
	w := r.textWidth()

	lines := []string{labelStyle.Render(label)}

	if item.Link != "" {
		lines = append(lines,
			linkedTitleStyle.Width(w).Render(item.Title),
			linkStyle.Width(w).Render(item.Link),
		)
	} else {
		lines = append(lines, titleStyle.Width(w).Render(item.Title))
	}

	source := item.Source
	if source == "" {
		source = DefaultSource
	}
	meta := source
	if item.Published != "" {
		meta += " · " + FormatPublished(item.Published, r.loc())
	}
	lines = append(lines, metaStyle.Width(w).Render(meta))

	return Fragment{
		Kind:  KindNews,
		Index: index,
		Label: label,
		body:  cardStyle.Width(r.cardWidth() - 2).Render(strings.Join(lines, "\n")),
	}
}

// Prayer renders the verse, reflection and prayer card for the item at
// index. The prayer paragraph is always present, even when blank.
func (r Renderer) Prayer(item model.Item, index int) Fragment {
	label := fmt.Sprintf("Intercessory Prayer %d", index+1)
	w := r.textWidth()

	lines := []string{labelStyle.Render(label)}
	if item.ESVVerse != "" {
		// Width excludes the left rule
		lines = append(lines, verseStyle.Width(w-1).Render(item.ESVVerse))
	}
	if item.Reflection != "" {
		lines = append(lines, reflectionStyle.Width(w).Render(item.Reflection))
	}
	lines = append(lines, prayerTextStyle.Width(w).Render(item.Prayer))

	return Fragment{
		Kind:  KindPrayer,
		Index: index,
		Label: label,
		body:  prayerCardStyle.Width(r.cardWidth() - 2).Render(strings.Join(lines, "\n\n")),
	}
}

// Batch renders every item as a news/prayer Block, preserving order. An
// empty batch yields an empty Grid; the caller decides whether that is
// an error.
func (r Renderer) Batch(batch model.Batch) Grid {
	blocks := make([]Block, 0, len(batch))
	views := make([]string, 0, len(batch))

	for i, item := range batch {
		b := Block{News: r.News(item, i), Prayer: r.Prayer(item, i)}
		blocks = append(blocks, b)

		if r.sideBySide() {
			views = append(views, lipgloss.JoinHorizontal(lipgloss.Top, b.News.View(), " ", b.Prayer.View()))
		} else {
			views = append(views, lipgloss.JoinVertical(lipgloss.Left, b.News.View(), b.Prayer.View()))
		}
	}

	return Grid{Blocks: blocks, body: strings.Join(views, "\n\n")}
}

func (r Renderer) loc() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}
