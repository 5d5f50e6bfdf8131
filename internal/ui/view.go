package ui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// Refresh control labels.
const (
	LabelRefresh = "Refresh Prayers"
	LabelLoading = "Generating prayers…"
	LabelWaiting = "Refresh in"
)

// FormatCountdown renders d as mm:ss, rounding partial seconds up so the
// label reads 00:00 only once the cooldown has actually ended.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(math.Ceil(d.Seconds()))
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ControlLabel returns the refresh control's current text.
func (a App) ControlLabel() string {
	switch a.Mode() {
	case ModeLoading:
		return LabelLoading
	case ModeCooldown:
		return LabelWaiting + " " + FormatCountdown(a.countdown.remaining)
	default:
		return LabelRefresh
	}
}

func (a App) controlView() string {
	switch a.Mode() {
	case ModeLoading:
		return ControlBusy.Render(a.spinner.View() + " " + a.ControlLabel())
	case ModeCooldown:
		return ControlDisabled.Render(a.ControlLabel())
	default:
		return ControlEnabled.Render("r " + a.ControlLabel())
	}
}

// setContent swaps the content slot and re-renders it into the viewport.
func (a *App) setContent(c content) {
	a.content = c
	a.refreshViewport()
	a.viewport.GotoTop()
}

// layout sizes the viewport to whatever the chrome leaves over.
func (a *App) layout() {
	chrome := lipgloss.Height(a.topView()) + lipgloss.Height(a.bottomView())
	h := a.height - chrome
	if h < 1 {
		h = 1
	}
	a.viewport.Width = a.width
	a.viewport.Height = h
	a.refreshViewport()
}

func (a *App) refreshViewport() {
	if !a.ready {
		return
	}
	a.viewport.SetContent(a.contentView())
}

func (a App) contentView() string {
	r := a.renderer()
	switch a.content.kind {
	case contentGrid:
		return r.Batch(a.content.prayers).View()
	case contentError:
		return r.ErrorBox(a.content.message)
	case contentNotice:
		return r.Notice(a.content.message)
	default:
		return ""
	}
}

func (a App) topView() string {
	r := a.renderer()
	date := r.DateBadge(a.now())
	control := a.controlView()

	gap := a.width - lipgloss.Width(date) - lipgloss.Width(control)
	if gap < 1 {
		gap = 1
	}
	bar := date + strings.Repeat(" ", gap) + control
	return r.Header() + "\n\n" + bar + "\n"
}

func (a App) bottomView() string {
	return a.renderer().Footer() + "\n" + a.statusBar()
}

// statusBar renders key hints and, when prayers are shown, their age.
func (a App) statusBar() string {
	hints := [][2]string{
		{a.keys.Refresh.Help().Key, a.keys.Refresh.Help().Desc},
		{"↑/↓", "scroll"},
		{a.keys.Quit.Help().Key, a.keys.Quit.Help().Desc},
	}
	styled := make([]string, 0, len(hints))
	plain := make([]string, 0, len(hints))
	for _, h := range hints {
		styled = append(styled, StatusBarKey.Render(h[0])+StatusBarText.Render(":"+h[1]))
		plain = append(plain, h[0]+":"+h[1])
	}
	left := strings.Join(styled, " ")

	right := ""
	if a.content.kind == contentGrid && !a.content.fetchedAt.IsZero() {
		right = StatusBarText.Render("updated " + humanize.RelTime(a.content.fetchedAt, a.now(), "ago", "from now"))
	}

	// StatusBar pads one column each side
	inner := a.width - 2
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		right = ""
		padding = inner - lipgloss.Width(left)
	}
	if padding < 0 {
		return StatusBar.Width(a.width).Render(runewidth.Truncate(strings.Join(plain, " "), max(inner, 0), "…"))
	}
	return StatusBar.Width(a.width).Render(left + strings.Repeat(" ", padding) + right)
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	body := a.viewport.View()
	if a.loading {
		body = lipgloss.NewStyle().Height(a.viewport.Height).Render(a.renderer().Loading(a.spinner.View()))
	}

	return a.topView() + "\n" + body + "\n" + a.bottomView()
}
