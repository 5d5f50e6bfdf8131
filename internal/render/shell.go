package render

import (
	"strings"
	"time"
)

// Copy shown around the content area.
const (
	AppName      = "Intercede"
	Heading      = "Daily Intercessory Prayer"
	Tagline      = "Reasoning over today's headlines to lift up the world in prayer."
	FooterVerse  = `"I urge that supplications, prayers, intercessions, and thanksgivings be made for all people…" — 1 Timothy 2:1 (ESV)`
	LoadingText  = "Gathering today's headlines and crafting prayers…"
	ErrorHeading = "Something went wrong"
)

// Header renders the logo, heading and tagline.
func (r Renderer) Header() string {
	return strings.Join([]string{
		logoStyle.Render("● " + AppName),
		headingStyle.Render(Heading),
		taglineStyle.Width(r.Width).Render(Tagline),
	}, "\n")
}

// DateBadge renders the current date, e.g. "Wednesday, October 14, 2026".
func (r Renderer) DateBadge(now time.Time) string {
	return dateBadgeStyle.Render(now.In(r.loc()).Format("Monday, January 2, 2006"))
}

// Footer renders the closing verse.
func (r Renderer) Footer() string {
	return footerStyle.Width(r.Width).Render(FooterVerse)
}

// Loading renders the in-progress indicator. spin is the current spinner
// frame.
func (r Renderer) Loading(spin string) string {
	return loadingStyle.Render(spin + " " + LoadingText)
}

// ErrorBox renders a failed attempt's message.
func (r Renderer) ErrorBox(message string) string {
	body := errorTitleStyle.Render(ErrorHeading) + "\n" + message
	return errorBoxStyle.Width(r.cardWidth() - 2).Render(body)
}

// Notice renders a neutral message in the content area.
func (r Renderer) Notice(message string) string {
	return noticeStyle.Width(r.Width).Render(message)
}
