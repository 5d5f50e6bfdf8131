package render

import "github.com/charmbracelet/lipgloss"

// Colors used by the cards and shell.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorGold      = lipgloss.Color("179")
	colorError     = lipgloss.Color("196")
)

// minSideBySide is the narrowest width at which a news card and its prayer
// card are placed next to each other instead of stacked.
const minSideBySide = 100

// cardChrome is the horizontal space taken by a card's border and padding.
const cardChrome = 4

var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

var prayerCardStyle = cardStyle.
	BorderForeground(colorPrimary)

var labelStyle = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true)

var linkedTitleStyle = titleStyle.
	Underline(true)

var linkStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Italic(true)

var metaStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

var verseStyle = lipgloss.NewStyle().
	Foreground(colorGold).
	Italic(true).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(colorGold).
	PaddingLeft(1)

var reflectionStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

var prayerTextStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255"))

var logoStyle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Bold(true)

var headingStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Bold(true)

var taglineStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Italic(true)

var dateBadgeStyle = lipgloss.NewStyle().
	Foreground(colorPrimary).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

var footerStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Italic(true)

var loadingStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(1, 2)

var errorBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorError).
	Padding(0, 1)

var errorTitleStyle = lipgloss.NewStyle().
	Foreground(colorError).
	Bold(true)

var noticeStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(1, 2)
