package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/abelbrown/intercede/internal/api"
	"github.com/abelbrown/intercede/internal/logging"
	"github.com/abelbrown/intercede/internal/model"
	"github.com/abelbrown/intercede/internal/render"
)

// countdownInterval is how often the countdown label refreshes.
const countdownInterval = time.Second

// Mode is the derived display state of the app. Exactly one mode holds
// at any time.
type Mode int

const (
	ModeIdle Mode = iota
	ModeLoading
	ModeCooldown
	ModeError
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeCooldown:
		return "cooldown"
	case ModeError:
		return "error"
	default:
		return "idle"
	}
}

// Cooldown is the persisted refresh gate. *cooldown.Store satisfies it.
type Cooldown interface {
	Remaining() time.Duration
	MarkNow() error
}

// AppConfig holds the app's collaborators. Only FetchPrayers and Cooldown
// are required.
type AppConfig struct {
	// FetchPrayers returns a Cmd that performs one fetch and reports a
	// PrayersLoaded message.
	FetchPrayers func() tea.Cmd

	// LoadSnapshot returns a Cmd reporting SnapshotLoaded. Used at boot
	// when the cooldown is still running.
	LoadSnapshot func() tea.Cmd

	// SaveSnapshot returns a Cmd persisting a successful batch and
	// reporting SnapshotSaved.
	SaveSnapshot func(model.Snapshot) tea.Cmd

	Cooldown Cooldown

	// Now is the clock for the date display and snapshot times.
	Now func() time.Time

	// Location renders published times; nil means time.Local.
	Location *time.Location
}

type contentKind int

const (
	contentEmpty contentKind = iota
	contentGrid
	contentError
	contentNotice
)

// content is what the content slot currently holds.
type content struct {
	kind      contentKind
	prayers   model.Batch
	fetchedAt time.Time
	message   string
}

// countdown is the single live cooldown timer. Bumping id invalidates
// every tick already scheduled.
type countdown struct {
	id        int
	active    bool
	remaining time.Duration
}

// App is the root Bubble Tea model.
// IMPORTANT: App does NOT hold the store. It receives data via messages.
type App struct {
	fetchPrayers func() tea.Cmd
	loadSnapshot func() tea.Cmd
	saveSnapshot func(model.Snapshot) tea.Cmd
	cooldown     Cooldown
	now          func() time.Time
	location     *time.Location

	keys     keyMap
	spinner  spinner.Model
	viewport viewport.Model

	loading   bool
	countdown countdown
	content   content

	width  int
	height int
	ready  bool
}

// NewAppWithConfig creates the App and applies the boot transition: an
// active cooldown starts the countdown and the cached batch is shown;
// otherwise the initial load is queued for Init.
func NewAppWithConfig(cfg AppConfig) App {
	s := spinner.New()
	s.Spinner = spinner.Dot

	a := App{
		fetchPrayers: cfg.FetchPrayers,
		loadSnapshot: cfg.LoadSnapshot,
		saveSnapshot: cfg.SaveSnapshot,
		cooldown:     cfg.Cooldown,
		now:          cfg.Now,
		location:     cfg.Location,
		keys:         defaultKeyMap(),
		spinner:      s,
		viewport:     viewport.New(0, 0),
	}
	if a.now == nil {
		a.now = time.Now
	}

	if rem := a.remaining(); rem > 0 {
		a.countdown = countdown{id: 1, active: true, remaining: rem}
		a.content = content{
			kind:    contentNotice,
			message: "Today's prayers were already gathered on this device. You can refresh again when the countdown ends.",
		}
		logging.Info("Cooldown active at boot, skipping initial load", "remaining", rem.Round(time.Second))
	} else if a.fetchPrayers != nil {
		a.loading = true
	}
	return a
}

// Init schedules whatever the boot transition decided: the countdown and
// snapshot read, or the initial fetch.
func (a App) Init() tea.Cmd {
	var cmds []tea.Cmd
	if a.countdown.active {
		cmds = append(cmds, a.tick(a.countdown.id))
		if a.loadSnapshot != nil {
			cmds = append(cmds, a.loadSnapshot())
		}
	}
	if a.loading {
		logging.Info("Initial load")
		cmds = append(cmds, a.fetchPrayers(), a.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case PrayersLoaded:
		return a.finishLoad(msg)

	case SnapshotLoaded:
		return a.applySnapshot(msg), nil

	case SnapshotSaved:
		if msg.Err != nil {
			logging.Warn("Failed to save snapshot", "error", msg.Err)
		}
		return a, nil

	case CountdownTick:
		return a.advanceCountdown(msg)

	case spinner.TickMsg:
		// Let the spinner chain die once loading settles
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return a, cmd
	}

	return a, nil
}

// handleKeyMsg processes keyboard input.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Refresh):
		return a.refresh()
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// Transitions

// refresh starts a load. It is a no-op while loading or cooling down, so
// at most one fetch is ever in flight.
func (a App) refresh() (App, tea.Cmd) {
	if a.loading || a.countdown.active || a.fetchPrayers == nil {
		return a, nil
	}
	a.loading = true
	logging.Info("Refresh requested")
	return a, tea.Batch(a.fetchPrayers(), a.spinner.Tick)
}

// finishLoad settles a fetch: a non-empty batch is shown and starts the
// cooldown; anything else is an error that leaves the cooldown alone.
func (a App) finishLoad(msg PrayersLoaded) (App, tea.Cmd) {
	a.loading = false

	if msg.Err != nil {
		logging.Error("Fetch failed", "error", msg.Err)
		return a.showError(msg.Err), nil
	}
	if msg.Prayers.Empty() {
		logging.Warn("Fetch returned no prayers")
		return a.showError(api.ErrNoPrayers), nil
	}

	fetchedAt := a.now()
	a.setContent(content{kind: contentGrid, prayers: msg.Prayers, fetchedAt: fetchedAt})
	logging.Info("Prayers loaded", "count", len(msg.Prayers))

	if a.cooldown != nil {
		if err := a.cooldown.MarkNow(); err != nil {
			logging.Error("Failed to persist cooldown", "error", err)
		}
	}

	var cmds []tea.Cmd
	if a.saveSnapshot != nil {
		cmds = append(cmds, a.saveSnapshot(model.Snapshot{Prayers: msg.Prayers, FetchedAt: fetchedAt}))
	}
	var tick tea.Cmd
	a, tick = a.startCountdown()
	cmds = append(cmds, tick)
	return a, tea.Batch(cmds...)
}

func (a App) showError(err error) App {
	a.setContent(content{kind: contentError, message: UserMessage(err)})
	return a
}

// applySnapshot shows the cached batch unless something newer already
// occupies the content slot.
func (a App) applySnapshot(msg SnapshotLoaded) App {
	if msg.Err != nil {
		logging.Warn("Failed to load snapshot", "error", msg.Err)
		return a
	}
	if !msg.OK || msg.Snapshot.Prayers.Empty() || a.loading || a.content.kind == contentGrid {
		return a
	}
	a.setContent(content{kind: contentGrid, prayers: msg.Snapshot.Prayers, fetchedAt: msg.Snapshot.FetchedAt})
	return a
}

// startCountdown replaces any live countdown with a fresh one.
func (a App) startCountdown() (App, tea.Cmd) {
	a.countdown.id++
	rem := a.remaining()
	if rem <= 0 {
		a.countdown.active = false
		a.countdown.remaining = 0
		return a, nil
	}
	a.countdown.active = true
	a.countdown.remaining = rem
	return a, a.tick(a.countdown.id)
}

// advanceCountdown handles one tick of the live countdown. Stale ticks
// are dropped without rescheduling. Expiry holds 00:00 for one tick
// before the control is released.
func (a App) advanceCountdown(msg CountdownTick) (App, tea.Cmd) {
	if !a.countdown.active || msg.ID != a.countdown.id {
		return a, nil
	}
	rem := a.remaining()
	if rem <= 0 && a.countdown.remaining > 0 {
		a.countdown.remaining = 0
		return a, a.tick(msg.ID)
	}
	if rem <= 0 {
		a.countdown.id++
		a.countdown.active = false
		a.countdown.remaining = 0
		logging.Info("Cooldown finished")
		return a, nil
	}
	a.countdown.remaining = rem
	return a, a.tick(msg.ID)
}

func (a App) tick(id int) tea.Cmd {
	return tea.Tick(countdownInterval, func(time.Time) tea.Msg {
		return CountdownTick{ID: id}
	})
}

func (a App) remaining() time.Duration {
	if a.cooldown == nil {
		return 0
	}
	return a.cooldown.Remaining()
}

// Accessors (for testing and the status line).

// Mode derives the display state. Loading wins over the countdown, the
// countdown wins over a displayed error.
func (a App) Mode() Mode {
	switch {
	case a.loading:
		return ModeLoading
	case a.countdown.active:
		return ModeCooldown
	case a.content.kind == contentError:
		return ModeError
	default:
		return ModeIdle
	}
}

// Remaining returns the countdown value last displayed.
func (a App) Remaining() time.Duration {
	return a.countdown.remaining
}

// ErrorMessage returns the message in the error box, if one is shown.
func (a App) ErrorMessage() string {
	if a.content.kind != contentError {
		return ""
	}
	return a.content.message
}

// Prayers returns the batch currently displayed.
func (a App) Prayers() model.Batch {
	if a.content.kind != contentGrid {
		return nil
	}
	return a.content.prayers
}

// CanRefresh reports whether the refresh control is actionable.
func (a App) CanRefresh() bool {
	return !a.loading && !a.countdown.active
}

func (a App) renderer() render.Renderer {
	r := render.New(a.width)
	if a.location != nil {
		r.Location = a.location
	}
	return r
}
