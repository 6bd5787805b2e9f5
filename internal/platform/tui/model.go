package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astrotap/internal/config"
	"github.com/vovakirdan/astrotap/internal/engine"
	"github.com/vovakirdan/astrotap/internal/eventbus"
	"github.com/vovakirdan/astrotap/internal/events"
)

// latest holds the most recent snapshots published by the core. The bus
// delivers synchronously on the Update goroutine, so no locking is needed;
// the pointer lets the value-typed model observe frames published during
// Tick.
type latest struct {
	frame events.RenderFrame
	stats events.StatsSnapshot
}

// Model is the Bubble Tea model for a play session. It owns the engine for
// the session, publishes intents derived from terminal input, and renders
// the frames the core publishes back.
type Model struct {
	eng    *engine.Engine
	cfg    config.ClassicConfig
	fps    int
	keys   KeyMap
	help   help.Model
	latest *latest
	start  time.Time

	width  int
	height int

	// Settings mirrored locally so single-key adjustments can publish the
	// full settings record.
	speedLevel  int
	progression bool
	uiOpacity   float64

	showHelp bool
	quitting bool
}

// NewModel creates the model and subscribes it to the engine's outbound
// snapshots.
func NewModel(eng *engine.Engine, cfg config.ClassicConfig, fps int) Model {
	if fps <= 0 {
		fps = 60
	}
	m := Model{
		eng:         eng,
		cfg:         cfg,
		fps:         fps,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		latest:      &latest{},
		start:       time.Now(),
		speedLevel:  cfg.Defaults.SpeedLevel,
		progression: cfg.Defaults.DifficultyProgression,
		uiOpacity:   cfg.Defaults.UIOpacity,
	}
	m.latest.frame.UI.ShowStartScreen = true

	sink := m.latest
	eventbus.Subscribe(eng.Bus(), func(ev events.RenderFrameReady) {
		sink.frame = ev.Frame
	})
	eventbus.Subscribe(eng.Bus(), func(ev events.StatsUpdated) {
		sink.stats = ev.Snapshot
	})

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.eng.Tick()
		return m, tickCmd(m.fps)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.quitting = true
		//nolint:errcheck // Persistence failures are logged by the engine.
		m.eng.Shutdown()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		m.eng.Bus().Publish(events.StartRequested{})

	case key.Matches(msg, m.keys.Pause):
		m.eng.Bus().Publish(events.PauseToggleRequested{})

	case key.Matches(msg, m.keys.Quit):
		m.eng.Bus().Publish(events.QuitRequested{})

	case key.Matches(msg, m.keys.SpeedUp):
		m.speedLevel++
		m.publishSettings()

	case key.Matches(msg, m.keys.SpeedDown):
		m.speedLevel--
		m.publishSettings()

	case key.Matches(msg, m.keys.Progression):
		m.progression = !m.progression
		m.publishSettings()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}

	return m, nil
}

// handleMouse maps a left press in the play field to a tap in play-area
// coordinates. Presses outside the field are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x, y, ok := cellToArea(m.cfg.Area, m.width, m.height, msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	m.eng.Bus().Publish(events.PointerDown{
		X:           x,
		Y:           y,
		TimestampMs: time.Since(m.start).Milliseconds(),
	})
	return m, nil
}

// publishSettings sends the mirrored settings to the core. The mode clamps
// values, so the mirror is re-clamped here to stay in sync with what the
// core actually applied.
func (m *Model) publishSettings() {
	if m.speedLevel < 1 {
		m.speedLevel = 1
	}
	if m.speedLevel > 5 {
		m.speedLevel = 5
	}
	m.eng.Bus().Publish(events.SettingsUpdateRequested{
		UIOpacity:             m.uiOpacity,
		SpeedLevel:            m.speedLevel,
		DifficultyProgression: m.progression,
	})
}

// View renders the latest frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m.latest.frame, m.latest.stats, m.cfg.Area, m.width, m.height, m.help, m.keys)
}

// Run starts a local play session and blocks until the user exits. The
// engine is shut down before Run returns, so the final result is persisted.
func Run(eng *engine.Engine, cfg config.ClassicConfig, fps int) error {
	model := NewModel(eng, cfg, fps)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Taps come in as mouse presses
	)

	_, err := p.Run()
	if shutdownErr := eng.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}
