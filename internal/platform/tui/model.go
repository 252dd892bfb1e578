package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/savelyev-an/tiltbeam/internal/core"
	"github.com/savelyev-an/tiltbeam/internal/registry"
	"github.com/savelyev-an/tiltbeam/internal/sensor"
	"github.com/savelyev-an/tiltbeam/internal/session"
	"github.com/savelyev-an/tiltbeam/internal/storage"
)

// armedReporter is implemented by games with a one-shot start gesture.
type armedReporter interface {
	Armed() bool
}

// nudger is implemented by sensor sources that accept keyboard-driven
// tilt adjustments (the emulator).
type nudger interface {
	Nudge(direction float64)
}

// Model is the Bubble Tea model that runs one game against one sensor
// source. Each active run owns a subscription to the source; the
// session slot guarantees the previous run is torn down before a new
// one starts.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	parent     context.Context
	source     sensor.Source
	samples    <-chan sensor.Sample
	slot       *session.Slot
	haptics    Haptics
	inputFrame core.InputFrame
	gameState  core.GameState
	gen        int
	startedAt  time.Time
	sensorDone bool
	quitting   bool
	scoreSaved bool
}

// NewModel creates a model and opens the sensor subscription. A Start
// error from the source (the equivalent of a denied sensor permission)
// aborts before the UI ever comes up. Sensor subscriptions are scoped
// to ctx, so a dying SSH session takes its sample stream down with it.
func NewModel(ctx context.Context, game registry.Game, store *storage.Store, cfg core.RuntimeConfig, src sensor.Source, h Haptics, slot *session.Slot) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if h == nil {
		h = NoopHaptics{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		parent:     ctx,
		source:     src,
		slot:       slot,
		haptics:    h,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}

	samples, err := m.subscribe()
	if err != nil {
		return Model{}, fmt.Errorf("sensor unavailable: %w", err)
	}
	m.samples = samples

	return m, nil
}

// subscribe starts a fresh sensor subscription and installs its
// teardown into the session slot, disposing whatever run came before.
func (m *Model) subscribe() (<-chan sensor.Sample, error) {
	ctx, cancel := context.WithCancel(m.parent)
	samples, err := m.source.Start(ctx)
	if err != nil {
		cancel()
		return nil, err
	}
	m.slot.Install(session.NewRunFunc(cancel))
	return samples, nil
}

// Init initializes the model and starts the game and sample loops.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tea.Batch(
		tickCmd(m.config.TickRate, m.gen),
		waitSampleCmd(m.samples, m.gen),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil // Stale loop from before a restart
		}
		return m.handleTick()

	case TiltMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		if tr, ok := m.game.(registry.TiltReceiver); ok {
			tr.Tilt(msg.Sample)
		}
		return m, waitSampleCmd(m.samples, m.gen)

	case sensorClosedMsg:
		if msg.Gen == m.gen {
			m.sensorDone = true
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuitKey(msg) {
		m.quitting = true
		return m, tea.Quit
	}

	// Before the start gesture, any key counts as the one-shot tap.
	armed := true
	if ar, ok := m.game.(armedReporter); ok {
		armed = ar.Armed()
	}
	if !armed {
		m.inputFrame.Set(core.ActionTap)
		return m, nil
	}

	// Keyboard tilt emulation: the key adjusts the virtual device
	// angle, the sensor stream picks the new angle up on its own.
	if dir, ok := tiltDirection(msg); ok {
		if n, canNudge := m.source.(nudger); canNudge {
			n.Nudge(dir)
			return m, nil
		}
	}

	if action := mapKeyAction(msg, m.gameState.GameOver); action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart tears down the old run and opens a fresh subscription
	// before the new simulation produces its first tick.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.gen++

		samples, err := m.subscribe()
		if err != nil {
			// Source refused to restart; quit rather than run deaf.
			m.quitting = true
			return m, tea.Quit
		}
		m.samples = samples
		m.sensorDone = false

		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.startedAt = time.Now()
		m.inputFrame.Clear()
		return m, tea.Batch(
			tickCmd(m.config.TickRate, m.gen),
			waitSampleCmd(m.samples, m.gen),
		)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	for _, e := range result.Events {
		m.haptics.Feedback(e)
	}

	// Record the run once when it ends.
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRun(m.game.ID(), m.gameState.Points, m.gameState.Won, time.Since(m.startedAt))
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.gen)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given game and sensor
// source, blocking until the player quits. Cleanup of the sensor
// subscription is idempotent: the slot dispose and the source stop can
// both run without double-teardown effects.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, src sensor.Source, h Haptics) error {
	var slot session.Slot

	model, err := NewModel(context.Background(), game, store, cfg, src, h, &slot)
	if err != nil {
		return err
	}

	defer src.Stop()
	defer slot.Dispose()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
