package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model for one snake game.
// Only the Bubble Tea goroutine touches the engine.
type Model struct {
	engine    *snake.Engine
	queue     *core.CommandQueue
	acc       *Accumulator
	screen    *core.Screen
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	cellWidth int
	interval  time.Duration // Frame period
	frame     uint64
	deaths    int
	quitting  bool
}

// NewModel creates a model running a fresh engine built from cfg.
// A zero seed is replaced with the current time.
func NewModel(cfg config.Config, seed int64, logger *log.Logger) (Model, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	engine, err := snake.New(snake.OptionsFrom(cfg, seed))
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}

	h := help.New()
	h.ShowAll = false

	logger.Debug("engine ready", "seed", seed, "grid", fmt.Sprintf("%dx%d", cfg.Grid.Width, cfg.Grid.Height))

	return Model{
		engine:    engine,
		queue:     core.NewCommandQueue(cfg.Input.QueueCapacity),
		acc:       NewAccumulator(cfg.TickInterval()),
		screen:    core.NewScreen(cfg.Grid.Width*cfg.Grid.CellWidth+2, cfg.Grid.Height+3),
		keys:      DefaultKeyMap(),
		help:      h,
		logger:    logger,
		cellWidth: cfg.Grid.CellWidth,
		interval:  cfg.FrameInterval(),
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Last row is the help footer.
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the command for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.keys.MapKey(msg)
	if !m.queue.Push(cmd) {
		m.logger.Debug("input queue full, command dropped", "command", cmd, "dropped", m.queue.Dropped())
	}
	return m, nil
}

// handleFrame drains input, runs the ticks that are due and schedules the next frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.queue.Drain(func(c core.Command) {
		if intent := m.engine.HandleCommand(c); intent == snake.IntentStart {
			m.logger.Info("game started")
		}
	})

	if m.engine.Quit() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.engine.State() == snake.StatePlaying {
		for i, steps := 0, m.acc.Advance(now); i < steps; i++ {
			m.observe(m.engine.Tick())
		}
	} else {
		// Paused or welcome time is not owed to the simulation.
		m.acc.Reset()
	}

	m.frame++
	return m, frameCmd(m.interval)
}

// observe logs notable tick events.
func (m *Model) observe(snap snake.Snapshot) {
	if snap.Deaths != m.deaths {
		m.deaths = snap.Deaths
		m.logger.Debug("snake died", "cause", snap.LastDeath, "deaths", snap.Deaths, "best", snap.Best)
		return
	}
	if snap.Ate {
		m.logger.Debug("food eaten", "score", snap.Score, "length", snap.Len(), "next", snap.Food)
	}
}

// Snapshot returns the engine's current snapshot.
func (m Model) Snapshot() snake.Snapshot {
	return m.engine.Snapshot()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Render(m.screen, m.engine.Snapshot(), snake.RenderOptions{
		CellWidth: m.cellWidth,
		Frame:     m.frame,
	})
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(cfg config.Config, seed int64, logger *log.Logger) error {
	model, err := NewModel(cfg, seed, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
