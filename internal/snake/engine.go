package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Options configures an Engine.
type Options struct {
	Grid          core.Grid
	InitialLength int
	Seed          int64
	MaxAttempts   int // Food placement rejection-sampling budget
}

// OptionsFrom builds engine options from a loaded config and a resolved seed.
func OptionsFrom(cfg config.Config, seed int64) Options {
	return Options{
		Grid:          core.NewGrid(cfg.Grid.Width, cfg.Grid.Height),
		InitialLength: cfg.Snake.InitialLength,
		Seed:          seed,
		MaxAttempts:   cfg.Food.MaxAttempts,
	}
}

// Engine is the single owner of the simulation: chain, food, score and state.
// It is not safe for concurrent use; one frame loop drives it.
type Engine struct {
	opts   Options
	grid   core.Grid
	rng    *rand.Rand
	placer *FoodPlacer
	mapper InputMapper

	chain     *Chain
	direction Direction
	food      core.Point
	score     int
	best      int
	ate       bool

	state     State
	tick      uint64
	deaths    int
	lastDeath DeathCause
	quit      bool
}

// New creates an engine on the welcome screen with a fresh chain and food.
func New(opts Options) (*Engine, error) {
	g := opts.Grid
	switch {
	case g.W < 2 || g.H < 2:
		return nil, fmt.Errorf("snake: grid %dx%d too small", g.W, g.H)
	case opts.InitialLength < 1:
		return nil, fmt.Errorf("snake: initial length %d must be positive", opts.InitialLength)
	case opts.InitialLength > g.W/2+1:
		return nil, fmt.Errorf("snake: initial length %d does not fit on a %d-wide grid", opts.InitialLength, g.W)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	e := &Engine{
		opts:   opts,
		grid:   g,
		rng:    rng,
		placer: NewFoodPlacer(g, rng, opts.MaxAttempts),
		chain:  &Chain{},
		state:  StateWelcome,
	}
	e.resetRound()
	return e, nil
}

// HandleCommand applies a command posted by the input collaborator.
// On the welcome screen any command except quit starts the game and is
// otherwise consumed.
func (e *Engine) HandleCommand(cmd core.Command) Intent {
	if e.state == StateWelcome {
		switch cmd {
		case core.CmdNone:
			return IntentIgnore
		case core.CmdQuit:
			e.quit = true
			return IntentQuit
		}
		e.state = StatePlaying
		return IntentStart
	}

	intent := e.mapper.Map(cmd, e.direction)
	switch intent {
	case IntentTogglePause:
		if e.state == StatePaused {
			e.state = StatePlaying
		} else {
			e.state = StatePaused
		}
	case IntentQuit:
		e.quit = true
	case IntentStart:
		intent = IntentIgnore
	}
	return intent
}

// Tick advances the simulation by one step and returns the resulting snapshot.
// Outside the playing state it changes nothing.
func (e *Engine) Tick() Snapshot {
	if e.state != StatePlaying || e.quit {
		return e.Snapshot()
	}
	e.tick++
	e.ate = false

	if dir, ok := e.mapper.TakeTurn(); ok {
		e.direction = dir
	}

	// Consumption is judged on the cell the head enters this tick. Growing
	// before Advance lets the same Advance pull the duplicate off the tail.
	if e.direction.Step(e.chain.Head()) == e.food {
		e.chain.Grow()
		e.score++
		e.best = max(e.best, e.score)
		e.ate = true
	}

	e.chain.Advance(e.direction)

	switch {
	case !e.grid.InBounds(e.chain.Head()):
		e.die(DeathWall)
	case e.chain.SelfCollision():
		e.die(DeathSelf)
	case e.ate:
		e.placeFood()
	}

	return e.Snapshot()
}

// die performs the Dead -> Playing transition inside the current tick.
func (e *Engine) die(cause DeathCause) {
	e.state = StateDead
	e.deaths++
	e.lastDeath = cause
	e.ate = false
	e.resetRound()
	e.state = StatePlaying
}

// resetRound restores the canonical chain, heading and score and places new food.
func (e *Engine) resetRound() {
	e.chain.Reset(e.opts.InitialLength, e.grid.Center())
	e.direction = DefaultDirection
	e.mapper.Reset()
	e.score = 0
	e.placeFood()
}

// placeFood panics when the grid is full: the chain has outgrown the grid,
// which only a misconfigured game can reach.
func (e *Engine) placeFood() {
	p, err := e.placer.Place(e.chain.cells())
	if err != nil {
		panic(err)
	}
	e.food = p
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Quit reports whether a quit command has been accepted.
func (e *Engine) Quit() bool {
	return e.quit
}

// Direction returns the current heading.
func (e *Engine) Direction() Direction {
	return e.direction
}
