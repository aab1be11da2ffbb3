package engine

import (
	"context"
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/input"
	"github.com/lixenwraith/snake/render"
	"github.com/lixenwraith/snake/render/renderers"
)

// EventSource delivers pending terminal events without blocking.
// ok is false when no event is waiting.
type EventSource interface {
	Poll() (ev tcell.Event, ok bool)
}

// Config wires a game to its collaborators. Surface is required; the rest have defaults.
type Config struct {
	Surface      core.Surface
	Events       EventSource
	Keys         *input.KeyTable
	Rand         *rand.Rand
	TimeProvider TimeProvider
	Sound        core.SoundPlayer
}

// Game owns the snake, the food and all per-tick state
type Game struct {
	Snake  *Snake
	Food   Food
	State  GameState
	Ticks  uint64
	Resize ResizeState

	surface      core.Surface
	events       EventSource
	keys         *input.KeyTable
	placer       *FoodPlacer
	orchestrator *render.RenderOrchestrator
	timeProvider TimeProvider
	sound        core.SoundPlayer

	err error
}

// NewGame creates a running game with the initial snake and a first food placement
func NewGame(cfg Config) *Game {
	g := &Game{
		Snake:        NewSnake(),
		State:        StateRunning,
		surface:      cfg.Surface,
		events:       cfg.Events,
		keys:         cfg.Keys,
		placer:       NewFoodPlacer(cfg.Rand),
		timeProvider: cfg.TimeProvider,
		sound:        cfg.Sound,
	}

	if g.keys == nil {
		g.keys = input.DefaultKeyTable()
	}
	if g.timeProvider == nil {
		g.timeProvider = NewMonotonicTimeProvider()
	}

	g.orchestrator = render.NewRenderOrchestrator(g.surface)
	g.orchestrator.Register(renderers.NewWallRenderer(), render.PriorityWall)
	g.orchestrator.Register(renderers.NewSnakeRenderer(), render.PrioritySnake)
	g.orchestrator.Register(renderers.NewFoodRenderer(), render.PriorityFood)

	g.Food = g.placer.Place(g.Snake.Body, core.BoundsOf(g.surface))

	return g
}

// Err returns the error that ended the game, nil while running
func (g *Game) Err() error {
	return g.err
}

// TickDelay returns the end-of-tick pause for a heading
func TickDelay(dir core.Direction) time.Duration {
	if dir.Vertical() {
		return constants.VerticalTickDelay
	}
	return constants.HorizontalTickDelay
}

// Run ticks until the game ends or ctx is cancelled.
// It returns the game-over error, ErrQuit, or the context error.
func (g *Game) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := g.Tick(); err != nil {
			return err
		}
	}
}

// Tick runs one frame: input, movement, resize reconciliation, render, sleep.
// After the game has ended every call returns the same error.
func (g *Game) Tick() error {
	if g.State == StateOver {
		return g.err
	}

	if err := g.handleInput(); err != nil {
		return g.finish(err)
	}

	result, err := g.Snake.Advance(g.surface, &g.Food, g.placer)
	if err != nil {
		return g.finish(err)
	}
	if result == MoveGrew {
		log.Printf("game: ate food, length %d", g.Snake.Len())
		g.play(core.SoundEat)
	}

	if err := g.Resize.Reconcile(g.surface, g.Snake, &g.Food, g.placer); err != nil {
		return g.finish(err)
	}

	g.orchestrator.RenderFrame(render.RenderContext{
		Bounds: core.BoundsOf(g.surface),
		Body:   g.Snake.Body,
		Food:   g.Food.Point,
	})

	g.Ticks++
	g.timeProvider.Sleep(TickDelay(g.Snake.Dir))

	return nil
}

// handleInput consumes at most one pending event
func (g *Game) handleInput() error {
	if g.events == nil {
		return nil
	}

	ev, ok := g.events.Poll()
	if !ok {
		return nil
	}

	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := g.keys.Lookup(ev)
		if intent == input.IntentQuit {
			return ErrQuit
		}
		if g.Snake.Steer(intent) {
			log.Printf("game: heading %v", g.Snake.Dir)
		}
	case *tcell.EventResize:
		// Size is read live by movement and reconciliation
		w, h := ev.Size()
		log.Printf("game: resize event %dx%d", w, h)
	}

	return nil
}

func (g *Game) finish(err error) error {
	g.State = StateOver
	g.err = err
	log.Printf("game: over after %d ticks, length %d: %v", g.Ticks, g.Snake.Len(), err)
	if IsGameOver(err) {
		g.play(core.SoundCrash)
	}
	return err
}

func (g *Game) play(st core.SoundType) {
	if g.sound != nil {
		g.sound.Play(st)
	}
}
