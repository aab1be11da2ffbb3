package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

func keyEvent(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestNewGameInitialState(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game

	if g.State != StateRunning {
		t.Errorf("Expected running state, got %v", g.State)
	}
	assertBody(t, g.Snake.Body, []core.Point{{X: 3, Y: 3}, {X: 2, Y: 3}})
	if core.ContainsPoint(g.Snake.Body, g.Food.Point) {
		t.Errorf("Initial food %+v on body", g.Food)
	}
	if !(core.Bounds{Width: 20, Height: 10}).InInterior(g.Food.Point) {
		t.Errorf("Initial food %+v outside interior", g.Food)
	}
}

func TestTickWithoutKeySlides(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game
	g.Food = Food{core.Point{X: 10, Y: 7}}

	if err := g.Tick(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assertBody(t, g.Snake.Body, []core.Point{{X: 4, Y: 3}, {X: 3, Y: 3}})
	if got := runeAt(h.Screen, 2, 3); got == constants.SnakeRune {
		t.Error("Vacated tail cell still drawn")
	}
	if got := runeAt(h.Screen, 4, 3); got != constants.SnakeRune {
		t.Errorf("Expected head drawn at (4,3), got %q", got)
	}
	if got := runeAt(h.Screen, 10, 7); got != constants.FoodRune {
		t.Errorf("Expected food drawn at (10,7), got %q", got)
	}
	if got := runeAt(h.Screen, 0, 0); got != tcell.RuneULCorner {
		t.Errorf("Expected wall corner at origin, got %q", got)
	}

	sleeps := h.Time.Sleeps()
	if len(sleeps) != 1 || sleeps[0] != constants.HorizontalTickDelay {
		t.Errorf("Expected one horizontal delay, got %v", sleeps)
	}
	if g.Ticks != 1 {
		t.Errorf("Expected tick count 1, got %d", g.Ticks)
	}
}

func TestTickEatsFood(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game
	g.Food = Food{core.Point{X: 4, Y: 3}}

	if err := g.Tick(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assertBody(t, g.Snake.Body, []core.Point{{X: 4, Y: 3}, {X: 3, Y: 3}, {X: 2, Y: 3}})
	if core.ContainsPoint(g.Snake.Body, g.Food.Point) {
		t.Errorf("Replacement food %+v overlaps body", g.Food)
	}
	if len(h.Sound.Played) != 1 || h.Sound.Played[0] != core.SoundEat {
		t.Errorf("Expected eat sound, got %v", h.Sound.Played)
	}
}

func TestTickAppliesOneKeyPerTick(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game
	g.Food = Food{core.Point{X: 15, Y: 8}}

	// Up arrow heads down on the inverted axis; the left arrow waits for the next tick
	h.Events.Push(keyEvent(tcell.KeyUp), keyEvent(tcell.KeyLeft))

	if err := g.Tick(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Snake.Dir != core.Down {
		t.Fatalf("Expected heading down, got %v", g.Snake.Dir)
	}
	if !g.Snake.Head().Equal(core.Point{X: 3, Y: 2}) {
		t.Errorf("Expected head at (3,2), got %+v", g.Snake.Head())
	}
	if h.Events.Pending() != 1 {
		t.Errorf("Expected one event left in queue, got %d", h.Events.Pending())
	}

	if err := g.Tick(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if g.Snake.Dir != core.Left {
		t.Errorf("Expected heading left, got %v", g.Snake.Dir)
	}

	sleeps := h.Time.Sleeps()
	want := []time.Duration{constants.VerticalTickDelay, constants.HorizontalTickDelay}
	if len(sleeps) != len(want) || sleeps[0] != want[0] || sleeps[1] != want[1] {
		t.Errorf("Expected delays %v, got %v", want, sleeps)
	}
}

func TestTickIgnoresReversalAndUnboundKeys(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game
	g.Food = Food{core.Point{X: 15, Y: 8}}

	h.Events.Push(
		keyEvent(tcell.KeyLeft),
		keyEvent(tcell.KeyRight),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventResize(20, 10),
	)

	for i := 0; i < 4; i++ {
		if err := g.Tick(); err != nil {
			t.Fatalf("Tick %d: unexpected error: %v", i, err)
		}
		if g.Snake.Dir != core.Right {
			t.Fatalf("Tick %d: heading changed to %v", i, g.Snake.Dir)
		}
	}
	if !g.Snake.Head().Equal(core.Point{X: 7, Y: 3}) {
		t.Errorf("Expected head at (7,3), got %+v", g.Snake.Head())
	}
}

func TestTickQuit(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game
	h.Events.Push(keyEvent(tcell.KeyEscape))

	err := g.Tick()
	if !errors.Is(err, ErrQuit) {
		t.Fatalf("Expected ErrQuit, got %v", err)
	}
	if IsGameOver(err) {
		t.Error("Quit must not be reported as a game-over reason")
	}
	if g.State != StateOver {
		t.Errorf("Expected over state, got %v", g.State)
	}
	if len(h.Sound.Played) != 0 {
		t.Errorf("Quit should be silent, got %v", h.Sound.Played)
	}
}

func TestRunUntilWall(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game

	err := g.Run(context.Background())
	if !errors.Is(err, ErrHitWall) {
		t.Fatalf("Expected ErrHitWall, got %v", err)
	}
	if err.Error() != constants.MessageHitWall {
		t.Errorf("Expected message %q, got %q", constants.MessageHitWall, err.Error())
	}
	if !g.Snake.Head().Equal(core.Point{X: 18, Y: 3}) {
		t.Errorf("Expected head to stop at (18,3), got %+v", g.Snake.Head())
	}
	if g.Ticks != 15 {
		t.Errorf("Expected 15 completed ticks, got %d", g.Ticks)
	}
	if last := h.Sound.Played[len(h.Sound.Played)-1]; last != core.SoundCrash {
		t.Errorf("Expected crash sound last, got %v", h.Sound.Played)
	}

	// The ended game keeps returning its reason
	if again := g.Tick(); again != err {
		t.Errorf("Expected repeated error %v, got %v", err, again)
	}
	if g.Err() != err {
		t.Errorf("Err() = %v, want %v", g.Err(), err)
	}
}

func TestRunSnakeLostOnShrink(t *testing.T) {
	h := newTestHarness(t, 20, 10)
	g := h.Game
	g.Food = Food{core.Point{X: 15, Y: 8}}

	if err := g.Tick(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	h.Screen.SetSize(4, 10)
	err := g.Tick()
	if !errors.Is(err, ErrSnakeLost) {
		t.Fatalf("Expected ErrSnakeLost, got %v", err)
	}
	if err.Error() != constants.MessageSnakeLost {
		t.Errorf("Expected message %q, got %q", constants.MessageSnakeLost, err.Error())
	}
}

func TestRunCrashedIntoSelf(t *testing.T) {
	h := newTestHarness(t, 20, 12)
	g := h.Game
	g.Snake = &Snake{
		Dir:  core.Right,
		Body: []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}},
	}
	g.Food = Food{core.Point{X: 15, Y: 10}}

	// Right -> down (up arrow) -> left -> up (down arrow) lands on the body
	h.Events.Push(keyEvent(tcell.KeyUp), keyEvent(tcell.KeyLeft), keyEvent(tcell.KeyDown))

	err := g.Run(context.Background())
	if !errors.Is(err, ErrCrashedIntoSelf) {
		t.Fatalf("Expected ErrCrashedIntoSelf, got %v", err)
	}
	if err.Error() != constants.MessageCrashedIntoSelf {
		t.Errorf("Expected message %q, got %q", constants.MessageCrashedIntoSelf, err.Error())
	}
}

func TestRunHonoursCancelledContext(t *testing.T) {
	h := newTestHarness(t, 20, 10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.Game.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if h.Game.Ticks != 0 {
		t.Errorf("Expected no ticks, got %d", h.Game.Ticks)
	}
}
