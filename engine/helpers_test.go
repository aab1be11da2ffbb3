package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func newTestHarness(t *testing.T, w, h int) *TestHarness {
	t.Helper()
	harness, err := NewTestHarness(w, h, 42)
	if err != nil {
		t.Fatalf("Failed to create harness: %v", err)
	}
	t.Cleanup(harness.Close)
	return harness
}

func newTestPlacer(seed uint64) *FoodPlacer {
	return NewFoodPlacer(rand.New(rand.NewPCG(seed, seed+1)))
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	mainc, _, _, _ := s.GetContent(x, y)
	return mainc
}

func assertBody(t *testing.T, got, want []core.Point) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected body %v, got %v", want, got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("Expected body %v, got %v (mismatch at %d)", want, got, i)
		}
	}
}

func assertConnected(t *testing.T, body []core.Point) {
	t.Helper()
	for i := 1; i < len(body); i++ {
		dx, dy := body[i].X-body[i-1].X, body[i].Y-body[i-1].Y
		if dx*dx+dy*dy != 1 {
			t.Fatalf("Segments %d and %d are not orthogonally adjacent: %v", i-1, i, body)
		}
	}
}

var tcellDefault = tcell.StyleDefault
