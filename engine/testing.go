package engine

import (
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/core"
)

// ScriptedEvents is an EventSource that replays a fixed queue, one event per Poll
type ScriptedEvents struct {
	queue []tcell.Event
}

// NewScriptedEvents creates an event source over evs
func NewScriptedEvents(evs ...tcell.Event) *ScriptedEvents {
	return &ScriptedEvents{queue: evs}
}

// Push appends events to the queue
func (s *ScriptedEvents) Push(evs ...tcell.Event) {
	s.queue = append(s.queue, evs...)
}

// Poll pops the next event
func (s *ScriptedEvents) Poll() (tcell.Event, bool) {
	if len(s.queue) == 0 {
		return nil, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

// Pending returns the number of queued events
func (s *ScriptedEvents) Pending() int {
	return len(s.queue)
}

// SoundRecorder is a SoundPlayer that remembers what was played
type SoundRecorder struct {
	Played []core.SoundType
}

func (r *SoundRecorder) Play(st core.SoundType) {
	r.Played = append(r.Played, st)
}

// TestHarness bundles a game with its fakes
type TestHarness struct {
	Game   *Game
	Screen tcell.SimulationScreen
	Events *ScriptedEvents
	Time   *MockTimeProvider
	Sound  *SoundRecorder
}

// NewTestHarness creates a game on an initialized width x height simulation screen
// with a seeded food placer and a mock clock
func NewTestHarness(width, height int, seed uint64) (*TestHarness, error) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.SetSize(width, height)

	h := &TestHarness{
		Screen: screen,
		Events: NewScriptedEvents(),
		Time:   NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		Sound:  &SoundRecorder{},
	}

	h.Game = NewGame(Config{
		Surface:      screen,
		Events:       h.Events,
		Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		TimeProvider: h.Time,
		Sound:        h.Sound,
	})

	return h, nil
}

// Close finalizes the simulation screen
func (h *TestHarness) Close() {
	h.Screen.Fini()
}
