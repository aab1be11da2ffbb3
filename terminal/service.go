package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
)

// TerminalService manages terminal lifecycle and input polling
type TerminalService struct {
	screen  tcell.Screen
	eventCh chan tcell.Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
	stopped bool
}

// NewService creates a service over a tcell screen; nil creates the real terminal screen
func NewService(screen tcell.Screen) (*TerminalService, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("terminal screen: %w", err)
		}
	}

	return &TerminalService{
		screen:  screen,
		eventCh: make(chan tcell.Event, constants.EventQueueSize),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Init enters raw mode with the cursor hidden and a blank screen
func (s *TerminalService) Init() error {
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	s.screen.SetStyle(tcell.StyleDefault)
	s.screen.HideCursor()
	s.screen.Clear()

	core.SetCrashFinalizer(s.screen.Fini)
	return nil
}

// Start launches the input polling goroutine
func (s *TerminalService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.stopped {
		return
	}
	s.running = true

	core.Go(s.pollLoop)
}

// pollLoop forwards screen events until the screen is finalized or Stop is called
func (s *TerminalService) pollLoop() {
	defer close(s.doneCh)

	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}

		select {
		case s.eventCh <- ev:
		case <-s.stopCh:
			return
		}
	}
}

// Poll returns the next pending event without blocking
func (s *TerminalService) Poll() (tcell.Event, bool) {
	select {
	case ev := <-s.eventCh:
		return ev, true
	default:
		return nil, false
	}
}

// Stop halts polling and restores the terminal. Safe to call more than once.
func (s *TerminalService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	wasRunning := s.running
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	core.SetCrashFinalizer(nil)

	// Fini unblocks PollEvent, which then returns nil
	s.screen.Fini()

	if wasRunning {
		<-s.doneCh
	}
}

// Screen returns the wrapped screen, which satisfies core.Surface
func (s *TerminalService) Screen() tcell.Screen {
	return s.screen
}
