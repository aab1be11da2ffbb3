package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/snake/audio"
	"github.com/lixenwraith/snake/constants"
	"github.com/lixenwraith/snake/core"
	"github.com/lixenwraith/snake/engine"
	"github.com/lixenwraith/snake/terminal"
)

var (
	debugFlag = flag.Bool("debug", false, "Write a debug log to logs/snake.log")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// run plays one game and prints the reason it ended
func run() error {
	term, err := terminal.NewService(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	if err := term.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer term.Stop()
	term.Start()

	cfg := engine.Config{
		Surface: term.Screen(),
		Events:  term,
	}

	var sounds *audio.SoundManager
	if !*muteFlag {
		sounds = audio.NewSoundManager(nil)
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
			sounds = nil
		} else {
			cfg.Sound = sounds
			defer sounds.Cleanup()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	game := engine.NewGame(cfg)
	err = game.Run(ctx)

	if sounds != nil && engine.IsGameOver(err) {
		sounds.Wait(2 * constants.CrashSoundDuration)
	}

	// Restore the terminal before printing so the message lands on the normal screen
	term.Stop()
	fmt.Printf("%s\n%s\n", exitReason(err), constants.MessageGameOver)
	return nil
}

// exitReason maps the loop's terminal error to the line printed above "Game Over"
func exitReason(err error) string {
	var goErr *engine.GameOverError
	switch {
	case errors.As(err, &goErr):
		return goErr.Reason.String()
	case errors.Is(err, engine.ErrQuit), errors.Is(err, context.Canceled):
		return constants.MessageQuit
	case err == nil:
		return constants.MessageQuit
	default:
		return err.Error()
	}
}
