package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/pkg/errors"

	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/terminal"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPONG CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	logFile := setupLogging(constant.DebugLogging)

	outcome, err := play(terminal.New(), startAudio)
	if err != nil {
		log.Printf("Fatal: %v", err)
		closeLog(logFile)
		fmt.Fprintf(os.Stderr, "pong: %+v\n", err)
		os.Exit(1)
	}

	closeLog(logFile)
	fmt.Print(outcome.Summary())
}

// play owns the terminal for one match; it is restored before play returns on every path
// Audio starts first: the sound backend may print to stderr, which must happen before raw mode
func play(term terminal.Terminal, audioStart func() (engine.Sounder, func())) (engine.Outcome, error) {
	sounder, stopAudio := audioStart()
	defer stopAudio()

	defer term.Fini()
	if err := term.Init(); err != nil {
		return engine.Outcome{}, errors.WithMessage(err, "initialize terminal")
	}

	state := engine.NewMatchState(engine.NewMonotonicTimeProvider())
	game := engine.NewGame(state, term, render.NewRenderer(term.Writer()), sounder)
	return game.Run()
}

// startAudio opens the sound device; a nil sounder means the match runs silent
func startAudio() (engine.Sounder, func()) {
	if !constant.AudioEnabled {
		return nil, func() {}
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
		return nil, func() {}
	}
	return sm, sm.Cleanup
}

func closeLog(f *os.File) {
	if f != nil {
		f.Close()
	}
}
