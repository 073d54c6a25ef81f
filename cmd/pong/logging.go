package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/pong/constant"
)

// setupLogging points the standard logger at the rotating debug log, or discards output
// Nothing may reach stdout or stderr while the terminal is raw
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(constant.LogDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(constant.LogDir, constant.LogFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > constant.MaxLogSize {
		stamp := time.Now().Format("20060102_150405")
		rotated := filepath.Join(constant.LogDir, fmt.Sprintf("pong_%s.log", stamp))
		// A failed rename keeps appending to the oversized file
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("Logging started (pid %d)", os.Getpid())
	return f
}
