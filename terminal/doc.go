// Package terminal provides direct ANSI terminal control for a single-threaded game loop.
//
// Features:
//   - Raw mode entry/exit with exactly-once restoration
//   - Alternate screen, hidden cursor, auto-wrap disabled for the session
//   - Bounded stdin poll returning at most one key event per call
//   - Escape sequence parsing into tcell key events (code, rune, modifier mask)
//   - Emergency restoration for panic paths
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
