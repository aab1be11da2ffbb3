// Package terminal owns the tcell screen for the lifetime of the process.
//
// It enters raw, non-echoing, cursor-hidden mode on Init, pumps tcell events into a
// buffered channel from a single goroutine, and exposes a non-blocking Poll so the
// game loop never suspends waiting for a key. Stop restores the terminal.
package terminal
