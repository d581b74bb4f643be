package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"
)

// Finisher restores a display surface to a sane state
// tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

var crashScreen atomic.Pointer[Finisher]

// SetCrashScreen registers the screen to restore before printing a crash report
func SetCrashScreen(f Finisher) {
	if f == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&f)
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if f := crashScreen.Load(); f != nil {
		(*f).Fini()
	}

	// Use \r\n for raw mode compatibility to avoid zig-zag output
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mFERRIS-FIGHTER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
