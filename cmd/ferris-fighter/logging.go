package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "ferris-fighter.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to a file under dir
// Logging never touches stdout or stderr while the terminal is in raw mode
// Returns nil with output discarded when disabled or on failure
func setupLogging(enabled bool, dir string) *os.File {
	if !enabled {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("ferris-fighter-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Printf("ferris-fighter started (pid %d)", os.Getpid())
	return f
}
