package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "flock.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a discard logger unless debug is set, in which case
// records go to logs/flock.log, rotating an oversized previous file aside
// The terminal is never a log target while the screen is active
func setupLogging(debug bool) (*slog.Logger, *os.File) {
	discard := slog.New(slog.DiscardHandler)
	if !debug {
		slog.SetDefault(discard)
		return discard, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v\n", err)
		return discard, nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("flock-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotate: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log open: %v\n", err)
		return discard, nil
	}

	logger := newLogger(f, slog.LevelDebug)
	slog.SetDefault(logger)
	return logger, f
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
