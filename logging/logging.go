// Package logging builds the process logger writing to stderr and an append-only file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// DefaultDir is the log directory relative to the installation directory.
	DefaultDir = "logs"
	// DefaultFileName is the log file name.
	DefaultFileName = "chuck_norris_server.log"
)

// Options configures the process logger.
type Options struct {
	Debug bool
	// File is the log file path; empty disables file output.
	File string
	// Stream receives log lines in addition to File; defaults to os.Stderr.
	Stream io.Writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewHandler returns a text handler writing to Stream and File. The returned
// closer releases the file.
func NewHandler(options Options) (slog.Handler, io.Closer, error) {
	level := slog.LevelInfo
	if options.Debug {
		level = slog.LevelDebug
	}
	stream := options.Stream
	if stream == nil {
		stream = os.Stderr
	}
	writers := []io.Writer{stream}
	var closer io.Closer = nopCloser{}
	if options.File != "" {
		if err := os.MkdirAll(filepath.Dir(options.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(options.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, file)
		closer = file
	}
	handler := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	return handler, closer, nil
}

// DefaultFile returns logs/chuck_norris_server.log next to the running executable.
func DefaultFile() string {
	dir := "."
	if executable, err := os.Executable(); err == nil {
		dir = filepath.Dir(executable)
	}
	return filepath.Join(dir, DefaultDir, DefaultFileName)
}
