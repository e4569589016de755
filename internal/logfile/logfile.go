package logfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// File is an append-only log file that is emptied, not rotated, once it
// grows past MaxLines.
type File struct {
	Path     string
	MaxLines int

	mu sync.Mutex
	f  *os.File
}

func Open(path string, maxLines int) (*File, error) {
	if maxLines <= 0 {
		return nil, fmt.Errorf("max lines must be positive, got %d", maxLines)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return &File{Path: path, MaxLines: maxLines, f: f}, nil
}

func (l *File) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return 0, os.ErrClosed
	}
	return l.f.Write(p)
}

// Check empties the file when it holds more than MaxLines lines.
func (l *File) Check() (truncated bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, err := countLines(l.Path)
	if err != nil {
		return false, err
	}
	if n <= l.MaxLines {
		return false, nil
	}
	// O_APPEND writers continue at the new end of file.
	if err := os.Truncate(l.Path, 0); err != nil {
		return false, fmt.Errorf("truncating log file: %w", err)
	}
	return true, nil
}

func (l *File) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	syncErr := l.f.Sync()
	closeErr := l.f.Close()
	l.f = nil
	return errors.Join(syncErr, closeErr)
}

// Logger returns a text slog.Logger writing one line per event to l.
func (l *File) Logger(level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(l, &slog.HandlerOptions{Level: level}))
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	buf := make([]byte, 32*1024)
	n := 0
	for {
		c, err := r.Read(buf)
		n += bytes.Count(buf[:c], []byte{'\n'})
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("reading log file: %w", err)
		}
	}
}
