package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// RotatorOptions controls log file rotation.
type RotatorOptions struct {
	Dir        string
	BaseName   string // defaults to panemux.log
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// LogRotator is an io.Writer appending to a log file that is rotated
// once it exceeds MaxSizeMB. Backups are named <base>.<timestamp>.
type LogRotator struct {
	mu          sync.Mutex
	baseDir     string
	baseName    string
	maxSize     int64 // bytes
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
	now         func() time.Time
}

// NewLogRotator opens (or creates) the current log file.
func NewLogRotator(opts RotatorOptions) (*LogRotator, error) {
	if opts.BaseName == "" {
		opts.BaseName = "panemux.log"
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	r := &LogRotator{
		baseDir:    opts.Dir,
		baseName:   opts.BaseName,
		maxSize:    int64(opts.MaxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		maxBackups: opts.MaxBackups,
		compress:   opts.Compress,
		now:        time.Now,
	}

	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the current log file.
func (r *LogRotator) Path() string {
	return filepath.Join(r.baseDir, r.baseName)
}

func (r *LogRotator) openCurrentFile() error {
	logPath := r.Path()

	if info, err := os.Stat(logPath); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err = r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close current log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := fmt.Sprintf("%s.%s", r.Path(), r.now().Format("2006-01-02-15-04-05.000"))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.cleanup()

	r.currentSize = 0
	return r.openCurrentFile()
}

func compressFile(filePath string) (err error) {
	in, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(filePath + ".gz")
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		return err
	}
	return gz.Close()
}

// Backups lists rotated files, oldest first.
func (r *LogRotator) Backups() ([]string, error) {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		return nil, err
	}
	type backup struct {
		name string
		mod  time.Time
	}
	var found []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), r.baseName+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, backup{name: e.Name(), mod: info.ModTime()})
	}
	slices.SortFunc(found, func(a, b backup) int {
		if c := a.mod.Compare(b.mod); c != 0 {
			return c
		}
		return strings.Compare(a.name, b.name)
	})
	names := make([]string, len(found))
	for i, b := range found {
		names[i] = b.name
	}
	return names, nil
}

// cleanup removes backups older than maxAge, then the oldest beyond
// maxBackups.
func (r *LogRotator) cleanup() {
	names, err := r.Backups()
	if err != nil {
		return
	}

	kept := names[:0]
	for _, name := range names {
		path := filepath.Join(r.baseDir, name)
		if r.maxAge > 0 {
			if info, err := os.Stat(path); err == nil && r.now().Sub(info.ModTime()) > r.maxAge {
				if err := os.Remove(path); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
				}
				continue
			}
		}
		kept = append(kept, name)
	}

	if r.maxBackups > 0 && len(kept) > r.maxBackups {
		for _, name := range kept[:len(kept)-r.maxBackups] {
			if err := os.Remove(filepath.Join(r.baseDir, name)); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to remove excess backup file: %v\n", err)
			}
		}
	}
}

// Close closes the current log file.
func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}

// NewFileLogger creates a JSON logger writing to a rotated file, used when
// the terminal belongs to the interactive front-end.
func NewFileLogger(cfg Config, opts RotatorOptions) (zerolog.Logger, *LogRotator, error) {
	r, err := NewLogRotator(opts)
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	cfg.Format = "json"
	cfg.Output = r
	return New(cfg), r, nil
}
