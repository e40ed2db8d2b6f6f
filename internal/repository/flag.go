package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"
)

const (
	// FlagFilePermissions defines the permissions for result flag files
	FlagFilePermissions = 0644
	// LockTimeout defines the maximum time to wait for a lock
	LockTimeout = 30 * time.Second
	// LockRetryInterval defines the interval between lock retry attempts
	LockRetryInterval = 100 * time.Millisecond
)

// FlagWriter records a command's boolean result for the calling workflow.
type FlagWriter interface {
	Write(ctx context.Context, value bool) error
	Path() string
}

// fileFlagWriter writes "1" or "0" to a single file, truncating it each time.
type fileFlagWriter struct {
	fs   afero.Fs
	path string
}

// NewFlagWriter creates a FlagWriter for path on fs.
func NewFlagWriter(fs afero.Fs, path string) FlagWriter {
	return &fileFlagWriter{fs: fs, path: path}
}

func (w *fileFlagWriter) Path() string {
	return w.path
}

// Write stores the flag. On the OS filesystem the write holds an exclusive
// lock kept in the temp directory, so the flag's directory only ever gains
// the flag file itself.
func (w *fileFlagWriter) Write(ctx context.Context, value bool) error {
	if _, ok := w.fs.(*afero.OsFs); ok {
		lock := flock.New(flagLockPath(w.path))
		lockCtx, cancel := context.WithTimeout(ctx, LockTimeout)
		defer cancel()
		locked, err := lock.TryLockContext(lockCtx, LockRetryInterval)
		if err != nil {
			return fmt.Errorf("failed to acquire lock for %s: %w", w.path, err)
		}
		if !locked {
			return fmt.Errorf("could not acquire lock for %s within timeout", w.path)
		}
		defer lock.Unlock() //nolint:errcheck // released on process exit regardless
	}
	data := []byte("0")
	if value {
		data = []byte("1")
	}
	if err := afero.WriteFile(w.fs, w.path, data, FlagFilePermissions); err != nil {
		return fmt.Errorf("failed to write flag file %s: %w", w.path, err)
	}
	return nil
}

// flagLockPath names the lock file for a flag path. Writers for the same flag
// resolve to the same lock regardless of how the path was spelled.
func flagLockPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return filepath.Join(os.TempDir(), "stash-release-"+hex.EncodeToString(sum[:8])+".lock")
}
