// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil keeps copies of remote netlists on local disk, keyed by
// their location.
package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/netdiff/internal/log"
)

// Entry represents a cached artifact on disk. Key is the clear-text key and
// the file name is its hash.
type Entry struct {
	Key  string
	Path string
	Data []byte
}

// Dir resolves the base cache directory.
// Precedence:
//  1. NETDIFF_CACHE_DIR, if set and non-empty
//  2. os.UserCacheDir()/netdiff
//
// Returns ("", false) if a base cannot be resolved (treat as disabled).
func Dir() (string, bool) {
	if c, ok := os.LookupEnv("NETDIFF_CACHE_DIR"); ok && c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "netdiff"), true
	}
	return "", false
}

// Enabled returns true unless NETDIFF_CACHE explicitly disables it
// ("0"/"false").
func Enabled() bool {
	enabled := os.Getenv("NETDIFF_CACHE")
	return enabled != "0" && enabled != "false"
}

// EnsureBaseDir creates the base cache directory if caching is enabled and a
// base path can be resolved. Returns the path, whether it is usable, and an
// error if creation failed.
func EnsureBaseDir() (string, bool, error) {
	if !Enabled() {
		return "", false, nil
	}

	base, ok := Dir()
	if !ok {
		return "", false, nil
	}

	if err := os.MkdirAll(base, 0o755); err != nil { //nolint:mnd
		return base, false, fmt.Errorf("failed to create cache base directory: %w", err)
	}
	log.Debugf("cache dir ready: path=%s", base)
	return base, true, nil
}

// EntryPath returns the path where the entry for clearKey lives beneath
// subdirs, and whether a file currently exists there.
func EntryPath(subdirs []string, clearKey string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	p := filepath.Join(append([]string{base}, append(subdirs, encodeKey(clearKey))...)...)
	if info, err := os.Stat(p); err == nil && !info.IsDir() {
		return p, true
	}
	return p, false
}

// Purge removes cache files older than the provided number of hours. If
// hours <= 0 or the cache dir cannot be resolved, it is a no-op.
func Purge(hours float64) error {
	if hours <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}

	base, ok := Dir()
	if !ok {
		return nil
	}

	maxAge := time.Duration(hours * float64(time.Hour))
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// Gone since the directory was read.
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err == nil {
				log.Debugf("removed cache file %s", path)
			} else {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to purge cache: %w", err)
	}
	return nil
}

// Read attempts to read a cached entry.
func Read(subdirs []string, clearKey string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := EntryPath(subdirs, clearKey)
	if !ok {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", clearKey)
	return &Entry{Key: clearKey, Path: p, Data: b}, true
}

// Write stores data for the given key beneath subdirs, creating directories
// as needed.
func Write(subdirs []string, clearKey string, data []byte) error {
	if !Enabled() {
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	dir := filepath.Join(append([]string{base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	p := filepath.Join(dir, encodeKey(clearKey))
	if err := os.WriteFile(p, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	log.Debugf("cache write: key=%s", clearKey)
	return nil
}

// Fetch returns the cached data for clearKey, calling fill and caching its
// result on a miss. A failed cache write is logged, not returned.
func Fetch(subdirs []string, clearKey string, fill func() ([]byte, error)) ([]byte, error) {
	if e, ok := Read(subdirs, clearKey); ok {
		return e.Data, nil
	}

	data, err := fill()
	if err != nil {
		return nil, err
	}
	if err := Write(subdirs, clearKey, data); err != nil {
		log.WithError(err).Warnf("cache write failed for %s", clearKey)
	}
	return data, nil
}

// encodeKey hashes a clear-text key into a file name.
func encodeKey(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}
