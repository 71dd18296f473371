// Package cache keeps rendered documents on disk so repeated renders of an
// unchanged document at the same width skip layout entirely.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Store is a directory of JSON render entries, one file per key:
//
//	~/.cache/termkit/
//	  3f9a…c1.json
//	  7b02…e4.json
type Store struct {
	dir    string
	logger *slog.Logger
}

// Entry is one cached render.
type Entry struct {
	Width   int       `json:"width"`
	Color   string    `json:"color"`
	Lines   []string  `json:"lines"`
	Created time.Time `json:"created"`
}

// Stats summarizes the store contents.
type Stats struct {
	Entries int
	Bytes   int64
	Oldest  time.Time
}

// NewStore creates a cache store at the given directory.
// The directory is created with 0700 permissions if it does not exist.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("cache: create directory %s: %w", dir, err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// DefaultDir returns $XDG_CACHE_HOME/termkit or its platform equivalent.
func DefaultDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("cache: locate user cache dir: %w", err)
	}
	return filepath.Join(base, "termkit"), nil
}

// Key derives the entry key for a document rendered at width in a color
// mode. Any change to the inputs yields a different key.
func Key(doc []byte, width int, color string) string {
	h := sha256.New()
	h.Write(doc)
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(width)))
	h.Write([]byte{0})
	h.Write([]byte(color))
	return hex.EncodeToString(h.Sum(nil)[:16])
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get reads a cached render. It returns the entry and whether it is fresh
// (younger than ttl). A missing key returns nil, false, nil. A stale entry
// is still returned with fresh set to false. Corrupted entries are removed
// and treated as a miss.
func (s *Store) Get(key string, ttl time.Duration) (*Entry, bool, error) {
	path := s.keyPath(key)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: stat %s: %w", key, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("cache: read %s: %w", key, err)
	}

	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		s.logger.Warn("cache: removing corrupted entry",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		_ = os.Remove(path)
		return nil, false, nil
	}

	fresh := time.Since(info.ModTime()) < ttl
	s.logger.Debug("cache: hit", slog.String("key", key), slog.Bool("fresh", fresh))
	return &e, fresh, nil
}

// Put writes an entry with an atomic write (write to temp file, then
// rename) so concurrent readers never see a partial file.
func (s *Store) Put(key string, e *Entry) error {
	if e.Created.IsZero() {
		e.Created = time.Now()
	}
	encoded, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-"+key+"-*.json")
	if err != nil {
		return fmt.Errorf("cache: create temp for %s: %w", key, err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpName)
		}
	}()

	if err := os.Chmod(tmpName, 0600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: chmod temp for %s: %w", key, err)
	}
	if _, err := tmp.Write(encoded); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("cache: write temp for %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cache: close temp for %s: %w", key, err)
	}
	if err := os.Rename(tmpName, s.keyPath(key)); err != nil {
		return fmt.Errorf("cache: rename temp for %s: %w", key, err)
	}

	success = true
	s.logger.Debug("cache: stored", slog.String("key", key), slog.Int("lines", len(e.Lines)))
	return nil
}

// Keys returns all cached keys.
func (s *Store) Keys() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}

	var keys []string
	for _, e := range entries {
		if key, ok := entryKey(e); ok {
			keys = append(keys, key)
		}
	}
	return keys
}

// Prune removes entries older than ttl and reports how many were removed.
func (s *Store) Prune(ttl time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("cache: prune read dir: %w", err)
	}

	removed := 0
	for _, e := range entries {
		if _, ok := entryKey(e); !ok {
			continue
		}
		info, err := e.Info()
		if err != nil || time.Since(info.ModTime()) < ttl {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, e.Name())); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("cache: prune remove %s: %w", e.Name(), err)
		}
		removed++
	}
	if removed > 0 {
		s.logger.Debug("cache: pruned", slog.Int("removed", removed))
	}
	return removed, nil
}

// Clear removes all cache files from the store directory.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("cache: clear read dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, e.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("cache: clear remove %s: %w", e.Name(), err)
		}
	}
	return nil
}

// Stats counts entries and their total size.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return st, nil
		}
		return st, fmt.Errorf("cache: stats read dir: %w", err)
	}

	for _, e := range entries {
		if _, ok := entryKey(e); !ok {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		st.Entries++
		st.Bytes += info.Size()
		if st.Oldest.IsZero() || info.ModTime().Before(st.Oldest) {
			st.Oldest = info.ModTime()
		}
	}
	return st, nil
}

// entryKey reports the key of a directory entry that holds a cached render.
func entryKey(e os.DirEntry) (string, bool) {
	name := e.Name()
	if e.IsDir() || strings.HasPrefix(name, ".tmp-") || !strings.HasSuffix(name, ".json") {
		return "", false
	}
	return strings.TrimSuffix(name, ".json"), true
}
