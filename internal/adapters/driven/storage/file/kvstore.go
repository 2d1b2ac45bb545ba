package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/digkill/tarot-app/internal/core/domain"
	"github.com/digkill/tarot-app/internal/core/ports/driven"
	"github.com/digkill/tarot-app/internal/logger"
)

// Ensure KVStore implements the interface.
var _ driven.KVStore = (*KVStore)(nil)

// KVStore is a file-based key-value store. Each key lives in its own
// JSON document under the data directory, written atomically via a
// temp file and rename. A filesystem watcher invalidates the read
// cache when another process rewrites a document, so long-lived
// sessions observe external edits.
type KVStore struct {
	dir     string
	watcher *fsnotify.Watcher

	mu    sync.RWMutex
	cache map[string][]byte

	closeOnce sync.Once
	done      chan struct{}
}

// NewKVStore creates a file store rooted at dataDir. If dataDir is
// empty, defaults to ~/.tarot/data.
func NewKVStore(dataDir string) (*KVStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".tarot", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &KVStore{
		dir:   dataDir,
		cache: make(map[string][]byte),
		done:  make(chan struct{}),
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		// The store still works without invalidation; reads just
		// hit the filesystem every time.
		logger.Warn().Err(err).Msg("filesystem watcher unavailable, read cache disabled")
		return s, nil
	}
	if err := watcher.Add(dataDir); err != nil {
		logger.Warn().Err(err).Str("dir", dataDir).Msg("cannot watch data directory, read cache disabled")
		watcher.Close()
		return s, nil
	}
	s.watcher = watcher
	go s.watch()

	return s, nil
}

// Get returns the value stored under key, or domain.ErrNotFound.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.watcher != nil {
		s.mu.RLock()
		cached, ok := s.cache[key]
		s.mu.RUnlock()
		if ok {
			out := make([]byte, len(cached))
			copy(out, cached)
			return out, nil
		}
	}

	raw, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("reading key %q: %w", key, err)
	}

	if s.watcher != nil {
		s.mu.Lock()
		s.cache[key] = raw
		s.mu.Unlock()
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Set stores value under key. The document is written to a temp file
// first and moved into place, so readers never observe a partial
// write.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := s.pathFor(key)
	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file for key %q: %w", key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions for key %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file for key %q: %w", key, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing key %q: %w", key, err)
	}

	s.mu.Lock()
	s.cache[key] = append([]byte(nil), value...)
	s.mu.Unlock()
	return nil
}

// Delete removes the document stored under key. Deleting an absent
// key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(s.pathFor(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting key %q: %w", key, err)
	}
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()
	return nil
}

// Close stops the filesystem watcher.
func (s *KVStore) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		if s.watcher != nil {
			err = s.watcher.Close()
		}
	})
	return err
}

// Dir returns the data directory the store is rooted at.
func (s *KVStore) Dir() string {
	return s.dir
}

// pathFor maps a logical key to its document path. Keys are dotted
// lowercase identifiers so they are used as filenames directly.
func (s *KVStore) pathFor(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// watch drops cache entries when their backing documents change on
// disk. Temp files from in-flight atomic writes are ignored.
func (s *KVStore) watch() {
	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(event.Name)
			if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			key := strings.TrimSuffix(name, ".json")
			s.mu.Lock()
			delete(s.cache, key)
			s.mu.Unlock()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn().Err(err).Msg("filesystem watcher error")
		}
	}
}
