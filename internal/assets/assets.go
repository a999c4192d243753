// Package assets handles asset loading and caching.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when no root contains the requested file.
var ErrNotFound = errors.New("asset not found")

// Manager loads files from a stack of search roots.
type Manager struct {
	roots []fs.FS
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddRoot adds a file system to the manager.
// Roots are searched in reverse order (last added = highest priority).
func (m *Manager) AddRoot(root fs.FS) {
	m.mu.Lock()
	m.roots = append(m.roots, root)
	m.mu.Unlock()
}

// AddDir adds a directory on disk as a search root.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding asset dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding asset dir %s: not a directory", dir)
	}
	m.AddRoot(os.DirFS(dir))
	return nil
}

// Load reads a file from the roots. Relative paths use forward slashes.
// An absolute path is read directly from disk without searching the roots.
func (m *Manager) Load(name string) ([]byte, error) {
	if filepath.IsAbs(name) {
		return m.loadFile(filepath.Clean(name))
	}

	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid asset path %q", name)
	}

	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.roots) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.roots[i], name)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

func (m *Manager) loadFile(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	data, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	m.cache.Set(name, data)
	return data, nil
}

// Close drops all roots and cached data.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roots = nil
	m.cache.Clear()
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
