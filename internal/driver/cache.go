package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when cachePayload format changes
const cacheSchemaVersion uint16 = 1

// Cache remembers the content hash of files that are known to need no fixing
// under a given configuration signature. Thread-safe for concurrent access.
// A nil *Cache is a disabled cache.
type Cache struct {
	mu        sync.RWMutex
	path      string
	signature string
	hashes    map[string]string
	dirty     bool
}

type cachePayload struct {
	Schema    uint16            `msgpack:"schema"`
	Signature string            `msgpack:"signature"`
	Hashes    map[string]string `msgpack:"hashes"`
}

// OpenCache loads the cache file at path. A missing file, a different schema
// or a different signature start an empty cache. A corrupt file also starts
// empty; the decode error is returned alongside the usable cache.
func OpenCache(path, signature string) (*Cache, error) {
	c := &Cache{path: path, signature: signature, hashes: make(map[string]string)}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("open cache: %w", err)
	}
	defer f.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		c.dirty = true
		return c, fmt.Errorf("decode cache %s: %w", path, err)
	}
	if payload.Schema != cacheSchemaVersion || payload.Signature != signature {
		// другая конфигурация: всё пересчитываем
		c.dirty = true
		return c, nil
	}
	if payload.Hashes != nil {
		c.hashes = payload.Hashes
	}
	return c, nil
}

func cacheKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Has reports whether path was last seen clean with exactly this content hash.
func (c *Cache) Has(path string, hash [32]byte) bool {
	if c == nil {
		return false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hashes[cacheKey(path)] == hex.EncodeToString(hash[:])
}

// Put records that path with this content hash needs no fixing.
func (c *Cache) Put(path string, hash [32]byte) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	key, val := cacheKey(path), hex.EncodeToString(hash[:])
	if c.hashes[key] != val {
		c.hashes[key] = val
		c.dirty = true
	}
}

// Len returns the number of cached files.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.hashes)
}

// Save writes the cache if it changed, atomically replacing the old file.
func (c *Cache) Save() (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.dirty {
		return nil
	}

	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".phpfix-cache-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()

	payload := cachePayload{Schema: cacheSchemaVersion, Signature: c.signature, Hashes: c.hashes}
	if err = msgpack.NewEncoder(f).Encode(&payload); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	if err = os.Rename(f.Name(), c.path); err != nil {
		return err
	}
	c.dirty = false
	return nil
}
