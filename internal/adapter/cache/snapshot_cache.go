// Package cache provides the content-addressed store the report renderer
// uses to avoid re-rendering unchanged snapshots. It replaces the old
// module-level render cache with an injectable service.
package cache

import (
	"sync"

	"inversure_flips/internal/domain/entities"
)

// SnapshotCache maps snapshot fingerprints to rendered artifacts. Safe for
// concurrent use.
type SnapshotCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[string][]byte)}
}

// Get returns the artifact rendered for this exact snapshot content, if any.
func (c *SnapshotCache) Get(s entities.EstudioEconomico) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[s.Fingerprint()]
	return v, ok
}

// Put stores the artifact under the snapshot's content hash.
func (c *SnapshotCache) Put(s entities.EstudioEconomico, artifact []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[s.Fingerprint()] = artifact
}

// Len returns the number of cached artifacts.
func (c *SnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
