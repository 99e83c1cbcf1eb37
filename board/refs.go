package board

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownRef is returned when releasing a reference that is not live,
// either because it was never created or because it was already released.
var ErrUnknownRef = errors.New("board: unknown or released reference")

// RefTable hands out transient display references for uploaded images.
// Every reference returned by Create must be released exactly once.
type RefTable struct {
	mu       sync.RWMutex
	live     map[string]ImageAsset
	seq      uint64
	created  int
	released int
}

// NewRefTable returns an empty reference table.
func NewRefTable() *RefTable {
	return &RefTable{live: make(map[string]ImageAsset)}
}

// Create registers asset and returns its reference token.
func (t *RefTable) Create(asset ImageAsset) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	ref := fmt.Sprintf("%s-%d", asset.ID, t.seq)
	asset.Ref = ref
	t.live[ref] = asset
	t.created++
	return ref
}

// Release drops ref. Releasing an unknown ref returns ErrUnknownRef and
// leaves the counters untouched.
func (t *RefTable) Release(ref string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.live[ref]; !ok {
		return fmt.Errorf("release %q: %w", ref, ErrUnknownRef)
	}
	delete(t.live, ref)
	t.released++
	return nil
}

// Lookup returns the asset behind a live reference.
func (t *RefTable) Lookup(ref string) (ImageAsset, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	a, ok := t.live[ref]
	return a, ok
}

// Live reports how many references are currently outstanding.
func (t *RefTable) Live() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.live)
}

// Created reports how many references were ever handed out.
func (t *RefTable) Created() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.created
}

// Released reports how many references were released.
func (t *RefTable) Released() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.released
}
