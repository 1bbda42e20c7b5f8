// Package manifest tracks the chunks and chunk lists a runtime has loaded.
package manifest

import (
	"sort"
	"sync"

	"github.com/bundlekit/devsurface/chunk"
	"github.com/bundlekit/devsurface/surface"
)

// Manifest is the runtime-side view of the registered chunk set. It
// satisfies surface.Runtime, so attaching it to a surface replays every
// buffered registration into it.
//
// A chunk list is a grouping view over chunk paths, not an owner: applying
// a list never requires its member chunks to be registered.
type Manifest struct {
	mu     sync.Mutex
	chunks map[chunk.Path]chunk.Registration
	lists  map[string]chunk.List
}

func New() (m *Manifest) {
	m = &Manifest{
		chunks: make(map[chunk.Path]chunk.Registration),
		lists:  make(map[string]chunk.List),
	}

	return
}

// AttachTo hands s over to this manifest.
func (m *Manifest) AttachTo(s surface.IFace) {
	s.Attach(m)
}

// LoadChunk records one chunk registration. Re-registering a path replaces
// the previous registration.
func (m *Manifest) LoadChunk(r chunk.Registration) {
	m.mu.Lock()
	m.chunks[r.Path] = r
	m.mu.Unlock()
}

// LoadChunkList records one named chunk grouping. Re-registering a name
// replaces the previous list.
func (m *Manifest) LoadChunkList(l chunk.List) {
	m.mu.Lock()
	m.lists[l.Name] = l
	m.mu.Unlock()
}

// Chunk returns the registration for path, if any.
func (m *Manifest) Chunk(path chunk.Path) (chunk.Registration, bool) {
	m.mu.Lock()
	r, ok := m.chunks[path]
	m.mu.Unlock()
	return r, ok
}

// Has reports whether path is registered.
func (m *Manifest) Has(path chunk.Path) bool {
	_, ok := m.Chunk(path)
	return ok
}

// List returns the chunk list registered under name, if any.
func (m *Manifest) List(name string) (chunk.List, bool) {
	m.mu.Lock()
	l, ok := m.lists[name]
	m.mu.Unlock()
	return l, ok
}

// Paths returns every registered chunk path, sorted.
func (m *Manifest) Paths() []chunk.Path {
	m.mu.Lock()
	ret := make([]chunk.Path, 0, len(m.chunks))
	for p := range m.chunks {
		ret = append(ret, p)
	}
	m.mu.Unlock()
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// ListNames returns every registered list name, sorted.
func (m *Manifest) ListNames() []string {
	m.mu.Lock()
	ret := make([]string, 0, len(m.lists))
	for name := range m.lists {
		ret = append(ret, name)
	}
	m.mu.Unlock()
	sort.Strings(ret)
	return ret
}

// Missing returns the chunk paths the named list references that have no
// registration yet, in list order. Chunks in one list must be loaded
// together, so a non-empty result means the entry point is incomplete.
func (m *Manifest) Missing(name string) []chunk.Path {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.lists[name]
	if !ok {
		return nil
	}
	var missing []chunk.Path
	for _, p := range l.Chunks {
		if _, ok := m.chunks[p]; !ok {
			missing = append(missing, p)
		}
	}
	return missing
}

// Len returns the number of registered chunks.
func (m *Manifest) Len() int {
	m.mu.Lock()
	n := len(m.chunks)
	m.mu.Unlock()
	return n
}
