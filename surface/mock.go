package surface

import (
	"sync"

	"github.com/bundlekit/devsurface/chunk"
	stats "github.com/lyft/gostats"
	"github.com/lyft/gostats/mock"
)

type MockOption interface {
	apply(*Mock)
}

type optionFunc func(*Mock)

func (f optionFunc) apply(m *Mock) {
	f(m)
}

// MockWithScope overrides the stats scope the mock surface reports to.
func MockWithScope(scope stats.Scope) MockOption {
	return optionFunc(func(m *Mock) {
		m.Surface.stats = newSurfaceStats(scope)
	})
}

// MockWithSink overrides the stats sink the mock surface reports to.
func MockWithSink(sink stats.Sink) MockOption {
	return MockWithScope(stats.NewStore(sink, false))
}

// MockWithChunks pre-registers chunk registrations.
func MockWithChunks(rs ...chunk.Registration) MockOption {
	return optionFunc(func(m *Mock) {
		for _, r := range rs {
			m.RegisterChunk(r)
		}
	})
}

// Mock provides an IFace implementation for testing surface consumers. It
// attaches a recording runtime to itself at construction, so registrations
// and subscriptions take effect immediately, and it keeps everything pushed
// through it in order.
type Mock struct {
	*Surface
	mu      sync.Mutex
	chunks  []chunk.Registration
	lists   []chunk.List
	updates []chunk.ServerMessage
}

func NewMock(opts ...MockOption) *Mock {
	m := &Mock{
		Surface: New(stats.NewStore(mock.NewSink(), false)),
	}
	m.Surface.Attach(mockRuntime{m})
	for _, o := range opts {
		o.apply(m)
	}
	return m
}

func (m *Mock) NotifyUpdate(path chunk.Path, msg chunk.ServerMessage) {
	m.mu.Lock()
	m.updates = append(m.updates, msg)
	m.mu.Unlock()
	m.Surface.NotifyUpdate(path, msg)
}

// Chunks returns the registrations seen so far, in registration order.
func (m *Mock) Chunks() []chunk.Registration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]chunk.Registration(nil), m.chunks...)
}

// Lists returns the chunk lists seen so far, in registration order.
func (m *Mock) Lists() []chunk.List {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]chunk.List(nil), m.lists...)
}

// Updates returns the messages passed through NotifyUpdate, in call order.
func (m *Mock) Updates() []chunk.ServerMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]chunk.ServerMessage(nil), m.updates...)
}

type mockRuntime struct {
	m *Mock
}

func (r mockRuntime) LoadChunk(c chunk.Registration) {
	r.m.mu.Lock()
	r.m.chunks = append(r.m.chunks, c)
	r.m.mu.Unlock()
}

func (r mockRuntime) LoadChunkList(l chunk.List) {
	r.m.mu.Lock()
	r.m.lists = append(r.m.lists, l)
	r.m.mu.Unlock()
}
