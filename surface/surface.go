// Package surface implements the global update surface of a bundler's
// development runtime: the slots that generated chunk code registers chunks,
// chunk lists, and update subscriptions into, and that a runtime driver
// attaches to.
//
// Each slot starts out buffering. When the driver attaches, the buffered
// entries are replayed in original insertion order and the slot switches to
// forwarding. The transition happens at most once per surface.
package surface

import (
	"sync"

	"github.com/bundlekit/devsurface/chunk"
	stats "github.com/lyft/gostats"
)

type surfaceStats struct {
	chunkRegistrations stats.Counter
	listRegistrations  stats.Counter
	subscriptions      stats.Counter
	replayedEntries    stats.Counter
	updatesDispatched  stats.Counter
	callbackFailures   stats.Counter
}

func newSurfaceStats(scope stats.Scope) surfaceStats {
	ret := surfaceStats{}
	ret.chunkRegistrations = scope.NewCounter("chunk_registrations")
	ret.listRegistrations = scope.NewCounter("chunk_list_registrations")
	ret.subscriptions = scope.NewCounter("update_subscriptions")
	ret.replayedEntries = scope.NewCounter("replayed_entries")
	ret.updatesDispatched = scope.NewCounter("updates_dispatched")
	ret.callbackFailures = scope.NewCounter("callback_failures")
	return ret
}

type subscription struct {
	path chunk.Path
	cb   UpdateCallback
}

// Surface is the update surface for one runtime. The zero value is not
// usable; construct with New.
type Surface struct {
	chunks    slot[chunk.Registration]
	lists     slot[chunk.List]
	listeners slot[subscription]
	dispatch  *dispatcher
	hookMu    sync.Mutex
	hook      func()
	stats     surfaceStats
}

func New(scope stats.Scope) *Surface {
	return &Surface{
		dispatch: newDispatcher(),
		stats:    newSurfaceStats(scope),
	}
}

func (s *Surface) RegisterChunk(r chunk.Registration) {
	s.stats.chunkRegistrations.Inc()
	s.chunks.add(r)
}

func (s *Surface) RegisterChunkList(l chunk.List) {
	s.stats.listRegistrations.Inc()
	s.lists.add(l)
}

func (s *Surface) SubscribeToUpdates(path chunk.Path, cb UpdateCallback) {
	if cb == nil {
		panic("devsurface: nil update callback")
	}
	s.stats.subscriptions.Inc()
	s.listeners.add(subscription{path: path, cb: cb})
}

// Attach hands the surface over to rt. Buffered chunk and chunk-list
// registrations are replayed through rt in insertion order; buffered
// subscriptions become live in the same order. Attaching twice panics.
func (s *Surface) Attach(rt Runtime) {
	if rt == nil {
		panic("devsurface: nil runtime")
	}
	n := s.chunks.attach(rt.LoadChunk)
	n += s.lists.attach(rt.LoadChunkList)
	n += s.listeners.attach(func(sub subscription) {
		s.dispatch.add(sub.path, sub.cb)
	})
	s.stats.replayedEntries.Add(uint64(n))
}

// Attached reports whether a runtime has taken over the surface.
func (s *Surface) Attached() bool {
	return s.chunks.attached()
}

func (s *Surface) NotifyUpdate(path chunk.Path, msg chunk.ServerMessage) {
	s.stats.updatesDispatched.Inc()
	s.dispatch.dispatch(path, msg, s.stats)
}

func (s *Surface) SetUpdateCompleteHook(fn func()) {
	s.hookMu.Lock()
	s.hook = fn
	s.hookMu.Unlock()
}

func (s *Surface) NotifyUpdateComplete() {
	s.hookMu.Lock()
	fn := s.hook
	s.hookMu.Unlock()
	if fn != nil {
		fn()
	}
}
