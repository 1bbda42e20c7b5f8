package surface

import (
	"sync"

	"github.com/bundlekit/devsurface/chunk"
	stats "github.com/lyft/gostats"
)

// Generated chunk code treats the surface as a process-wide global, so the
// package carries a default instance with top-level forwarding functions.

var (
	defaultMu sync.Mutex
	defaultSf *Surface
)

// Default returns the process-wide surface, creating it with a null stats
// sink on first use. Programs that want metrics call SetDefault before any
// chunk code runs.
func Default() *Surface {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultSf == nil {
		defaultSf = New(stats.NewStore(stats.NewNullSink(), false))
	}
	return defaultSf
}

// SetDefault replaces the process-wide surface. Registrations made against
// the previous default are not carried over, so call this before any chunk
// code runs.
func SetDefault(s *Surface) {
	if s == nil {
		panic("devsurface: nil surface")
	}
	defaultMu.Lock()
	defaultSf = s
	defaultMu.Unlock()
}

// ResetForTest discards the default surface so each test starts from the
// buffering state.
func ResetForTest() {
	defaultMu.Lock()
	defaultSf = nil
	defaultMu.Unlock()
}

func RegisterChunk(r chunk.Registration) { Default().RegisterChunk(r) }

func RegisterChunkList(l chunk.List) { Default().RegisterChunkList(l) }

func SubscribeToUpdates(path chunk.Path, cb UpdateCallback) {
	Default().SubscribeToUpdates(path, cb)
}

func Attach(rt Runtime) { Default().Attach(rt) }

func NotifyUpdate(path chunk.Path, msg chunk.ServerMessage) {
	Default().NotifyUpdate(path, msg)
}

func SetUpdateCompleteHook(fn func()) { Default().SetUpdateCompleteHook(fn) }

func NotifyUpdateComplete() { Default().NotifyUpdateComplete() }
