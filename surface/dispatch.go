package surface

import (
	"sync"

	"github.com/bundlekit/devsurface/chunk"

	logger "github.com/sirupsen/logrus"
)

// UpdateCallback receives each incremental update for the chunk path it was
// subscribed against.
type UpdateCallback func(update chunk.ServerMessage)

// dispatcher fans updates out to the callbacks subscribed to each path, in
// subscription order.
type dispatcher struct {
	mu        sync.Mutex
	listeners map[chunk.Path][]UpdateCallback
}

func newDispatcher() *dispatcher {
	return &dispatcher{
		listeners: make(map[chunk.Path][]UpdateCallback),
	}
}

func (d *dispatcher) add(path chunk.Path, cb UpdateCallback) {
	d.mu.Lock()
	d.listeners[path] = append(d.listeners[path], cb)
	d.mu.Unlock()
}

func (d *dispatcher) dispatch(path chunk.Path, msg chunk.ServerMessage, st surfaceStats) {
	d.mu.Lock()
	cbs := d.listeners[path]
	d.mu.Unlock()

	for _, cb := range cbs {
		invoke(cb, msg, st)
	}
}

// invoke isolates a panicking callback so the remaining callbacks for the
// same update still run.
func invoke(cb UpdateCallback, msg chunk.ServerMessage, st surfaceStats) {
	defer func() {
		if r := recover(); r != nil {
			st.callbackFailures.Inc()
			logger.Warnf("devsurface: update callback for %s panicked: %v", msg.Path, r)
		}
	}()
	cb(msg)
}
