package watcher

import "github.com/bundlekit/devsurface/chunk"

type IFace interface {
	// Add a channel that will be written to after each applied batch of
	// chunk updates. "1" will be written to the channel as a sentinel.
	// @param callback supplies the callback to add.
	AddRefreshCallback(callback chan<- int)

	// Close stops watching. Safe to call once.
	Close() error
}

// Notifier receives the updates the watcher derives from chunk file
// changes. *surface.Surface satisfies it.
type Notifier interface {
	NotifyUpdate(path chunk.Path, msg chunk.ServerMessage)
	NotifyUpdateComplete()
}
