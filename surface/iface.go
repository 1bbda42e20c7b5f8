package surface

import "github.com/bundlekit/devsurface/chunk"

// IFace is the update surface shared by generated chunk code and the
// runtime driver.
type IFace interface {
	// RegisterChunk records one loaded chunk. Before a runtime attaches the
	// registration is buffered; afterwards it is handed to the runtime
	// directly. Never fails for well-formed input.
	RegisterChunk(r chunk.Registration)

	// RegisterChunkList records a named chunk grouping, with the same
	// two-phase semantics as RegisterChunk.
	RegisterChunkList(l chunk.List)

	// SubscribeToUpdates registers cb for incremental updates to path. One
	// path may have any number of callbacks; all are retained and invoked
	// in registration order.
	// @param cb must not be nil.
	SubscribeToUpdates(path chunk.Path, cb UpdateCallback)

	// Attach transitions the surface to its provider form, replaying every
	// buffered registration and subscription in insertion order. Calling
	// Attach twice is a programming error.
	Attach(rt Runtime)

	// NotifyUpdate delivers msg to every callback subscribed to path.
	NotifyUpdate(path chunk.Path, msg chunk.ServerMessage)

	// NotifyUpdateComplete signals that a batch of updates has been fully
	// applied. With no hook set this is a silent no-op.
	NotifyUpdateComplete()

	// SetUpdateCompleteHook installs the hook NotifyUpdateComplete invokes.
	// A nil hook clears it.
	SetUpdateCompleteHook(fn func())
}

// Runtime is the driver side of the surface. Once attached it consumes
// every chunk and chunk-list registration, buffered and new alike.
type Runtime interface {
	LoadChunk(r chunk.Registration)
	LoadChunkList(l chunk.List)
}
