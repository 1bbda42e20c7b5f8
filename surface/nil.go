package surface

import "github.com/bundlekit/devsurface/chunk"

// Implementation of IFace that drops everything. Used where no runtime will
// ever attach.
type Nil struct{}

func NewNil() (n *Nil) {
	n = &Nil{}

	return
}

func (n *Nil) RegisterChunk(chunk.Registration) {}

func (n *Nil) RegisterChunkList(chunk.List) {}

func (n *Nil) SubscribeToUpdates(chunk.Path, UpdateCallback) {}

func (n *Nil) Attach(Runtime) {}

func (n *Nil) NotifyUpdate(chunk.Path, chunk.ServerMessage) {}

func (n *Nil) SetUpdateCompleteHook(func()) {}

func (n *Nil) NotifyUpdateComplete() {}
