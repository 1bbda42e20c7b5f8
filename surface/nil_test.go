package surface

import (
	"testing"
	"unsafe"

	"github.com/bundlekit/devsurface/chunk"
)

func TestNil(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = NewNil()
	})
	if allocs != 0 {
		t.Errorf("NewNil should not alloc got: %f", allocs)
	}
	if unsafe.Sizeof(Nil{}) != 0 {
		t.Errorf("Nil should have size 0 got: %d", unsafe.Sizeof(Nil{}))
	}
}

func TestNilIsSilent(t *testing.T) {
	var s IFace = NewNil()
	s.RegisterChunk(reg("a.js"))
	s.SubscribeToUpdates("a.js", func(u chunk.ServerMessage) {
		t.Fatal("nil surface must not dispatch")
	})
	s.Attach(&captureRuntime{})
	s.NotifyUpdate("a.js", chunk.ServerMessage{Path: "a.js"})
	s.NotifyUpdateComplete()
}
