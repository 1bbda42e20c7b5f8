package surface

import "sync"

// slot is a two-phase registration channel. It buffers values in FIFO order
// until a runtime attaches, then forwards them to the runtime's push
// directly. Attaching replays the whole buffer, in insertion order, before
// any later value is accepted, so nothing registered before the runtime
// loads is lost.
type slot[T any] struct {
	mu   sync.Mutex
	buf  []T
	push func(T)
}

func (s *slot[T]) add(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.push != nil {
		s.push(v)
		return
	}
	s.buf = append(s.buf, v)
}

// attach makes the one-way transition to provider form and returns the
// number of replayed entries. A second attach is a programming error.
func (s *slot[T]) attach(push func(T)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.push != nil {
		panic("devsurface: slot already attached")
	}
	n := len(s.buf)
	for _, v := range s.buf {
		push(v)
	}
	s.buf = nil
	s.push = push
	return n
}

func (s *slot[T]) attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.push != nil
}
