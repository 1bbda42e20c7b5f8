package watcher

// Implementation of Watcher with no backing directory.
type Nil struct{}

func NewNil() (n *Nil) {
	n = &Nil{}

	return
}

func (n *Nil) AddRefreshCallback(callback chan<- int) {}

func (n *Nil) Close() error { return nil }
