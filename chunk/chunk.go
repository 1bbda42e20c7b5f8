// Package chunk defines the data shapes exchanged across the update surface.
package chunk

// Path names a chunk by its relative resource path.
type Path string

// ModuleID identifies one module defined inside a chunk.
type ModuleID string

// Registration describes the contents of one loaded chunk. The producer
// (generated chunk code) owns the meaning of the fields; this package only
// carries them.
type Registration struct {
	Path    Path
	Modules []ModuleID
	Source  []byte
}

// List is a named grouping of chunks belonging to one entry point. A list
// references chunk paths, it does not own chunk lifetime.
type List struct {
	Name   string
	Chunks []Path
}
