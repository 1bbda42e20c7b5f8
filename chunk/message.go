package chunk

import "time"

// ChangeKind classifies what happened to a chunk resource.
type ChangeKind int32

const (
	Written ChangeKind = iota
	Removed
	Renamed
)

func (k ChangeKind) String() string {
	switch k {
	case Written:
		return "written"
	case Removed:
		return "removed"
	case Renamed:
		return "renamed"
	}
	return "unknown"
}

// ServerMessage is one incremental update for a chunk. Consumers treat the
// record as opaque; producers define what Payload holds.
type ServerMessage struct {
	Path     Path
	Kind     ChangeKind
	Payload  []byte
	Modified time.Time
}
