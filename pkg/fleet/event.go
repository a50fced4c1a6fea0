package fleet

import "time"

type EventKind string

const (
	EventKindKeyOn   EventKind = "key-on"
	EventKindKeyOff  EventKind = "key-off"
	EventKindGeneric EventKind = "generic"
)

type Event struct {
	Timestamp time.Time
	Source    SourceKind
	Kind      EventKind

	EventType string
	Location  string
	AssetID   string
}

// Observation is a single accepted row, ready to be merged into a Registry
type Observation struct {
	Key         string
	DisplayName string
	Event       Event
}
