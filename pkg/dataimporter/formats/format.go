package formats

import (
	"strings"

	"github.com/traxovo/traxovo/pkg/dataimporter/header"
	"github.com/traxovo/traxovo/pkg/fleet"
)

// Format describes one kind of telematics export
type Format interface {
	Source() fleet.SourceKind
	RequiredRoles() []header.Role
	// Enrich fills the format specific fields of an event from an accepted row
	Enrich(row []string, columns header.ColumnMap, event *fleet.Event)
}

// EventKindFromText recognises ignition events from free text such as "Key On" or "KEYOFF"
func EventKindFromText(text string) fleet.EventKind {
	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "key on"), strings.Contains(lower, "keyon"):
		return fleet.EventKindKeyOn
	case strings.Contains(lower, "key off"), strings.Contains(lower, "keyoff"):
		return fleet.EventKindKeyOff
	default:
		return fleet.EventKindGeneric
	}
}
