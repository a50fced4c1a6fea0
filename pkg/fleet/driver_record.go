package fleet

import (
	"time"

	"golang.org/x/exp/slices"
)

// DriverRecord accumulates every event seen for one driver on the report date.
// MinutesLate, MinutesEarlyDeparture and Status are derived and only written by the classifier.
type DriverRecord struct {
	DisplayName   string
	NormalizedKey string

	EarliestKeyOn *time.Time
	LatestKeyOff  *time.Time

	MinutesLate           int
	MinutesEarlyDeparture int
	Status                Status

	DataSources []SourceKind
	Events      []Event
	AssetIDs    []string
	Locations   []string
}

func NewDriverRecord(key string, displayName string) *DriverRecord {
	return &DriverRecord{
		DisplayName:   displayName,
		NormalizedKey: key,
		Status:        StatusUnknown,
	}
}

func (r *DriverRecord) Observe(event Event) {
	r.Events = append(r.Events, event)

	if event.Source != "" && !r.HasSource(event.Source) {
		r.DataSources = append(r.DataSources, event.Source)
	}

	timestamp := event.Timestamp
	switch event.Kind {
	case EventKindKeyOn:
		if r.EarliestKeyOn == nil || timestamp.Before(*r.EarliestKeyOn) {
			r.EarliestKeyOn = &timestamp
		}
	case EventKindKeyOff:
		if r.LatestKeyOff == nil || timestamp.After(*r.LatestKeyOff) {
			r.LatestKeyOff = &timestamp
		}
	}

	if event.AssetID != "" && !slices.Contains(r.AssetIDs, event.AssetID) {
		r.AssetIDs = append(r.AssetIDs, event.AssetID)
	}
	if event.Location != "" {
		r.Locations = append(r.Locations, event.Location)
	}
}

func (r *DriverRecord) HasSource(source SourceKind) bool {
	return slices.Contains(r.DataSources, source)
}

func (r *DriverRecord) HasKeyEvents() bool {
	return r.EarliestKeyOn != nil || r.LatestKeyOff != nil
}
