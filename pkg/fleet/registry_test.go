package fleet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 5, 15, hour, minute, 0, 0, time.UTC)
}

func TestRegistryGetOrCreateKeepsFirstDisplayName(t *testing.T) {
	registry := NewRegistry()

	first := registry.GetOrCreate("mariagarcia", "Maria Garcia")
	second := registry.GetOrCreate("mariagarcia", "MARIA GARCIA (991)")

	assert.Same(t, first, second)
	assert.Equal(t, "Maria Garcia", second.DisplayName)
	assert.Equal(t, StatusUnknown, second.Status)
	assert.Equal(t, 1, registry.Len())
}

func TestRegistryRecordsInCreationOrder(t *testing.T) {
	registry := NewRegistry()
	registry.GetOrCreate("b", "B")
	registry.GetOrCreate("a", "A")
	registry.GetOrCreate("b", "B again")

	records := registry.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "b", records[0].NormalizedKey)
	assert.Equal(t, "a", records[1].NormalizedKey)
}

func TestObserveKeepsExtrema(t *testing.T) {
	orders := [][]time.Time{
		{at(7, 30), at(6, 55), at(8, 0)},
		{at(8, 0), at(7, 30), at(6, 55)},
		{at(6, 55), at(8, 0), at(7, 30)},
	}

	for _, order := range orders {
		record := NewDriverRecord("johnsmith", "John Smith")
		for _, timestamp := range order {
			record.Observe(Event{Timestamp: timestamp, Source: SourceDrivingHistory, Kind: EventKindKeyOn})
			record.Observe(Event{Timestamp: timestamp.Add(9 * time.Hour), Source: SourceDrivingHistory, Kind: EventKindKeyOff})
		}

		require.NotNil(t, record.EarliestKeyOn)
		require.NotNil(t, record.LatestKeyOff)
		assert.Equal(t, at(6, 55), *record.EarliestKeyOn)
		assert.Equal(t, at(17, 0), *record.LatestKeyOff)
		assert.Len(t, record.Events, 6)
	}
}

func TestObserveGenericEventDoesNotTouchExtrema(t *testing.T) {
	record := NewDriverRecord("janedoe", "Jane Doe")
	record.Observe(Event{Timestamp: at(9, 0), Source: SourceActivityDetail, Kind: EventKindGeneric, EventType: "Idle"})

	assert.Nil(t, record.EarliestKeyOn)
	assert.Nil(t, record.LatestKeyOff)
	assert.False(t, record.HasKeyEvents())
	assert.True(t, record.HasSource(SourceActivityDetail))
	assert.False(t, record.HasSource(SourceDrivingHistory))
}

func TestObserveDeduplicatesAssetsAndSources(t *testing.T) {
	registry := NewRegistry()

	registry.Apply(Observation{Key: "mariagarcia", DisplayName: "Maria Garcia", Event: Event{Timestamp: at(7, 0), Source: SourceDrivingHistory, Kind: EventKindKeyOn}})
	registry.Apply(Observation{Key: "mariagarcia", DisplayName: "MARIA GARCIA (991)", Event: Event{Timestamp: at(8, 0), Source: SourceActivityDetail, Kind: EventKindGeneric, AssetID: "TRK-12", Location: "Yard"}})
	record := registry.Apply(Observation{Key: "mariagarcia", DisplayName: "MARIA GARCIA (991)", Event: Event{Timestamp: at(9, 0), Source: SourceActivityDetail, Kind: EventKindGeneric, AssetID: "TRK-12", Location: "Depot"}})

	assert.Equal(t, []SourceKind{SourceDrivingHistory, SourceActivityDetail}, record.DataSources)
	assert.Equal(t, []string{"TRK-12"}, record.AssetIDs)
	assert.Equal(t, []string{"Yard", "Depot"}, record.Locations)
	assert.Equal(t, 1, registry.Len())
}
