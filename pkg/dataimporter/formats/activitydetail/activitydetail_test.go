package activitydetail

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traxovo/traxovo/pkg/dataimporter/formats"
	"github.com/traxovo/traxovo/pkg/fleet"
)

var reportDate = time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)

func TestScanActivityDetail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity_detail.csv")
	content := "Activity Detail,,,,\n" +
		"AssetLabel,Contact,MsgType,EventDateTime,LocationX\n" +
		"TRK-12,MARIA GARCIA (991),Key On,2025-05-15T07:02:00,Main Yard\n" +
		"TRK-12,MARIA GARCIA (991),Stop,2025-05-15T12:30:00,Depot 4\n" +
		"TRK-14,MARIA GARCIA (991),Key Off,2025-05-15T16:45:00,Main Yard\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := formats.ScanFile(path, Format{}, reportDate)
	require.NoError(t, err)
	require.Len(t, result.Observations, 3)
	assert.Equal(t, fleet.SourceStats{TotalRecords: 3, FilteredRecords: 3, ProcessedFiles: 1}, result.Stats)

	first := result.Observations[0]
	assert.Equal(t, "mariagarcia", first.Key)
	assert.Equal(t, "MARIA GARCIA (991)", first.DisplayName)
	assert.Equal(t, fleet.EventKindKeyOn, first.Event.Kind)
	assert.Equal(t, "TRK-12", first.Event.AssetID)
	assert.Equal(t, "Main Yard", first.Event.Location)
	assert.Equal(t, fleet.SourceActivityDetail, first.Event.Source)

	assert.Equal(t, fleet.EventKindGeneric, result.Observations[1].Event.Kind)
	assert.Equal(t, fleet.EventKindKeyOff, result.Observations[2].Event.Kind)
}

func TestScanActivityDetailWithoutEventColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity_detail.csv")
	content := "Contact,EventDateTime,Asset Number\n" +
		"Jane Doe,2025-05-15 07:05:00,VAN-3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := formats.ScanFile(path, Format{}, reportDate)
	require.NoError(t, err)
	require.Len(t, result.Observations, 1)

	event := result.Observations[0].Event
	assert.Equal(t, fleet.EventKindGeneric, event.Kind)
	assert.Equal(t, "", event.EventType)
	assert.Equal(t, "VAN-3", event.AssetID)
}
