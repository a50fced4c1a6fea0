package drivinghistory

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

func TestScanDrivingHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driving_history.csv")
	content := "Driving History\n" +
		"Period,05/15/2025\n" +
		"\n" +
		"Contact, ReasonX, EventDateTime, LocationX\n" +
		"Maria Garcia,Key On,05/15/2025 06:58:00 AM CT,Main Yard\n" +
		"Maria Garcia,Speeding,05/15/2025 09:14:00 AM CT,I-35\n" +
		"Maria Garcia,Key Off,05/15/2025 05:10:00 PM CT,Main Yard\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	result, err := formats.ScanFile(path, Format{}, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, result.Observations, 3)

	kinds := []fleet.EventKind{}
	for _, observation := range result.Observations {
		assert.Equal(t, "mariagarcia", observation.Key)
		assert.Equal(t, fleet.SourceDrivingHistory, observation.Event.Source)
		kinds = append(kinds, observation.Event.Kind)
	}
	assert.Equal(t, []fleet.EventKind{fleet.EventKindKeyOn, fleet.EventKindGeneric, fleet.EventKindKeyOff}, kinds)

	assert.Equal(t, "Speeding", result.Observations[1].Event.EventType)
	assert.Equal(t, "I-35", result.Observations[1].Event.Location)
	assert.Equal(t, time.Date(2025, 5, 15, 17, 10, 0, 0, time.UTC), result.Observations[2].Event.Timestamp)
}

func TestScanDrivingHistoryRequiresEventColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driving_history.csv")
	require.NoError(t, os.WriteFile(path, []byte("Contact,EventDateTime\nMaria Garcia,2025-05-15 07:00:00\n"), 0o644))

	_, err := formats.ScanFile(path, Format{}, time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, formats.ErrMissingColumns)
}
