package datasets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/traxovo/traxovo/pkg/fleet"
)

func TestLoadManifest(t *testing.T) {
	directory := t.TempDir()
	path := filepath.Join(directory, "datasources.yaml")
	manifest := `identifier: samsara
provider:
  name: Samsara
datasets:
  - identifier: history
    format: driving-history
    paths:
      - exports/history.csv
      - /data/history_extra.csv
---
identifier: gauge
datasets:
  - identifier: activity
    format: activity-detail
    paths: [activity.csv]
  - identifier: roster
    format: roster
    paths: [roster.csv]
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	loaded, err := LoadManifest(path)
	require.NoError(t, err)
	require.Len(t, loaded, 3)

	assert.Equal(t, "samsara-history", loaded[0].Identifier)
	assert.Equal(t, "samsara", loaded[0].DataSourceRef)
	assert.Equal(t, "Samsara", loaded[0].Provider.Name)
	assert.Equal(t, DataSetFormatDrivingHistory, loaded[0].Format)
	assert.Equal(t, []string{filepath.Join(directory, "exports/history.csv"), "/data/history_extra.csv"}, loaded[0].Paths)

	assert.Equal(t, "gauge-activity", loaded[1].Identifier)
	assert.Equal(t, fleet.SourceActivityDetail, loaded[1].Format.SourceKind())
	assert.Equal(t, DataSetFormatRoster, loaded[2].Format)
	assert.Equal(t, fleet.SourceKind(""), loaded[2].Format.SourceKind())
}

func TestLoadManifestRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "datasources.yaml")
	require.NoError(t, os.WriteFile(path, []byte("identifier: x\ndatasets:\n  - identifier: y\n    format: gtfs\n"), 0o644))

	_, err := LoadManifest(path)
	assert.Error(t, err)
}
