package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/traxovo/traxovo/pkg/fleet"
)

func registryWithStatuses(statuses ...fleet.Status) *fleet.Registry {
	registry := fleet.NewRegistry()
	for i, status := range statuses {
		record := registry.GetOrCreate(string(rune('a'+i)), "Driver "+string(rune('A'+i)))
		record.Status = status
		record.MinutesLate = i
	}

	return registry
}

func TestBuildReport(t *testing.T) {
	registry := registryWithStatuses(fleet.StatusOnTime, fleet.StatusOnTime, fleet.StatusLate, fleet.StatusNotOnJob)
	stats := map[fleet.SourceKind]*fleet.SourceStats{
		fleet.SourceDrivingHistory: {TotalRecords: 10, FilteredRecords: 4, ProcessedFiles: 1},
	}

	report := BuildReport("2025-05-15", registry, stats)

	assert.Equal(t, "2025-05-15", report.Date)
	assert.Equal(t, 4, report.TotalDrivers)
	assert.Equal(t, 2, report.OnTimeCount)
	assert.Equal(t, 50, report.OnTimePercent)
	assert.Equal(t, 1, report.LateCount)
	assert.Equal(t, 25, report.LatePercent)
	assert.Equal(t, 0, report.EarlyEndCount)
	assert.Equal(t, 0, report.EarlyEndPercent)
	assert.Equal(t, 1, report.NotOnJobCount)
	assert.Equal(t, 25, report.NotOnJobPercent)

	assert.Equal(t, fleet.SourceStats{TotalRecords: 10, FilteredRecords: 4, ProcessedFiles: 1}, report.DrivingHistoryStats)
	assert.Equal(t, fleet.SourceStats{}, report.ActivityDetailStats)

	assert.Len(t, report.DriverMetrics, 4)
	assert.Equal(t, fleet.DriverMetrics{MinutesLate: 2, Status: fleet.StatusLate}, report.DriverMetrics["Driver C"])
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport("2025-05-15", fleet.NewRegistry(), nil)

	assert.Equal(t, 0, report.TotalDrivers)
	for _, status := range fleet.ReportedStatuses {
		assert.Equal(t, 0, report.Count(status))
		assert.Equal(t, 0, report.Percent(status))
	}
	assert.Empty(t, report.DriverMetrics)
}

func TestBuildReportPercentagesSumToAboutHundred(t *testing.T) {
	all := []fleet.Status{fleet.StatusOnTime, fleet.StatusLate, fleet.StatusEarlyDeparture, fleet.StatusNotOnJob}

	for total := 1; total <= 30; total++ {
		statuses := make([]fleet.Status, total)
		for i := range statuses {
			statuses[i] = all[(i*7)%len(all)]
		}

		report := BuildReport("2025-05-15", registryWithStatuses(statuses...), nil)

		sum := 0
		for _, status := range fleet.ReportedStatuses {
			sum += report.Percent(status)
		}
		assert.InDelta(t, 100, sum, 2, "total %d", total)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, percent(3, 0))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 67, percent(2, 3))
	assert.Equal(t, 100, percent(5, 5))
	assert.Equal(t, 13, percent(1, 8))
}
