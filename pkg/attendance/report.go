package attendance

import (
	"math"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/fleet"
)

// BuildReport tallies the classified registry. It performs no classification of its own.
func BuildReport(date string, registry *fleet.Registry, stats map[fleet.SourceKind]*fleet.SourceStats) *fleet.Report {
	report := &fleet.Report{
		Date:          date,
		TotalDrivers:  registry.Len(),
		DriverMetrics: map[string]fleet.DriverMetrics{},
	}

	for _, record := range registry.Records() {
		switch record.Status {
		case fleet.StatusOnTime:
			report.OnTimeCount++
		case fleet.StatusLate:
			report.LateCount++
		case fleet.StatusEarlyDeparture:
			report.EarlyEndCount++
		case fleet.StatusNotOnJob:
			report.NotOnJobCount++
		}

		var metrics fleet.DriverMetrics
		if err := copier.Copy(&metrics, record); err != nil {
			log.Error().Err(err).Str("driver", record.NormalizedKey).Msg("Failed to copy driver metrics")
			continue
		}
		report.DriverMetrics[record.DisplayName] = metrics
	}

	report.OnTimePercent = percent(report.OnTimeCount, report.TotalDrivers)
	report.LatePercent = percent(report.LateCount, report.TotalDrivers)
	report.EarlyEndPercent = percent(report.EarlyEndCount, report.TotalDrivers)
	report.NotOnJobPercent = percent(report.NotOnJobCount, report.TotalDrivers)

	if sourceStats, exists := stats[fleet.SourceDrivingHistory]; exists {
		report.DrivingHistoryStats = *sourceStats
	}
	if sourceStats, exists := stats[fleet.SourceActivityDetail]; exists {
		report.ActivityDetailStats = *sourceStats
	}

	return report
}

func percent(count int, total int) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(count) * 100 / float64(total)))
}
