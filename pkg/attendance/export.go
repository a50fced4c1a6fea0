package attendance

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/traxovo/traxovo/pkg/fleet"
	"golang.org/x/exp/slices"
)

type driverMetricsRow struct {
	Driver                string       `csv:"driver"`
	Status                fleet.Status `csv:"status"`
	MinutesLate           int          `csv:"minutes_late"`
	MinutesEarlyDeparture int          `csv:"minutes_early_end"`
}

// WriteCSV writes one row per driver, ordered by driver name
func WriteCSV(writer io.Writer, report *fleet.Report) error {
	rows := make([]*driverMetricsRow, 0, len(report.DriverMetrics))
	for driver, metrics := range report.DriverMetrics {
		rows = append(rows, &driverMetricsRow{
			Driver:                driver,
			Status:                metrics.Status,
			MinutesLate:           metrics.MinutesLate,
			MinutesEarlyDeparture: metrics.MinutesEarlyDeparture,
		})
	}

	slices.SortFunc(rows, func(a, b *driverMetricsRow) int {
		return strings.Compare(a.Driver, b.Driver)
	})

	return gocsv.Marshal(&rows, writer)
}

func WriteJSON(writer io.Writer, report *fleet.Report) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(report)
}
