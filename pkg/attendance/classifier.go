package attendance

import (
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/fleet"
	"github.com/traxovo/traxovo/pkg/util"
)

// Classify derives the lateness, early departure and status of record from its key on/off extrema.
// Lateness wins over early departure when a driver is both late and leaves early.
func Classify(record *fleet.DriverRecord, policy Policy) {
	record.MinutesLate = 0
	record.MinutesEarlyDeparture = 0

	if !record.HasKeyEvents() {
		record.Status = fleet.StatusNotOnJob
		return
	}

	status := fleet.StatusOnTime

	if record.EarliestKeyOn != nil {
		shiftStart := util.TimeOnDate(*record.EarliestKeyOn, policy.ShiftStart)
		record.MinutesLate = wholeMinutes(record.EarliestKeyOn.Sub(shiftStart))

		if minutesExceed(record.MinutesLate, policy.LateThreshold) {
			status = fleet.StatusLate
		}
	}

	if record.LatestKeyOff != nil {
		shiftEnd := util.TimeOnDate(*record.LatestKeyOff, policy.ShiftEnd)
		record.MinutesEarlyDeparture = wholeMinutes(shiftEnd.Sub(*record.LatestKeyOff))

		if minutesExceed(record.MinutesEarlyDeparture, policy.EarlyDepartureThreshold) && status != fleet.StatusLate {
			status = fleet.StatusEarlyDeparture
		}
	}

	record.Status = status
}

func ClassifyAll(registry *fleet.Registry, policy Policy) {
	for _, record := range registry.Records() {
		Classify(record, policy)

		if event := log.Debug(); event.Enabled() {
			event.Str("driver", record.NormalizedKey).Str("status", string(record.Status)).Msg(pretty.Sprint(record))
		}
	}
}

func wholeMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	return int(d / time.Minute)
}

func minutesExceed(minutes int, threshold time.Duration) bool {
	return time.Duration(minutes)*time.Minute > threshold
}
