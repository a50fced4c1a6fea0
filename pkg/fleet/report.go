package fleet

type DriverMetrics struct {
	MinutesLate           int    `json:"minutes_late" groups:"detailed"`
	MinutesEarlyDeparture int    `json:"minutes_early_end" groups:"detailed"`
	Status                Status `json:"status" groups:"detailed"`
}

// Report is the outcome of one attendance run. It is assembled once and not modified afterwards.
type Report struct {
	Date         string `json:"date" bson:"date" groups:"basic,detailed"`
	TotalDrivers int    `json:"total_drivers" bson:"total_drivers" groups:"basic,detailed"`

	OnTimeCount   int `json:"on_time_count" bson:"on_time_count" groups:"basic,detailed"`
	OnTimePercent int `json:"on_time_percent" bson:"on_time_percent" groups:"basic,detailed"`

	LateCount   int `json:"late_count" bson:"late_count" groups:"basic,detailed"`
	LatePercent int `json:"late_percent" bson:"late_percent" groups:"basic,detailed"`

	EarlyEndCount   int `json:"early_end_count" bson:"early_end_count" groups:"basic,detailed"`
	EarlyEndPercent int `json:"early_end_percent" bson:"early_end_percent" groups:"basic,detailed"`

	NotOnJobCount   int `json:"not_on_job_count" bson:"not_on_job_count" groups:"basic,detailed"`
	NotOnJobPercent int `json:"not_on_job_percent" bson:"not_on_job_percent" groups:"basic,detailed"`

	DrivingHistoryStats SourceStats `json:"driving_history_stats" bson:"driving_history_stats" groups:"basic,detailed"`
	ActivityDetailStats SourceStats `json:"activity_detail_stats" bson:"activity_detail_stats" groups:"basic,detailed"`

	// Display names may contain characters mongo rejects in keys, so the archive stores these separately
	DriverMetrics map[string]DriverMetrics `json:"driver_metrics" bson:"-" groups:"detailed"`
}

func (r *Report) Count(status Status) int {
	switch status {
	case StatusOnTime:
		return r.OnTimeCount
	case StatusLate:
		return r.LateCount
	case StatusEarlyDeparture:
		return r.EarlyEndCount
	case StatusNotOnJob:
		return r.NotOnJobCount
	default:
		return 0
	}
}

func (r *Report) Percent(status Status) int {
	switch status {
	case StatusOnTime:
		return r.OnTimePercent
	case StatusLate:
		return r.LatePercent
	case StatusEarlyDeparture:
		return r.EarlyEndPercent
	case StatusNotOnJob:
		return r.NotOnJobPercent
	default:
		return 0
	}
}
