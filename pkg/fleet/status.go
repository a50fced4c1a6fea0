package fleet

type Status string

const (
	StatusUnknown        Status = "unknown"
	StatusOnTime         Status = "on_time"
	StatusLate           Status = "late"
	StatusEarlyDeparture Status = "early_end"
	StatusNotOnJob       Status = "not_on_job"
)

// ReportedStatuses are the statuses counted in a Report, in report order
var ReportedStatuses = []Status{StatusOnTime, StatusLate, StatusEarlyDeparture, StatusNotOnJob}
