package attendance

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/dataimporter/datasets"
	"github.com/traxovo/traxovo/pkg/dataimporter/manager"
	"github.com/traxovo/traxovo/pkg/fleet"
	"github.com/traxovo/traxovo/pkg/util"
)

var ErrInvalidReportDate = errors.New("invalid report date")

type Request struct {
	ReportDate string

	DrivingHistoryPaths []string
	ActivityDetailPaths []string
	RosterPaths         []string

	// Datasets are read after the paths above, usually loaded from a manifest
	Datasets []datasets.DataSet

	// A zero Policy means DefaultPolicy
	Policy Policy
}

func (r Request) DataSets() []datasets.DataSet {
	var sets []datasets.DataSet

	if len(r.DrivingHistoryPaths) > 0 {
		sets = append(sets, datasets.DataSet{Identifier: "driving-history", Format: datasets.DataSetFormatDrivingHistory, Paths: r.DrivingHistoryPaths})
	}
	if len(r.ActivityDetailPaths) > 0 {
		sets = append(sets, datasets.DataSet{Identifier: "activity-detail", Format: datasets.DataSetFormatActivityDetail, Paths: r.ActivityDetailPaths})
	}
	if len(r.RosterPaths) > 0 {
		sets = append(sets, datasets.DataSet{Identifier: "roster", Format: datasets.DataSetFormatRoster, Paths: r.RosterPaths})
	}

	return append(sets, r.Datasets...)
}

type Result struct {
	Report   *fleet.Report
	Registry *fleet.Registry
}

func ParseReportDate(value string) (time.Time, error) {
	date, err := time.Parse(util.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidReportDate, value)
	}

	return date, nil
}

// Run reads, merges and classifies every input for the report date.
// Only an unusable request is an error; unreadable files and rows are logged and counted out.
func Run(request Request) (*Result, error) {
	date, err := ParseReportDate(request.ReportDate)
	if err != nil {
		return nil, err
	}

	policy := request.Policy
	if policy.IsZero() {
		policy = DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	startTime := time.Now()

	ingestion := manager.Ingest(date, request.DataSets())
	ClassifyAll(ingestion.Registry, policy)
	report := BuildReport(request.ReportDate, ingestion.Registry, ingestion.Stats)

	if report.TotalDrivers == 0 {
		log.Warn().Str("date", report.Date).Msg("No drivers found for report date")
	}

	log.Info().
		Str("date", report.Date).
		Int("drivers", report.TotalDrivers).
		Int("on_time", report.OnTimeCount).
		Int("late", report.LateCount).
		Int("early_end", report.EarlyEndCount).
		Int("not_on_job", report.NotOnJobCount).
		Str("took", time.Since(startTime).String()).
		Msg("Attendance report complete")

	return &Result{
		Report:   report,
		Registry: ingestion.Registry,
	}, nil
}
