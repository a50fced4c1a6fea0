package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/traxovo/traxovo/pkg/fleet"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/exp/slices"
)

var ErrReportNotFound = errors.New("attendance report not found")

type ArchivedDriverMetrics struct {
	DisplayName   string `bson:"display_name"`
	NormalizedKey string `bson:"normalized_key"`

	fleet.DriverMetrics `bson:",inline"`
}

// ArchivedReport is the document stored per report date
type ArchivedReport struct {
	fleet.Report `bson:",inline"`

	Drivers []ArchivedDriverMetrics `bson:"drivers"`

	ModificationDateTime time.Time `bson:"modificationdatetime"`
}

func NewArchivedReport(report *fleet.Report) *ArchivedReport {
	archived := &ArchivedReport{
		Report:  *report,
		Drivers: make([]ArchivedDriverMetrics, 0, len(report.DriverMetrics)),
	}
	archived.Report.DriverMetrics = nil

	for displayName, metrics := range report.DriverMetrics {
		archived.Drivers = append(archived.Drivers, ArchivedDriverMetrics{
			DisplayName:   displayName,
			NormalizedKey: fleet.NormalizeName(displayName),
			DriverMetrics: metrics,
		})
	}

	slices.SortFunc(archived.Drivers, func(a, b ArchivedDriverMetrics) int {
		return strings.Compare(a.DisplayName, b.DisplayName)
	})

	return archived
}

func (a *ArchivedReport) ToReport() *fleet.Report {
	report := a.Report
	report.DriverMetrics = make(map[string]fleet.DriverMetrics, len(a.Drivers))

	for _, driver := range a.Drivers {
		report.DriverMetrics[driver.DisplayName] = driver.DriverMetrics
	}

	return &report
}

type ReportStore struct {
	Collection *mongo.Collection
}

func NewReportStore() *ReportStore {
	return &ReportStore{
		Collection: GetCollection(attendanceReportsCollection),
	}
}

// Save replaces any archived report for the same date
func (s *ReportStore) Save(ctx context.Context, report *fleet.Report) error {
	archived := NewArchivedReport(report)
	archived.ModificationDateTime = time.Now()

	_, err := s.Collection.UpdateOne(ctx,
		bson.M{"date": report.Date},
		bson.M{"$set": archived},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("saving report %s: %w", report.Date, err)
	}

	return nil
}

func (s *ReportStore) Get(ctx context.Context, date string) (*fleet.Report, error) {
	var archived ArchivedReport

	err := s.Collection.FindOne(ctx, bson.M{"date": date}).Decode(&archived)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w for %s", ErrReportNotFound, date)
	} else if err != nil {
		return nil, err
	}

	return archived.ToReport(), nil
}
