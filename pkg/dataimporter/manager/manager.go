package manager

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/traxovo/traxovo/pkg/dataimporter/datasets"
	"github.com/traxovo/traxovo/pkg/dataimporter/formats"
	"github.com/traxovo/traxovo/pkg/dataimporter/formats/activitydetail"
	"github.com/traxovo/traxovo/pkg/dataimporter/formats/drivinghistory"
	"github.com/traxovo/traxovo/pkg/dataimporter/formats/roster"
	"github.com/traxovo/traxovo/pkg/fleet"
	"golang.org/x/exp/slices"
)

const maxConcurrentScans = 8

// Ingestion is the merged result of reading every dataset for one report date
type Ingestion struct {
	Registry *fleet.Registry
	Stats    map[fleet.SourceKind]*fleet.SourceStats
}

func newIngestion() *Ingestion {
	ingestion := &Ingestion{
		Registry: fleet.NewRegistry(),
		Stats:    map[fleet.SourceKind]*fleet.SourceStats{},
	}

	for _, source := range fleet.SourceKinds {
		ingestion.Stats[source] = &fleet.SourceStats{}
	}

	return ingestion
}

func GetFormat(format datasets.DataSetFormat) (formats.Format, error) {
	switch format.SourceKind() {
	case fleet.SourceDrivingHistory:
		return drivinghistory.Format{}, nil
	case fleet.SourceActivityDetail:
		return activitydetail.Format{}, nil
	default:
		return nil, fmt.Errorf("no telematics format for %q", string(format))
	}
}

type scanJob struct {
	order   int
	dataset string
	path    string
	format  formats.Format
}

type scanOutcome struct {
	job    scanJob
	result *formats.FileResult
	err    error
}

// Ingest reads every file of every dataset for date. Files are scanned concurrently but merged
// into the registry one at a time in dataset then file order, so the outcome does not depend on scheduling.
// Files that cannot be read are logged and left out.
func Ingest(date time.Time, sets []datasets.DataSet) *Ingestion {
	ingestion := newIngestion()

	var jobs []scanJob
	for _, dataset := range sets {
		if dataset.Format == datasets.DataSetFormatRoster {
			registerRoster(ingestion.Registry, dataset)
			continue
		}

		format, err := GetFormat(dataset.Format)
		if err != nil {
			log.Error().Err(err).Str("id", dataset.Identifier).Msg("Skipping dataset")
			continue
		}

		log.Debug().
			Str("id", dataset.Identifier).
			Str("datasource", dataset.DataSourceRef).
			Str("provider", dataset.Provider.Name).
			Int("files", len(dataset.Paths)).
			Msg("Queued dataset")

		for _, path := range dataset.Paths {
			jobs = append(jobs, scanJob{
				order:   len(jobs),
				dataset: dataset.Identifier,
				path:    path,
				format:  format,
			})
		}
	}

	p := pool.NewWithResults[scanOutcome]().WithMaxGoroutines(maxConcurrentScans)
	for _, job := range jobs {
		p.Go(func() scanOutcome {
			result, err := formats.ScanFile(job.path, job.format, date)
			return scanOutcome{job: job, result: result, err: err}
		})
	}
	outcomes := p.Wait()

	slices.SortFunc(outcomes, func(a, b scanOutcome) int {
		return a.job.order - b.job.order
	})

	for _, outcome := range outcomes {
		if outcome.err != nil {
			log.Warn().Err(outcome.err).Str("id", outcome.job.dataset).Str("file", outcome.job.path).Msg("Skipping file")
			continue
		}

		ingestion.merge(outcome.result)
	}

	return ingestion
}

func (i *Ingestion) merge(result *formats.FileResult) {
	stats, exists := i.Stats[result.Source]
	if !exists {
		stats = &fleet.SourceStats{}
		i.Stats[result.Source] = stats
	}
	stats.Add(result.Stats)

	for _, observation := range result.Observations {
		i.Registry.Apply(observation)
	}

	log.Info().
		Str("file", result.Path).
		Str("source", string(result.Source)).
		Int("total", result.Stats.TotalRecords).
		Int("matched", result.Stats.FilteredRecords).
		Int("accepted", len(result.Observations)).
		Msg("Ingested file")
}

func registerRoster(registry *fleet.Registry, dataset datasets.DataSet) {
	for _, path := range dataset.Paths {
		entries, err := roster.ParseFile(path)
		if err != nil {
			log.Warn().Err(err).Str("id", dataset.Identifier).Str("file", path).Msg("Skipping roster")
			continue
		}

		registered := roster.Register(registry, entries)
		log.Info().Str("file", path).Int("drivers", registered).Msg("Loaded roster")
	}
}
