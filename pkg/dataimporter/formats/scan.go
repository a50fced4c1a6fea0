package formats

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/dataimporter/header"
	"github.com/traxovo/traxovo/pkg/dataimporter/timestamp"
	"github.com/traxovo/traxovo/pkg/fleet"
	"github.com/traxovo/traxovo/pkg/util"
)

var ErrMissingColumns = errors.New("missing required columns")

// FileResult holds the rows of one file that matched the report date, in file order
type FileResult struct {
	Path         string
	Source       fleet.SourceKind
	Observations []fleet.Observation
	Stats        fleet.SourceStats
}

// ScanFile streams path row by row. Rows that cannot be used are logged and skipped;
// an error is only returned when the file as a whole cannot be used.
func ScanFile(path string, format Format, date time.Time) (*FileResult, error) {
	fileHeader, err := header.Resolve(path)
	if err != nil {
		return nil, err
	}

	if missing := fileHeader.Columns.Missing(format.RequiredRoles()...); len(missing) > 0 {
		return nil, fmt.Errorf("%s: %w %v", path, ErrMissingColumns, missing)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	result, err := scan(file, fileHeader, format, date)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	result.Path = path

	return result, nil
}

func scan(reader io.Reader, fileHeader *header.Header, format Format, date time.Time) (*FileResult, error) {
	result := &FileResult{
		Source: format.Source(),
		Stats: fleet.SourceStats{
			ProcessedFiles: 1,
		},
	}

	r := header.NewReader(reader)

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			var parseError *csv.ParseError
			if errors.As(err, &parseError) {
				log.Warn().Err(err).Str("source", string(result.Source)).Int("line", parseError.Line).Msg("Skipping malformed row")
				continue
			}

			return nil, err
		}

		line, _ := r.FieldPos(0)

		// Everything up to and including the header is metadata
		if line-1 <= fileHeader.Index {
			continue
		}
		if isBlankRow(row) {
			continue
		}

		result.Stats.TotalRecords++

		observation, reason := ParseRow(row, fileHeader.Columns, format, date)
		if reason == SkipNone || reason == SkipNoDriver {
			result.Stats.FilteredRecords++
		}

		if reason != SkipNone {
			if reason.Warn() {
				log.Warn().
					Str("source", string(result.Source)).
					Int("line", line).
					Str("reason", string(reason)).
					Msg("Skipping row")
			}
			continue
		}

		result.Observations = append(result.Observations, observation)
	}

	return result, nil
}

// ParseRow turns one data row into an observation, or says why the row was skipped
func ParseRow(row []string, columns header.ColumnMap, format Format, date time.Time) (fleet.Observation, SkipReason) {
	if len(row) <= columns.MaxIndex() {
		return fleet.Observation{}, SkipShortRow
	}

	eventTime, ok := timestamp.Parse(columns.Value(row, header.RoleTime))
	if !ok {
		return fleet.Observation{}, SkipBadTimestamp
	}

	if !util.SameDate(eventTime, date) {
		return fleet.Observation{}, SkipOtherDate
	}

	displayName := columns.Value(row, header.RoleDriver)
	key := fleet.NormalizeName(displayName)
	if key == "" {
		return fleet.Observation{}, SkipNoDriver
	}

	event := fleet.Event{
		Timestamp: eventTime,
		Source:    format.Source(),
		Kind:      fleet.EventKindGeneric,
	}
	format.Enrich(row, columns, &event)

	return fleet.Observation{
		Key:         key,
		DisplayName: displayName,
		Event:       event,
	}, SkipNone
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}
