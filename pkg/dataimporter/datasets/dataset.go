package datasets

import (
	"fmt"

	"github.com/traxovo/traxovo/pkg/fleet"
)

type DataSet struct {
	Identifier    string
	DataSourceRef string `yaml:"-"`
	Format        DataSetFormat

	Provider Provider `yaml:"-"`

	Paths []string
}

type DataSetFormat string

const (
	DataSetFormatDrivingHistory DataSetFormat = "driving-history"
	DataSetFormatActivityDetail DataSetFormat = "activity-detail"
	DataSetFormatRoster         DataSetFormat = "roster"
)

type Provider struct {
	Name    string
	Website string
}

func (f DataSetFormat) Validate() error {
	switch f {
	case DataSetFormatDrivingHistory, DataSetFormatActivityDetail, DataSetFormatRoster:
		return nil
	default:
		return fmt.Errorf("unsupported dataset format %q", string(f))
	}
}

// SourceKind is the telematics source a format feeds, empty for rosters
func (f DataSetFormat) SourceKind() fleet.SourceKind {
	switch f {
	case DataSetFormatDrivingHistory:
		return fleet.SourceDrivingHistory
	case DataSetFormatActivityDetail:
		return fleet.SourceActivityDetail
	default:
		return ""
	}
}
