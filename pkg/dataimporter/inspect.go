package dataimporter

import (
	"github.com/traxovo/traxovo/pkg/dataimporter/datasets"
	"github.com/traxovo/traxovo/pkg/dataimporter/header"
	"github.com/traxovo/traxovo/pkg/dataimporter/manager"
)

// FileInspection describes how a dataset file would be read without scanning its rows
type FileInspection struct {
	Dataset     string
	Path        string
	HeaderIndex int
	Columns     header.ColumnMap
	Missing     []header.Role
	Err         error
}

func (f FileInspection) Usable() bool {
	return f.Err == nil && len(f.Missing) == 0
}

func InspectDataSets(sets []datasets.DataSet) []FileInspection {
	var inspections []FileInspection

	for _, dataset := range sets {
		format, formatErr := manager.GetFormat(dataset.Format)

		for _, path := range dataset.Paths {
			inspection := FileInspection{
				Dataset:     dataset.Identifier,
				Path:        path,
				HeaderIndex: -1,
			}

			// Rosters are clean CSV and go straight through gocsv
			if dataset.Format == datasets.DataSetFormatRoster {
				inspections = append(inspections, inspection)
				continue
			}

			if formatErr != nil {
				inspection.Err = formatErr
				inspections = append(inspections, inspection)
				continue
			}

			fileHeader, err := header.Resolve(path)
			if err != nil {
				inspection.Err = err
			} else {
				inspection.HeaderIndex = fileHeader.Index
				inspection.Columns = fileHeader.Columns
				inspection.Missing = fileHeader.Columns.Missing(format.RequiredRoles()...)
			}

			inspections = append(inspections, inspection)
		}
	}

	return inspections
}
