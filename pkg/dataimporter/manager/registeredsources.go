package manager

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/traxovo/traxovo/pkg/dataimporter/datasets"
)

// GetRegisteredDataSets loads a single manifest, or every .yaml manifest below a directory
func GetRegisteredDataSets(source string) ([]datasets.DataSet, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return datasets.LoadManifest(source)
	}

	var registeredDatasets []datasets.DataSet

	err = filepath.Walk(source,
		func(path string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if fileInfo.IsDir() || filepath.Ext(path) != ".yaml" {
				return nil
			}

			log.Debug().Str("path", path).Msg("Loading datasources file")

			loaded, err := datasets.LoadManifest(path)
			if err != nil {
				return err
			}
			registeredDatasets = append(registeredDatasets, loaded...)

			return nil
		})
	if err != nil {
		return nil, err
	}

	return registeredDatasets, nil
}
