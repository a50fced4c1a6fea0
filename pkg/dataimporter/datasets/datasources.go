package datasets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// DataSource groups the exports delivered by one telematics provider
type DataSource struct {
	Identifier string
	Provider   Provider
	Datasets   []DataSet
}

// LoadManifest reads every YAML document in path. Relative dataset paths are resolved against the manifest's directory.
func LoadManifest(path string) ([]DataSet, error) {
	manifestYaml, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	baseDirectory := filepath.Dir(path)
	decoder := yaml.NewDecoder(bytes.NewReader(manifestYaml))

	var registeredDatasets []DataSet
	for {
		var datasource DataSource
		err := decoder.Decode(&datasource)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		for _, dataset := range datasource.Datasets {
			if err := dataset.Format.Validate(); err != nil {
				return nil, fmt.Errorf("%s: dataset %s: %w", path, dataset.Identifier, err)
			}

			dataset.Identifier = fmt.Sprintf("%s-%s", datasource.Identifier, dataset.Identifier)
			dataset.DataSourceRef = datasource.Identifier
			dataset.Provider = datasource.Provider

			for i, datasetPath := range dataset.Paths {
				if !filepath.IsAbs(datasetPath) {
					dataset.Paths[i] = filepath.Join(baseDirectory, datasetPath)
				}
			}

			log.Debug().Str("id", dataset.Identifier).Int("files", len(dataset.Paths)).Msg("Loaded dataset")

			registeredDatasets = append(registeredDatasets, dataset)
		}
	}

	return registeredDatasets, nil
}
