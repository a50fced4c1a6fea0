// Package roster reads the list of drivers expected to work on a given day.
// Rostered drivers are reported even when no telematics events arrive for them.
package roster

import (
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/traxovo/traxovo/pkg/dataimporter/header"
	"github.com/traxovo/traxovo/pkg/fleet"
)

type Entry struct {
	DriverName string `csv:"driver_name"`
	EmployeeID string `csv:"employee_id"`
	Depot      string `csv:"depot"`
}

func ParseFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var entries []Entry
	if err := gocsv.UnmarshalCSV(header.NewReader(file), &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Register adds every named entry to registry and returns how many were usable
func Register(registry *fleet.Registry, entries []Entry) int {
	registered := 0

	for _, entry := range entries {
		displayName := strings.TrimSpace(entry.DriverName)
		key := fleet.NormalizeName(displayName)
		if key == "" {
			continue
		}

		registry.GetOrCreate(key, displayName)
		registered++
	}

	return registered
}
