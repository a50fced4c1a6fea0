package attendance

import (
	"fmt"
	"os"
	"time"

	iso8601 "github.com/senseyeio/duration"
	"gopkg.in/yaml.v3"
)

// Policy holds the shift boundaries and tolerances drivers are measured against.
// ShiftStart and ShiftEnd are offsets from midnight of the day being evaluated.
type Policy struct {
	ShiftStart              time.Duration
	ShiftEnd                time.Duration
	LateThreshold           time.Duration
	EarlyDepartureThreshold time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		ShiftStart:              7 * time.Hour,
		ShiftEnd:                17 * time.Hour,
		LateThreshold:           15 * time.Minute,
		EarlyDepartureThreshold: 30 * time.Minute,
	}
}

func (p Policy) IsZero() bool {
	return p == Policy{}
}

func (p Policy) Validate() error {
	if p.ShiftStart < 0 || p.ShiftEnd > 24*time.Hour || p.ShiftEnd <= p.ShiftStart {
		return fmt.Errorf("invalid shift %s-%s", p.ShiftStart, p.ShiftEnd)
	}
	if p.LateThreshold < 0 || p.EarlyDepartureThreshold < 0 {
		return fmt.Errorf("thresholds must not be negative")
	}

	return nil
}

// policyFile is the YAML form of a Policy, durations are ISO 8601 (eg. PT7H30M)
type policyFile struct {
	ShiftStart              string `yaml:"shift_start"`
	ShiftEnd                string `yaml:"shift_end"`
	LateThreshold           string `yaml:"late_threshold"`
	EarlyDepartureThreshold string `yaml:"early_departure_threshold"`
}

// LoadPolicy reads a YAML policy file. Keys left out keep their default value.
func LoadPolicy(path string) (Policy, error) {
	policyYaml, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, err
	}

	var file policyFile
	if err := yaml.Unmarshal(policyYaml, &file); err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}

	policy := DefaultPolicy()
	fields := []struct {
		value  string
		target *time.Duration
	}{
		{file.ShiftStart, &policy.ShiftStart},
		{file.ShiftEnd, &policy.ShiftEnd},
		{file.LateThreshold, &policy.LateThreshold},
		{file.EarlyDepartureThreshold, &policy.EarlyDepartureThreshold},
	}

	for _, field := range fields {
		if field.value == "" {
			continue
		}

		duration, err := parseDuration(field.value)
		if err != nil {
			return Policy{}, fmt.Errorf("%s: %w", path, err)
		}
		*field.target = duration
	}

	if err := policy.Validate(); err != nil {
		return Policy{}, fmt.Errorf("%s: %w", path, err)
	}

	return policy, nil
}

var durationReference = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

func parseDuration(value string) (time.Duration, error) {
	duration, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, fmt.Errorf("duration %q: %w", value, err)
	}

	return duration.Shift(durationReference).Sub(durationReference), nil
}
