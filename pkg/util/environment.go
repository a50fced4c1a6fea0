package util

import "os"

const environmentPrefix = "TRAXOVO_"

// GetEnvironmentVariable returns TRAXOVO_<name> or the fallback when it is unset or empty
func GetEnvironmentVariable(name string, fallback string) string {
	if value := os.Getenv(environmentPrefix + name); value != "" {
		return value
	}

	return fallback
}
