package util

import (
	"time"
)

const DateLayout = "2006-01-02"

// TimeOnDate returns the instant sinceMidnight after the start of date's calendar day
func TimeOnDate(date time.Time, sinceMidnight time.Duration) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	return midnight.Add(sinceMidnight)
}

func SameDate(a time.Time, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()

	return aYear == bYear && aMonth == bMonth && aDay == bDay
}
