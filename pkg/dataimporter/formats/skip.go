package formats

type SkipReason string

const (
	SkipNone         SkipReason = ""
	SkipShortRow     SkipReason = "short-row"
	SkipBadTimestamp SkipReason = "unparseable-timestamp"
	SkipOtherDate    SkipReason = "other-date"
	SkipNoDriver     SkipReason = "no-driver"
)

// Warn reports whether the skip points at bad data rather than routine filtering
func (s SkipReason) Warn() bool {
	return s != SkipNone && s != SkipOtherDate
}
