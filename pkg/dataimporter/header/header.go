package header

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

var ErrNoHeader = errors.New("no header row found")

// Keywords that mark a row as the real header of a telematics export
var headerKeywords = []string{"contact", "eventdatetime", "msgtype", "reasonx"}

type Header struct {
	Row []string
	// Index is the 0-based input line the header row starts on
	Index   int
	Columns ColumnMap
}

// NewReader returns a csv reader tolerant of the ragged rows found in telematics exports
func NewReader(reader io.Reader) *csv.Reader {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.ReuseRecord = false

	return r
}

func Resolve(path string) (*Header, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	header, err := ResolveReader(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return header, nil
}

// ResolveReader stops at the first non-blank row containing a header keyword.
// Without one, the row with the most columns is used.
func ResolveReader(reader io.Reader) (*Header, error) {
	r := NewReader(reader)

	var widest []string
	widestIndex := -1

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseError *csv.ParseError
			if errors.As(err, &parseError) {
				log.Debug().Err(err).Msg("Skipping malformed row while looking for header")
				continue
			}

			return nil, err
		}

		if isBlank(row) {
			continue
		}

		line, _ := r.FieldPos(0)
		index := line - 1

		if containsKeyword(row) {
			return newHeader(row, index), nil
		}

		if len(row) > len(widest) {
			widest = row
			widestIndex = index
		}
	}

	if widest == nil {
		return nil, ErrNoHeader
	}

	log.Debug().Int("index", widestIndex).Msg("No header keyword found, using widest row")

	return newHeader(widest, widestIndex), nil
}

func newHeader(row []string, index int) *Header {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = strings.TrimSpace(strings.TrimPrefix(cell, byteOrderMark))
	}

	return &Header{
		Row:     cells,
		Index:   index,
		Columns: MapColumns(cells),
	}
}

// Excel exports usually start with one
const byteOrderMark = "\ufeff"

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

func containsKeyword(row []string) bool {
	joined := strings.ToLower(strings.Join(row, " "))

	for _, keyword := range headerKeywords {
		if strings.Contains(joined, keyword) {
			return true
		}
	}

	return false
}
