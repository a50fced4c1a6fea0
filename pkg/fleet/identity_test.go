package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "John Smith", want: "johnsmith"},
		{name: "numeric suffix", input: "John Smith (4821)", want: "johnsmith"},
		{name: "upper case with suffix", input: "MARIA GARCIA (991)", want: "mariagarcia"},
		{name: "punctuation", input: "O'Neil, Pat-J.", want: "oneilpatj"},
		{name: "digits kept outside brackets", input: "Unit 7 Driver", want: "unit7driver"},
		{name: "empty", input: "", want: ""},
		{name: "only an id", input: "(123456)", want: ""},
		{name: "whitespace", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.input))
		})
	}
}

func TestNormalizeNameMatchesAcrossSources(t *testing.T) {
	assert.Equal(t, NormalizeName("Maria Garcia"), NormalizeName("MARIA GARCIA (991)"))
	assert.Equal(t, NormalizeName("Maria Garcia"), NormalizeName("Maria Garcia"))
}
