package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/xoso/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.PrizeTiers
		err      error
	}{
		{
			name: "Upstream detail array",
			raw:  `["123456","12345","12345","12345,54321","1111,2222,3333,4444,5555,6666,7777","1234","123,456,789","12","99"]`,
			expected: domain.PrizeTiers{
				"DB": {"123456"},
				"G1": {"12345"},
				"G2": {"12345"},
				"G3": {"12345", "54321"},
				"G4": {"1111", "2222", "3333", "4444", "5555", "6666", "7777"},
				"G5": {"1234"},
				"G6": {"123", "456", "789"},
				"G7": {"12"},
				"G8": {"99"},
			},
		},
		{
			name: "Detail array quoted as a JSON string",
			raw:  `"[\"12345\",\"54321\"]"`,
			expected: domain.PrizeTiers{
				"DB": {"12345"},
				"G1": {"54321"},
			},
		},
		{
			name: "Nested arrays and short input",
			raw:  `[["00123"],["45678","11111"],[]]`,
			expected: domain.PrizeTiers{
				"DB": {"00123"},
				"G1": {"45678", "11111"},
			},
		},
		{
			name: "Object with aliases",
			raw:  `{"ĐB":"12345","g7":["12","34"],"special":"99999","unknown":"1"}`,
			expected: domain.PrizeTiers{
				"DB": {"12345", "99999"},
				"G7": {"12", "34"},
			},
		},
		{
			name: "Flat string positional bands",
			raw:  "11,22,23,31,32,33,34,35,41",
			expected: domain.PrizeTiers{
				"DB": {"11"},
				"G1": {"22", "23"},
				"G2": {"31", "32", "33", "34", "35"},
				"G3": {"41"},
			},
		},
		{
			name: "Flat string drops empty fields before banding",
			raw:  "1,,2,3, ,x,4",
			expected: domain.PrizeTiers{
				"DB": {"1"},
				"G1": {"2", "3"},
				"G2": {"4"},
			},
		},
		{
			name:     "Single bare number",
			raw:      "123456",
			expected: domain.PrizeTiers{"DB": {"123456"}},
		},
		{
			name:     "Spaces inside numbers",
			raw:      `["12 345"]`,
			expected: domain.PrizeTiers{"DB": {"12345"}},
		},
		{
			name: "Empty payload",
			raw:  "   ",
			err:  ErrNormalization,
		},
		{
			name: "No digits anywhere",
			raw:  `{"note":"pending"}`,
			err:  ErrNormalization,
		},
		{
			name: "Garbage text",
			raw:  "not available",
			err:  ErrNormalization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize([]byte(tt.raw))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_FlatFullDraw(t *testing.T) {
	raw := strings.TrimSuffix(strings.Repeat("1,", 33), ",")

	got, err := Normalize([]byte(raw))
	require.NoError(t, err)
	assert.Len(t, got["DB"], 1)
	assert.Len(t, got["G1"], 2)
	assert.Len(t, got["G2"], 5)
	assert.Len(t, got["G3"], 6)
	assert.Len(t, got["G4"], 4)
	assert.Len(t, got["G5"], 6)
	assert.Len(t, got["G6"], 3)
	assert.Len(t, got["G7"], 3)
	assert.Len(t, got["G8"], 3)
}
