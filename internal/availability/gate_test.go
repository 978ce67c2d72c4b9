package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldResultsBeAvailable(t *testing.T) {
	at := func(value string) time.Time {
		ts, err := time.Parse(time.RFC3339, value)
		require.NoError(t, err)
		return ts
	}

	tests := []struct {
		name     string
		date     string
		now      time.Time
		expected bool
		err      error
	}{
		{
			name:     "Past date",
			date:     "2024-01-09",
			now:      at("2024-01-10T08:00:00+07:00"),
			expected: true,
		},
		{
			name:     "Today before cutoff",
			date:     "2024-01-10",
			now:      at("2024-01-10T15:59:00+07:00"),
			expected: false,
		},
		{
			name:     "Today at cutoff",
			date:     "2024-01-10",
			now:      at("2024-01-10T16:00:00+07:00"),
			expected: true,
		},
		{
			name:     "Today after cutoff",
			date:     "2024-01-10",
			now:      at("2024-01-10T16:01:00+07:00"),
			expected: true,
		},
		{
			name:     "Future date",
			date:     "2024-01-11",
			now:      at("2024-01-10T23:00:00+07:00"),
			expected: false,
		},
		{
			name:     "UTC instant already next day in Vietnam",
			date:     "2024-01-10",
			now:      at("2024-01-10T18:00:00Z"),
			expected: true,
		},
		{
			name:     "UTC instant still before cutoff in Vietnam",
			date:     "2024-01-10",
			now:      at("2024-01-10T08:30:00Z"),
			expected: false,
		},
		{
			name: "Malformed date",
			date: "10-01-2024",
			now:  at("2024-01-10T16:00:00+07:00"),
			err:  ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShouldResultsBeAvailable(tt.date, tt.now)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTodayAndYesterday(t *testing.T) {
	now := time.Date(2024, 1, 10, 18, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-11", Today(now))
	assert.Equal(t, "2024-01-10", Yesterday(now))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate(" 2024-02-29 ")
	assert.NoError(t, err)

	_, err = ParseDate("2023-02-29")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
