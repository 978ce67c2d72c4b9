package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicketNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"123456", "123456", true},
		{" 12 34 56 ", "123456", true},
		{"012", "012", true},
		{"12", "12", true},
		{"1", "1", false},
		{"1234567", "1234567", false},
		{"12a456", "12a456", false},
		{"١٢٣", "١٢٣", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			number, ok := TicketNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, number)
		})
	}
}
