package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GlebRadaev/xoso/internal/domain"
)

func TestProvincesDrawingOn(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected []string
	}{
		{
			name:     "Monday",
			date:     "2024-01-01",
			expected: []string{"Phú Yên", "Huế", "Đồng Tháp", "Cà Mau", "Hà Nội", "TP.HCM"},
		},
		{
			name:     "Tuesday",
			date:     "2024-01-02",
			expected: []string{"Đắk Lắk", "Quảng Nam", "Bến Tre", "Vũng Tàu", "Bạc Liêu", "Quảng Ninh"},
		},
		{
			name:     "Sunday",
			date:     "2024-01-07",
			expected: []string{"Tiền Giang", "Kiên Giang", "Đà Lạt", "Kon Tum", "Huế", "Khánh Hòa", "Thái Bình"},
		},
		{
			name:     "Unparsable date",
			date:     "07/01/2024",
			expected: nil,
		},
		{
			name:     "Empty date",
			date:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProvincesDrawingOn(tt.date))
		})
	}
}

func TestProvincesDrawingOn_ReturnsCopy(t *testing.T) {
	got := ProvincesDrawingOn("2024-01-01")
	got[0] = "changed"

	assert.Equal(t, "Phú Yên", ProvincesDrawingOn("2024-01-01")[0])
}

func TestDoesProvinceDrawOn(t *testing.T) {
	tests := []struct {
		name     string
		province string
		date     string
		expected bool
	}{
		{name: "Exact name", province: "Vũng Tàu", date: "2024-01-02", expected: true},
		{name: "ASCII variant", province: "Vung Tau", date: "2024-01-02", expected: true},
		{name: "Surrounding whitespace", province: "  Bến Tre ", date: "2024-01-02", expected: true},
		{name: "Whitespace-insensitive", province: "BếnTre", date: "2024-01-02", expected: true},
		{name: "Longer name contains scheduled", province: "Thừa Thiên Huế", date: "2024-01-01", expected: true},
		{name: "Not scheduled that weekday", province: "Vũng Tàu", date: "2024-01-03", expected: false},
		{name: "Unknown province", province: "Atlantis", date: "2024-01-02", expected: false},
		{name: "Empty province", province: "", date: "2024-01-02", expected: false},
		{name: "Unparsable date", province: "Vũng Tàu", date: "not-a-date", expected: false},
		{name: "Substring over-match", province: "Nam", date: "2024-01-02", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DoesProvinceDrawOn(tt.province, tt.date))
		})
	}
}

func TestDoesProvinceDrawOn_IndependentOfYear(t *testing.T) {
	tuesdays := []string{"1999-03-02", "2024-01-02", "2031-07-01", "2100-06-01"}
	for _, date := range tuesdays {
		t.Run(date, func(t *testing.T) {
			assert.True(t, DoesProvinceDrawOn("Vũng Tàu", date))
			assert.False(t, DoesProvinceDrawOn("Đồng Nai", date))
		})
	}
}

func TestRegionOf(t *testing.T) {
	tests := []struct {
		province string
		expected string
	}{
		{"Hà Nội", domain.RegionNorth},
		{"Hanoi", domain.RegionNorth},
		{"ha noi", domain.RegionNorth},
		{"Quảng Ninh", domain.RegionNorth},
		{"Đà Nẵng", domain.RegionCentral},
		{"Da Nang", domain.RegionCentral},
		{"Thừa Thiên Huế", domain.RegionCentral},
		{"Khánh Hoà", domain.RegionCentral},
		{"TP.HCM", domain.RegionSouth},
		{"Vung Tau", domain.RegionSouth},
		{"Atlantis", domain.RegionSouth},
	}

	for _, tt := range tests {
		t.Run(tt.province, func(t *testing.T) {
			assert.Equal(t, tt.expected, RegionOf(tt.province))
		})
	}
}

func TestAPICode(t *testing.T) {
	tests := []struct {
		province string
		code     string
		ok       bool
	}{
		{"Vũng Tàu", "vuta", true},
		{"Vung Tau", "vuta", true},
		{"Daklak", "dalak", true},
		{"Ho Chi Minh", "hcm", true},
		{"Thừa Thiên Huế", "hue", true},
		{"Nghệ An", "", false},
		{"Atlantis", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.province, func(t *testing.T) {
			code, ok := APICode(tt.province)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "Vũng Tàu", CanonicalName("vung tau"))
	assert.Equal(t, "Đắk Lắk", CanonicalName("Daklak"))
	assert.Equal(t, "Atlantis", CanonicalName("  Atlantis "))
}
