// Package schedule knows which provinces draw on which weekday and how
// free-text province names are reconciled against that table.
package schedule

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var weekly = map[time.Weekday][]string{
	time.Monday:    {"Phú Yên", "Huế", "Đồng Tháp", "Cà Mau", "Hà Nội", "TP.HCM"},
	time.Tuesday:   {"Đắk Lắk", "Quảng Nam", "Bến Tre", "Vũng Tàu", "Bạc Liêu", "Quảng Ninh"},
	time.Wednesday: {"Đồng Nai", "Đà Nẵng", "Sóc Trăng", "Cần Thơ", "Bắc Ninh", "Khánh Hòa"},
	time.Thursday:  {"Bình Định", "Bình Thuận", "Quảng Bình", "Quảng Trị", "Hà Nội", "Tây Ninh", "An Giang"},
	time.Friday:    {"Bình Dương", "Ninh Thuận", "Trà Vinh", "Gia Lai", "Vĩnh Long", "Hải Phòng"},
	time.Saturday:  {"Hậu Giang", "Bình Phước", "Long An", "Đà Nẵng", "Quảng Ngãi", "Đắk Nông", "Nam Định", "TP.HCM"},
	time.Sunday:    {"Tiền Giang", "Kiên Giang", "Đà Lạt", "Kon Tum", "Huế", "Khánh Hòa", "Thái Bình"},
}

// ProvincesDrawingOn returns the canonical names of provinces scheduled to
// draw on date (YYYY-MM-DD). An unparsable date yields no provinces.
func ProvincesDrawingOn(date string) []string {
	day, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return nil
	}
	scheduled := weekly[day.Weekday()]
	out := make([]string, len(scheduled))
	copy(out, scheduled)
	return out
}

// DoesProvinceDrawOn reports whether province is scheduled on date's weekday.
func DoesProvinceDrawOn(province, date string) bool {
	for _, scheduled := range ProvincesDrawingOn(date) {
		if Matches(province, scheduled) {
			return true
		}
	}
	return false
}

// Matches is the fuzzy name policy used for schedule membership: equality,
// whitespace-insensitive equality, or substring containment in either
// direction, checked on the raw names and then on accent-folded names.
//
// Containment over-matches names that are substrings of each other
// ("Nam" hits both "Quảng Nam" and "Nam Định").
func Matches(province, scheduled string) bool {
	if loosely(strings.TrimSpace(province), strings.TrimSpace(scheduled)) {
		return true
	}
	return loosely(fold(province), fold(scheduled))
}

func loosely(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return a == b ||
		stripSpaces(a) == stripSpaces(b) ||
		strings.Contains(a, b) ||
		strings.Contains(b, a)
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
