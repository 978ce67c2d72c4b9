package fetcher

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/GlebRadaev/xoso/internal/domain"
)

var ErrNormalization = errors.New("unrecognized prize payload")

// tierOrder is the position of each tier in array-shaped payloads.
var tierOrder = []string{"DB", "G1", "G2", "G3", "G4", "G5", "G6", "G7", "G8"}

// flatBands slices a flat comma-separated result string into tiers.
var flatBands = []struct {
	id         string
	start, end int
}{
	{"DB", 0, 1},
	{"G1", 1, 3},
	{"G2", 3, 8},
	{"G3", 8, 14},
	{"G4", 14, 18},
	{"G5", 18, 24},
	{"G6", 24, 27},
	{"G7", 27, 30},
	{"G8", 30, -1},
}

var tierAliases = map[string]string{
	"db": "DB", "đb": "DB", "dacbiet": "DB", "jackpot": "DB", "special": "DB",
	"g1": "G1", "first": "G1",
	"g2": "G2", "second": "G2",
	"g3": "G3", "third": "G3",
	"g4": "G4", "fourth": "G4",
	"g5": "G5", "fifth": "G5",
	"g6": "G6", "sixth": "G6",
	"g7": "G7", "seventh": "G7",
	"g8": "G8", "eighth": "G8",
}

// Normalize turns an upstream prize payload into canonical tiers. It accepts
// a JSON array ordered from the top prize down, a JSON object keyed by tier
// name, or a flat comma-separated string (bare or JSON-quoted). Missing
// positions leave their tiers out.
func Normalize(raw []byte) (domain.PrizeTiers, error) {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, ErrNormalization
	}

	var tiers domain.PrizeTiers
	if gjson.Valid(text) {
		res := gjson.Parse(text)
		switch {
		case res.IsArray():
			tiers = fromArray(res)
		case res.IsObject():
			tiers = fromObject(res)
		case res.Type == gjson.String:
			inner := strings.TrimSpace(res.String())
			if strings.HasPrefix(inner, "[") || strings.HasPrefix(inner, "{") {
				return Normalize([]byte(inner))
			}
			tiers = fromFlat(inner)
		case res.Type == gjson.Number:
			tiers = fromFlat(res.Raw)
		}
	} else {
		tiers = fromFlat(text)
	}

	if len(tiers) == 0 {
		return nil, ErrNormalization
	}
	return tiers, nil
}

func fromArray(res gjson.Result) domain.PrizeTiers {
	tiers := domain.PrizeTiers{}
	for i, item := range res.Array() {
		if i >= len(tierOrder) {
			break
		}
		if numbers := numbersOf(item); len(numbers) > 0 {
			tiers[tierOrder[i]] = numbers
		}
	}
	return tiers
}

func fromObject(res gjson.Result) domain.PrizeTiers {
	tiers := domain.PrizeTiers{}
	res.ForEach(func(key, value gjson.Result) bool {
		id, ok := tierAliases[strings.ToLower(strings.TrimSpace(key.String()))]
		if !ok {
			return true
		}
		tiers[id] = append(tiers[id], numbersOf(value)...)
		if len(tiers[id]) == 0 {
			delete(tiers, id)
		}
		return true
	})
	return tiers
}

func fromFlat(text string) domain.PrizeTiers {
	var fields []string
	for _, f := range strings.Split(text, ",") {
		if d := digitsOnly(f); d != "" {
			fields = append(fields, d)
		}
	}

	tiers := domain.PrizeTiers{}
	for _, band := range flatBands {
		if band.start >= len(fields) {
			break
		}
		end := band.end
		if end < 0 || end > len(fields) {
			end = len(fields)
		}
		tiers[band.id] = append([]string(nil), fields[band.start:end]...)
	}
	return tiers
}

func numbersOf(item gjson.Result) []string {
	var parts []string
	if item.IsArray() {
		for _, v := range item.Array() {
			parts = append(parts, v.String())
		}
	} else {
		parts = strings.Split(item.String(), ",")
	}

	var numbers []string
	for _, p := range parts {
		if d := digitsOnly(p); d != "" {
			numbers = append(numbers, d)
		}
	}
	return numbers
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
