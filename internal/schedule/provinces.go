package schedule

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/GlebRadaev/xoso/internal/domain"
)

type province struct {
	name    string
	code    string
	region  string
	aliases []string
}

// code is the province identifier used by the upstream results feed.
var registry = []province{
	{name: "An Giang", code: "angi", region: domain.RegionSouth},
	{name: "Bạc Liêu", code: "bali", region: domain.RegionSouth},
	{name: "Bắc Ninh", code: "bani", region: domain.RegionNorth},
	{name: "Bến Tre", code: "betr", region: domain.RegionSouth},
	{name: "Bình Định", code: "bidi", region: domain.RegionCentral},
	{name: "Bình Dương", code: "bidu", region: domain.RegionSouth},
	{name: "Bình Phước", code: "biph", region: domain.RegionSouth},
	{name: "Bình Thuận", code: "bith", region: domain.RegionSouth},
	{name: "Cà Mau", code: "cama", region: domain.RegionSouth},
	{name: "Cần Thơ", code: "cath", region: domain.RegionSouth},
	{name: "Đà Lạt", code: "dalat", region: domain.RegionSouth},
	{name: "Đà Nẵng", code: "dana", region: domain.RegionCentral},
	{name: "Đắk Lắk", code: "dalak", region: domain.RegionCentral, aliases: []string{"Daklak"}},
	{name: "Đắk Nông", code: "dano", region: domain.RegionCentral},
	{name: "Đồng Nai", code: "dona", region: domain.RegionSouth},
	{name: "Đồng Tháp", code: "doth", region: domain.RegionSouth},
	{name: "Gia Lai", code: "gila", region: domain.RegionCentral},
	{name: "Hải Phòng", code: "haph", region: domain.RegionNorth},
	{name: "Hà Nội", code: "hano", region: domain.RegionNorth, aliases: []string{"Hanoi"}},
	{name: "Hậu Giang", code: "haug", region: domain.RegionSouth},
	{name: "TP.HCM", code: "hcm", region: domain.RegionSouth, aliases: []string{"Ho Chi Minh", "Hồ Chí Minh", "TP HCM"}},
	{name: "Huế", code: "hue", region: domain.RegionCentral, aliases: []string{"Thừa Thiên Huế"}},
	{name: "Khánh Hòa", code: "kaha", region: domain.RegionCentral},
	{name: "Kiên Giang", code: "kigi", region: domain.RegionSouth},
	{name: "Kon Tum", code: "kotu", region: domain.RegionCentral},
	{name: "Long An", code: "loan", region: domain.RegionSouth},
	{name: "Nam Định", code: "nadi", region: domain.RegionNorth},
	{name: "Ninh Thuận", code: "nith", region: domain.RegionCentral},
	{name: "Phú Yên", code: "phye", region: domain.RegionCentral},
	{name: "Quảng Bình", code: "qubi", region: domain.RegionCentral},
	{name: "Quảng Nam", code: "quna", region: domain.RegionCentral},
	{name: "Quảng Ngãi", code: "qung", region: domain.RegionCentral},
	{name: "Quảng Ninh", code: "quni", region: domain.RegionNorth},
	{name: "Quảng Trị", code: "qutr", region: domain.RegionCentral},
	{name: "Sóc Trăng", code: "sotr", region: domain.RegionSouth},
	{name: "Tây Ninh", code: "tani", region: domain.RegionSouth},
	{name: "Thái Bình", code: "thbi", region: domain.RegionNorth},
	{name: "Tiền Giang", code: "tigi", region: domain.RegionSouth},
	{name: "Trà Vinh", code: "trvi", region: domain.RegionSouth},
	{name: "Vĩnh Long", code: "vilo", region: domain.RegionSouth},
	{name: "Vũng Tàu", code: "vuta", region: domain.RegionSouth},
	{name: "Nghệ An", region: domain.RegionCentral},
	{name: "Hà Tĩnh", region: domain.RegionCentral},
}

func lookup(name string) (province, bool) {
	key := stripSpaces(fold(name))
	if key == "" {
		return province{}, false
	}
	for _, p := range registry {
		if stripSpaces(fold(p.name)) == key {
			return p, true
		}
		for _, alias := range p.aliases {
			if stripSpaces(fold(alias)) == key {
				return p, true
			}
		}
	}
	return province{}, false
}

// RegionOf maps a province name to its lottery region. Unknown names fall
// back to south.
func RegionOf(name string) string {
	if p, ok := lookup(name); ok {
		return p.region
	}
	return domain.RegionSouth
}

// APICode returns the upstream feed code for a province.
func APICode(name string) (string, bool) {
	p, ok := lookup(name)
	if !ok || p.code == "" {
		return "", false
	}
	return p.code, true
}

// CanonicalName returns the registry spelling of name, or name trimmed when
// it is not a known province.
func CanonicalName(name string) string {
	if p, ok := lookup(name); ok {
		return p.name
	}
	return strings.TrimSpace(name)
}

var dStroke = strings.NewReplacer("Đ", "D", "đ", "d")

// fold lowercases s and strips Vietnamese diacritics.
func fold(s string) string {
	s = dStroke.Replace(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
