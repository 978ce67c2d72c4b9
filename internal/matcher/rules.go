package matcher

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is one row of a regional prize table.
type Tier struct {
	ID        string
	SuffixLen int
	Amount    int64
	Rank      int
}

const (
	TierDB    = "DB"
	TierPhuDB = "PHU_DB"
	TierPDB   = "PDB"
	TierKK    = "KK"
)

// NorthBonus selects which bonus rule, if any, applies to 5-digit draws.
type NorthBonus string

const (
	NorthBonusNone NorthBonus = "none"
	NorthBonusPDB  NorthBonus = "pdb"
)

var ErrUnknownNorthBonus = errors.New("unknown north bonus policy")

func ParseNorthBonus(value string) (NorthBonus, error) {
	switch NorthBonus(strings.ToLower(strings.TrimSpace(value))) {
	case "", NorthBonusNone:
		return NorthBonusNone, nil
	case NorthBonusPDB:
		return NorthBonusPDB, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNorthBonus, value)
	}
}

var northTiers = []Tier{
	{ID: TierDB, SuffixLen: 5, Amount: 1_000_000_000, Rank: 1},
	{ID: "G1", SuffixLen: 5, Amount: 10_000_000, Rank: 3},
	{ID: "G2", SuffixLen: 5, Amount: 5_000_000, Rank: 4},
	{ID: "G3", SuffixLen: 5, Amount: 2_000_000, Rank: 5},
	{ID: "G4", SuffixLen: 4, Amount: 600_000, Rank: 6},
	{ID: "G5", SuffixLen: 4, Amount: 200_000, Rank: 7},
	{ID: "G6", SuffixLen: 3, Amount: 100_000, Rank: 8},
	{ID: "G7", SuffixLen: 2, Amount: 40_000, Rank: 9},
}

var northPDB = Tier{ID: TierPDB, Amount: 50_000_000, Rank: 2}

var southTiers = []Tier{
	{ID: TierDB, SuffixLen: 6, Amount: 2_000_000_000, Rank: 1},
	{ID: "G1", SuffixLen: 5, Amount: 30_000_000, Rank: 3},
	{ID: "G2", SuffixLen: 5, Amount: 15_000_000, Rank: 4},
	{ID: "G3", SuffixLen: 5, Amount: 10_000_000, Rank: 5},
	{ID: "G4", SuffixLen: 5, Amount: 3_000_000, Rank: 6},
	{ID: "G5", SuffixLen: 4, Amount: 1_000_000, Rank: 7},
	{ID: "G6", SuffixLen: 4, Amount: 400_000, Rank: 8},
	{ID: "G7", SuffixLen: 3, Amount: 200_000, Rank: 9},
	{ID: "G8", SuffixLen: 2, Amount: 100_000, Rank: 10},
}

var (
	southPhuDB = Tier{ID: TierPhuDB, Amount: 50_000_000, Rank: 2}
	southKK    = Tier{ID: TierKK, Amount: 600_000, Rank: 11}
)

// bonus decides a bonus tier from the padded ticket and one top prize number,
// given both raw and padded to the region width.
type bonus struct {
	tier    Tier
	applies func(ticket, rawTop, top string) bool
}

type ruleset struct {
	width   int
	top     Tier
	others  []Tier
	bonuses []bonus
}

func newNorthRules(policy NorthBonus) ruleset {
	rs := ruleset{width: 5, top: northTiers[0], others: northTiers[1:]}
	if policy == NorthBonusPDB {
		rs.bonuses = append(rs.bonuses, bonus{tier: northPDB, applies: trailingOfLongerTop})
	}
	return rs
}

func newSouthRules() ruleset {
	return ruleset{
		width:  6,
		top:    southTiers[0],
		others: southTiers[1:],
		bonuses: []bonus{
			{tier: southPhuDB, applies: complement},
			{tier: southKK, applies: nearMiss},
		},
	}
}

// complement: same last five digits, different leading digit.
func complement(ticket, _, top string) bool {
	if len(ticket) != len(top) || len(ticket) < 6 {
		return false
	}
	return ticket[len(ticket)-5:] == top[len(top)-5:] && ticket[0] != top[0]
}

func nearMiss(ticket, _, top string) bool {
	return hamming(ticket, top) == 1
}

// trailingOfLongerTop matches a north ticket against the last five digits of
// a top prize number published with more than five digits.
func trailingOfLongerTop(ticket, rawTop, _ string) bool {
	if len(rawTop) <= 5 || len(ticket) != 5 {
		return false
	}
	return rawTop[len(rawTop)-5:] == ticket
}

// hamming returns -1 for strings of different length.
func hamming(a, b string) int {
	if len(a) != len(b) {
		return -1
	}
	d := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}
