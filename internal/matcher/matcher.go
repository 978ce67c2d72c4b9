// Package matcher resolves a ticket number against a draw's prize tiers.
package matcher

import (
	"sort"
	"strings"

	"github.com/GlebRadaev/xoso/internal/domain"
)

var topAliases = []string{"DB", "ĐB", "dacbiet", "jackpot", "special"}

type Matcher struct {
	north ruleset
	south ruleset
}

func New(policy NorthBonus) *Matcher {
	return &Matcher{
		north: newNorthRules(policy),
		south: newSouthRules(),
	}
}

func (m *Matcher) rules(region string) ruleset {
	if strings.EqualFold(strings.TrimSpace(region), domain.RegionNorth) {
		return m.north
	}
	return m.south
}

// Match returns the single best prize for ticketNumber, or a non-winning
// outcome when nothing qualifies. Comparisons are on zero-padded digit
// strings so leading zeros count.
func (m *Matcher) Match(ticketNumber, region string, tiers domain.PrizeTiers) domain.MatchOutcome {
	rs := m.rules(region)
	ticket := pad(digits(ticketNumber), rs.width)
	if ticket == "" {
		return domain.MatchOutcome{}
	}

	var candidates []Tier

	topNumbers := numbersFor(tiers, topAliases...)
	for _, raw := range topNumbers {
		if pad(raw, rs.width) == ticket {
			candidates = append(candidates, rs.top)
		}
	}

	for _, tier := range rs.others {
		for _, raw := range numbersFor(tiers, tier.ID, strings.ToLower(tier.ID)) {
			if suffixEqual(ticket, pad(raw, rs.width), tier.SuffixLen) {
				candidates = append(candidates, tier)
			}
		}
	}

	for _, raw := range topNumbers {
		top := pad(raw, rs.width)
		for _, b := range rs.bonuses {
			if b.applies(ticket, raw, top) {
				candidates = append(candidates, b.tier)
			}
		}
	}

	if len(candidates) == 0 {
		return domain.MatchOutcome{}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Rank != candidates[j].Rank {
			return candidates[i].Rank < candidates[j].Rank
		}
		return candidates[i].SuffixLen > candidates[j].SuffixLen
	})
	best := candidates[0]
	return domain.MatchOutcome{IsWinner: true, Amount: best.Amount, Category: best.ID}
}

func numbersFor(tiers domain.PrizeTiers, keys ...string) []string {
	var out []string
	for _, key := range keys {
		for _, n := range tiers[key] {
			if d := digits(n); d != "" {
				out = append(out, d)
			}
		}
	}
	return out
}

func suffixEqual(ticket, winning string, n int) bool {
	if n <= 0 || len(ticket) < n || len(winning) < n {
		return false
	}
	return ticket[len(ticket)-n:] == winning[len(winning)-n:]
}

func pad(s string, width int) string {
	if s == "" || len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
