package ticket

import (
	"sort"

	"github.com/zombor/lotto-checker/internal/drawing"
)

// Tier is a named winning category. The empty Tier means the ticket won
// nothing.
type Tier string

const (
	TierNone      Tier = ""
	TierJackpot   Tier = "5+PB"
	TierFive      Tier = "5"
	TierFourPB    Tier = "4+PB"
	TierFour      Tier = "4"
	TierThreePB   Tier = "3+PB"
	TierThree     Tier = "3"
	TierTwoPB     Tier = "2+PB"
	TierOnePB     Tier = "1+PB"
	TierPowerball Tier = "PB"
)

// tierRule maps one (match count, powerball hit) combination to its tier.
// Rules are evaluated in order; the first hit wins.
type tierRule struct {
	mainMatches    int // -1 matches any count
	powerballMatch bool
	tier           Tier
}

// tierTable mirrors the official Powerball prize structure. Two or fewer main
// matches without the powerball win nothing, which is why those rows are
// absent.
var tierTable = []tierRule{
	{5, true, TierJackpot},
	{5, false, TierFive},
	{4, true, TierFourPB},
	{4, false, TierFour},
	{3, true, TierThreePB},
	{3, false, TierThree},
	{2, true, TierTwoPB},
	{1, true, TierOnePB},
	{-1, true, TierPowerball},
}

// MatchOutcome is the result of checking one ticket against one drawing.
// All fields are set at construction and never updated afterward.
type MatchOutcome struct {
	Ticket          Ticket `json:"ticket"`
	MainMatchCount  int    `json:"main_match_count"`
	PowerballMatch  bool   `json:"powerball_match"`
	MatchingNumbers []int  `json:"matching_numbers"` // Sorted ascending
	Tier            Tier   `json:"tier,omitempty"`
	IsWinner        bool   `json:"is_winner"`
}

// Classify checks a validated ticket against a drawing. It is pure and has no
// failure path; both inputs are assumed validated.
func Classify(t Ticket, d *drawing.DrawResult) MatchOutcome {
	matching := make([]int, 0, drawing.MainNumberCount)
	for _, n := range t.MainNumbers {
		if d.HasNumber(n) {
			matching = append(matching, n)
		}
	}
	sort.Ints(matching)

	powerballMatch := t.Powerball == d.Powerball
	tier := lookupTier(len(matching), powerballMatch)

	return MatchOutcome{
		Ticket:          t,
		MainMatchCount:  len(matching),
		PowerballMatch:  powerballMatch,
		MatchingNumbers: matching,
		Tier:            tier,
		IsWinner:        tier != TierNone,
	}
}

func lookupTier(mainMatches int, powerballMatch bool) Tier {
	for _, rule := range tierTable {
		if rule.mainMatches != -1 && rule.mainMatches != mainMatches {
			continue
		}
		if rule.powerballMatch != powerballMatch {
			continue
		}
		return rule.tier
	}
	return TierNone
}
