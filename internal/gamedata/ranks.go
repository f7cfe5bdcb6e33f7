package gamedata

import "strings"

// TierOrder ranks tiers for comparison (higher index = higher rank)
var TierOrder = map[string]int{
	"IRON":        0,
	"BRONZE":      1,
	"SILVER":      2,
	"GOLD":        3,
	"PLATINUM":    4,
	"EMERALD":     5,
	"DIAMOND":     6,
	"MASTER":      7,
	"GRANDMASTER": 8,
	"CHALLENGER":  9,
}

// DivisionOrder ranks divisions within a tier (higher index = higher rank)
var DivisionOrder = map[string]int{
	"IV":  0,
	"III": 1,
	"II":  2,
	"I":   3,
}

var divisionNumbers = map[string]string{
	"I":   "1",
	"II":  "2",
	"III": "3",
	"IV":  "4",
}

// IsApexTier reports whether a tier has no divisions
func IsApexTier(tier string) bool {
	return TierOrder[tier] >= TierOrder["MASTER"]
}

// DivisionNumber converts a roman division to its digit. Unknown divisions
// are returned unchanged.
func DivisionNumber(division string) string {
	if n, ok := divisionNumbers[division]; ok {
		return n
	}
	return division
}

// TierLabel title-cases an upstream tier, e.g. GRANDMASTER -> Grandmaster
func TierLabel(tier string) string {
	if tier == "" {
		return ""
	}
	lower := strings.ToLower(tier)
	return strings.ToUpper(lower[:1]) + lower[1:]
}

// CompareRank orders two (tier, division, lp) triples. It returns a negative
// number when a ranks below b, zero when equal and positive otherwise.
// Unknown tiers sort below Iron.
func CompareRank(tierA, divA string, lpA int, tierB, divB string, lpB int) int {
	ta, ok := TierOrder[tierA]
	if !ok {
		ta = -1
	}
	tb, ok := TierOrder[tierB]
	if !ok {
		tb = -1
	}
	if ta != tb {
		return ta - tb
	}
	if da, db := DivisionOrder[divA], DivisionOrder[divB]; da != db {
		return da - db
	}
	return lpA - lpB
}
