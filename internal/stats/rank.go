package stats

import (
	"fmt"
	"slices"
	"strings"

	"lolstats/internal/gamedata"
	"lolstats/internal/riot"
)

// RankCard is one ranked queue's summary in the profile header
type RankCard struct {
	Queue    string   `json:"queue"`
	Tier     string   `json:"tier"`
	Division string   `json:"division,omitempty"`
	LP       int      `json:"lp"`
	Wins     int      `json:"wins"`
	Losses   int      `json:"losses"`
	WinRate  float64  `json:"winRate"`
	Label    string   `json:"label"`
	Series   []string `json:"series,omitempty"`
}

// WinRate returns wins as a percentage of games, 0 when no games were played
func WinRate(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0
	}
	return 100 * float64(wins) / float64(wins+losses)
}

// SeriesSlots renders promotion progress as one slot per game: "W", "L" or
// "" for games not yet played
func SeriesSlots(progress string) []string {
	slots := make([]string, 0, len(progress))
	for _, c := range progress {
		switch c {
		case 'W':
			slots = append(slots, "W")
		case 'L':
			slots = append(slots, "L")
		default:
			slots = append(slots, "")
		}
	}
	return slots
}

// BuildRankCard converts a league entry into its display card
func BuildRankCard(e riot.LeagueEntry) RankCard {
	card := RankCard{
		Queue:   gamedata.RankedQueueLabel(e.QueueType),
		Tier:    gamedata.TierLabel(e.Tier),
		LP:      e.LeaguePoints,
		Wins:    e.Wins,
		Losses:  e.Losses,
		WinRate: WinRate(e.Wins, e.Losses),
	}
	if !gamedata.IsApexTier(e.Tier) {
		card.Division = gamedata.DivisionNumber(e.Rank)
	}

	label := []string{card.Tier}
	if card.Division != "" {
		label = append(label, card.Division)
	}
	card.Label = strings.Join(label, " ") + fmt.Sprintf(" %d LP", card.LP)

	if e.MiniSeries != nil {
		card.Series = SeriesSlots(e.MiniSeries.Progress)
	}
	return card
}

// BuildRankCards converts entries and orders them solo queue first, then
// by rank, highest first
func BuildRankCards(entries []riot.LeagueEntry) []RankCard {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b riot.LeagueEntry) int {
		aSolo, bSolo := a.QueueType == "RANKED_SOLO_5x5", b.QueueType == "RANKED_SOLO_5x5"
		if aSolo != bSolo {
			if aSolo {
				return -1
			}
			return 1
		}
		return -gamedata.CompareRank(a.Tier, a.Rank, a.LeaguePoints, b.Tier, b.Rank, b.LeaguePoints)
	})

	cards := make([]RankCard, 0, len(sorted))
	for _, e := range sorted {
		cards = append(cards, BuildRankCard(e))
	}
	return cards
}
