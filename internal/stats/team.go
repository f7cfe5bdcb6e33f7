package stats

import (
	"github.com/samber/lo"

	"lolstats/internal/gamedata"
	"lolstats/internal/riot"
)

// Side selects one half of the participant list
type Side int

const (
	// Blue is participants 0-4 (team 100)
	Blue Side = iota
	// Red is participants 5-9 (team 200)
	Red
)

func (s Side) String() string {
	if s == Red {
		return "red"
	}
	return "blue"
}

// MarshalText serialises the side by name
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// TeamID returns the upstream team id for the side
func (s Side) TeamID() int {
	if s == Red {
		return 200
	}
	return 100
}

// TeamField names a per-participant number that can be summed per team
type TeamField int

const (
	FieldGold TeamField = iota
	FieldKills
	FieldDeaths
	FieldAssists
	FieldBaronKills
	FieldDragonKills
	FieldDamageToChampions
	FieldVisionScore
)

var teamFieldNames = [...]string{"gold", "kills", "deaths", "assists", "baronKills", "dragonKills", "damageToChampions", "visionScore"}

func (f TeamField) String() string {
	if f < 0 || int(f) >= len(teamFieldNames) {
		return "unknown"
	}
	return teamFieldNames[f]
}

// MarshalText lets TeamComparison serialise the field by name
func (f TeamField) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f TeamField) value(p riot.Participant) int {
	switch f {
	case FieldGold:
		return p.GoldEarned
	case FieldKills:
		return p.Kills
	case FieldDeaths:
		return p.Deaths
	case FieldAssists:
		return p.Assists
	case FieldBaronKills:
		return p.BaronKills
	case FieldDragonKills:
		return p.DragonKills
	case FieldDamageToChampions:
		return p.TotalDamageDealtToChampions
	case FieldVisionScore:
		return p.VisionScore
	}
	return 0
}

// TeamMembers returns the slice of participants belonging to side. Short
// lists are clamped rather than panicking.
func TeamMembers(participants []riot.Participant, side Side) []riot.Participant {
	start, end := 0, 5
	if side == Red {
		start, end = 5, 10
	}
	start = min(start, len(participants))
	end = min(end, len(participants))
	return participants[start:end]
}

// TeamAggregate sums field over one team
func TeamAggregate(participants []riot.Participant, side Side, field TeamField) int {
	return lo.SumBy(TeamMembers(participants, side), field.value)
}

// TeamShare returns each side's percentage of the combined total. A zero
// total yields 0 for both sides.
func TeamShare(blue, red int) (bluePct, redPct float64) {
	total := blue + red
	if total == 0 {
		return 0, 0
	}
	return 100 * float64(blue) / float64(total), 100 * float64(red) / float64(total)
}

// TeamComparison is one row of the objective/totals bar on the overview tab
type TeamComparison struct {
	Field   TeamField `json:"field"`
	Blue    int       `json:"blue"`
	Red     int       `json:"red"`
	BluePct float64   `json:"bluePct"`
	RedPct  float64   `json:"redPct"`
}

// CompareTeams builds the comparison rows for the given fields
func CompareTeams(participants []riot.Participant, fields ...TeamField) []TeamComparison {
	return lo.Map(fields, func(f TeamField, _ int) TeamComparison {
		blue := TeamAggregate(participants, Blue, f)
		red := TeamAggregate(participants, Red, f)
		bp, rp := TeamShare(blue, red)
		return TeamComparison{Field: f, Blue: blue, Red: red, BluePct: bp, RedPct: rp}
	})
}

// Ban is one banned champion in a team header
type Ban struct {
	ChampionID int    `json:"championId"`
	IconURL    string `json:"iconUrl"`
}

// TeamSummary is one side's header on the overview tab
type TeamSummary struct {
	Side       Side  `json:"side"`
	Win        bool  `json:"win"`
	Bans       []Ban `json:"bans"`
	Towers     int   `json:"towers"`
	Inhibitors int   `json:"inhibitors"`
	Heralds    int   `json:"heralds"`
	Barons     int   `json:"barons"`
	Dragons    int   `json:"dragons"`
}

// SummarizeTeams builds the blue and red headers from the match's team
// records. Empty ban slots (champion id -1) are skipped. When a team record
// has no tower kills the opponent's turretsLost total is used instead.
func SummarizeTeams(m *riot.Match) []TeamSummary {
	if m == nil {
		return nil
	}
	participants := m.Info.Participants
	out := make([]TeamSummary, 0, 2)
	for _, side := range []Side{Blue, Red} {
		sum := TeamSummary{Side: side, Bans: []Ban{}}
		if members := TeamMembers(participants, side); len(members) > 0 {
			sum.Win = members[0].Win
		}

		team, ok := lo.Find(m.Info.Teams, func(t riot.Team) bool { return t.TeamID == side.TeamID() })
		if ok {
			sum.Win = team.Win
			for _, b := range team.Bans {
				if b.ChampionID <= 0 {
					continue
				}
				sum.Bans = append(sum.Bans, Ban{ChampionID: b.ChampionID, IconURL: gamedata.ChampionIconURL(b.ChampionID)})
			}
			obj := team.Objectives
			sum.Towers = obj.Tower.Kills
			sum.Inhibitors = obj.Inhibitor.Kills
			sum.Heralds = obj.RiftHerald.Kills
			sum.Barons = obj.Baron.Kills
			sum.Dragons = obj.Dragon.Kills
		}
		if sum.Towers == 0 {
			opponent := Red
			if side == Red {
				opponent = Blue
			}
			sum.Towers = lo.SumBy(TeamMembers(participants, opponent), func(p riot.Participant) int { return p.TurretsLost })
		}
		out = append(out, sum)
	}
	return out
}
