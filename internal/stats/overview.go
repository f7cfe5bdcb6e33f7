package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"lolstats/internal/gamedata"
	"lolstats/internal/riot"
)

// ErrPlayerNotInMatch is returned when the searched name is not among a
// match's participants
var ErrPlayerNotInMatch = errors.New("player not in match")

// Overview is the collapsed match-list row, seen from the searched player
type Overview struct {
	MatchID     string           `json:"matchId"`
	Queue       string           `json:"queue"`
	Age         string           `json:"age"`
	Duration    string           `json:"duration"`
	Patch       string           `json:"patch"`
	Win         bool             `json:"win"`
	Outcome     string           `json:"outcome"`
	PlayerIndex int              `json:"playerIndex"`
	Player      riot.Participant `json:"-"`
	Stats       ParticipantStats `json:"stats"`
	Loadout     Loadout          `json:"loadout"`
	Blue        []string         `json:"blue"`
	Red         []string         `json:"red"`
}

// MatchOverview builds the list row for a match. It fails when the searched
// player is not among the participants.
func MatchOverview(m *riot.Match, playerName string, now time.Time) (Overview, error) {
	if m == nil {
		return Overview{}, fmt.Errorf("%w: no match document", ErrPlayerNotInMatch)
	}
	idx, ok := FindParticipant(m, playerName)
	if !ok {
		return Overview{}, fmt.Errorf("%w: %s in %s", ErrPlayerNotInMatch, playerName, m.Metadata.MatchID)
	}
	p := m.Info.Participants[idx]

	queue, ok := gamedata.QueueLabel(m.Info.QueueID)
	if !ok {
		queue = m.Info.GameMode
	}

	o := Overview{
		MatchID:     m.Metadata.MatchID,
		Queue:       queue,
		Age:         RelativeAge(m.Info.GameCreation, now),
		Duration:    FormatDuration(m.Info.GameDuration),
		Patch:       ShortPatch(m.Info.GameVersion),
		Win:         p.Win,
		Outcome:     Outcome(p.Win),
		PlayerIndex: idx,
		Player:      p,
		Stats:       DeriveParticipant(p, m.Info.GameDuration),
		Loadout:     BuildLoadout(p),
	}
	for _, member := range TeamMembers(m.Info.Participants, Blue) {
		o.Blue = append(o.Blue, member.DisplayName())
	}
	for _, member := range TeamMembers(m.Info.Participants, Red) {
		o.Red = append(o.Red, member.DisplayName())
	}
	return o, nil
}

// Outcome is the result word shown on a row
func Outcome(win bool) string {
	if win {
		return "Victory"
	}
	return "Defeat"
}

// FormatDuration renders seconds as "Xm Ys"
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// ShortPatch keeps the major.minor part of a game version: "12.13.453.3037"
// becomes "12.13"
func ShortPatch(version string) string {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version
	}
	return parts[0] + "." + parts[1]
}

// RelativeAge describes how long before now a game was created
func RelativeAge(createdMs int64, now time.Time) string {
	if createdMs <= 0 {
		return ""
	}
	return humanize.RelTime(time.UnixMilli(createdMs), now, "ago", "from now")
}

// FormatCount renders a number with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatGold renders gold in thousands with one decimal, e.g. "12.3K"
func FormatGold(gold int) string {
	return fmt.Sprintf("%.1fK", float64(gold)/1000)
}
