package stats

import (
	"github.com/samber/lo"

	"lolstats/internal/gamedata"
	"lolstats/internal/riot"
)

// ParticipantStats holds the derived numbers shown in a scoreboard row
type ParticipantStats struct {
	CS                int     `json:"cs"`
	CSPerMinute       float64 `json:"csPerMinute"`
	GoldPerMinute     float64 `json:"goldPerMinute"`
	KDA               float64 `json:"kda"`
	Perfect           bool    `json:"perfect"` // no deaths; KDA is kills+assists
	KillParticipation float64 `json:"killParticipation"`
	WardsPlaced       int     `json:"wardsPlaced"`
	DamageShare       float64 `json:"damageShare"`
	MultiKill         string  `json:"multiKill,omitempty"`
}

// DeriveParticipant computes per-minute rates and ratios. A zero duration
// yields zero rates. Kill participation and damage share come from the
// upstream challenge block as fractions and are returned as percentages.
func DeriveParticipant(p riot.Participant, durationSeconds int64) ParticipantStats {
	s := ParticipantStats{
		CS:                p.TotalMinionsKilled + p.NeutralMinionsKilled,
		WardsPlaced:       p.WardsPlaced + p.DetectorWardsPlaced,
		KillParticipation: 100 * p.Challenges.KillParticipation,
		DamageShare:       100 * p.Challenges.TeamDamagePercentage,
		MultiKill:         gamedata.MultiKillLabel(p.LargestMultiKill),
	}

	if durationSeconds > 0 {
		minutes := float64(durationSeconds) / 60
		s.CSPerMinute = float64(s.CS) / minutes
		s.GoldPerMinute = float64(p.GoldEarned) / minutes
	}

	s.KDA, s.Perfect = KDA(p.Kills, p.Deaths, p.Assists)
	return s
}

// KDA returns (kills+assists)/deaths. With no deaths it returns kills+assists
// and perfect=true.
func KDA(kills, deaths, assists int) (ratio float64, perfect bool) {
	if deaths == 0 {
		return float64(kills + assists), true
	}
	return float64(kills+assists) / float64(deaths), false
}

// FindParticipant locates the participant whose display name matches name
// case- and space-insensitively
func FindParticipant(m *riot.Match, name string) (int, bool) {
	if m == nil {
		return -1, false
	}
	_, idx, ok := lo.FindIndexOf(m.Info.Participants, func(p riot.Participant) bool {
		return riot.SameName(p.DisplayName(), name)
	})
	return idx, ok
}

// Loadout is the icon set shown next to a participant
type Loadout struct {
	ChampionPortrait string    `json:"championPortrait"`
	Items            [7]string `json:"items"` // item6 is the trinket
	Spells           []string  `json:"spells"`
	Keystone         string    `json:"keystone,omitempty"`
	SecondaryStyle   string    `json:"secondaryStyle,omitempty"`
}

// BuildLoadout resolves icon URLs for items, spells and the two headline
// runes. Unknown spells and perks are omitted.
func BuildLoadout(p riot.Participant) Loadout {
	l := Loadout{ChampionPortrait: gamedata.ChampionPortraitURL(p.ChampionName)}
	for i, item := range p.Items() {
		l.Items[i] = gamedata.ItemIconURL(gamedata.ItemSlotID(item))
	}
	for _, spell := range []int{p.Summoner1ID, p.Summoner2ID} {
		if url, ok := gamedata.SpellIconURL(spell); ok {
			l.Spells = append(l.Spells, url)
		}
	}
	if len(p.Perks.Styles) > 0 && len(p.Perks.Styles[0].Selections) > 0 {
		if url, err := gamedata.RuneIconURL(p.Perks.Styles[0].Selections[0].Perk); err == nil {
			l.Keystone = url
		}
	}
	if len(p.Perks.Styles) > 1 {
		if url, err := gamedata.RuneIconURL(p.Perks.Styles[1].Style); err == nil {
			l.SecondaryStyle = url
		}
	}
	return l
}
