package riottest

import (
	"fmt"
	"strconv"

	"lolstats/internal/riot"
)

// Every fixture game starts at the same instant
var baseCreation int64 = 1656000000000

// NewMatch builds a ten-player ranked solo match. The player is participant
// 1 on blue side playing champion; blue wins when win is true.
func NewMatch(matchID, player string, champion int, win bool) *riot.Match {
	m := &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: matchID},
		Info: riot.MatchInfo{
			GameCreation: baseCreation,
			GameDuration: 1830,
			GameMode:     "CLASSIC",
			GameVersion:  "12.13.453.3037",
			QueueID:      420,
			MapID:        11,
		},
	}
	for i := range 10 {
		team := 100
		teamWin := win
		if i >= 5 {
			team = 200
			teamWin = !win
		}
		p := riot.Participant{
			ParticipantID:               i + 1,
			PUUID:                       fmt.Sprintf("puuid-%d", i+1),
			SummonerName:                fmt.Sprintf("Player %d", i+1),
			ChampionID:                  champion + i,
			ChampionName:                "Champion" + strconv.Itoa(champion+i),
			ChampLevel:                  14,
			TeamID:                      team,
			Win:                         teamWin,
			Kills:                       3,
			Deaths:                      2,
			Assists:                     5,
			GoldEarned:                  10000 + i*100,
			TotalMinionsKilled:          150,
			NeutralMinionsKilled:        10,
			TotalDamageDealtToChampions: 12000,
			VisionScore:                 20,
			Item0:                       3031,
			Item1:                       1055,
			Item6:                       3340,
			Summoner1ID:                 4,
			Summoner2ID:                 14,
			Perks: riot.Perks{
				StatPerks: riot.StatPerks{Offense: 5008, Flex: 5008, Defense: 5002},
				Styles: []riot.PerkStyle{
					{Description: "primaryStyle", Style: 8000, Selections: []riot.PerkSelection{
						{Perk: 8005}, {Perk: 9111}, {Perk: 9104}, {Perk: 8014},
					}},
					{Description: "subStyle", Style: 8100, Selections: []riot.PerkSelection{
						{Perk: 8139}, {Perk: 8135},
					}},
				},
			},
		}
		if i == 0 {
			p.SummonerName = player
		}
		m.Metadata.Participants = append(m.Metadata.Participants, p.PUUID)
		m.Info.Participants = append(m.Info.Participants, p)
	}
	towers := map[bool]int{true: 8, false: 3}
	m.Info.Teams = []riot.Team{
		{TeamID: 100, Win: win, Bans: []riot.Ban{{ChampionID: 55, PickTurn: 1}, {ChampionID: -1, PickTurn: 2}},
			Objectives: riot.Objectives{Tower: riot.Objective{Kills: towers[win]}, Dragon: riot.Objective{Kills: 2}}},
		{TeamID: 200, Win: !win, Bans: []riot.Ban{{ChampionID: 157, PickTurn: 6}},
			Objectives: riot.Objectives{Tower: riot.Objective{Kills: towers[!win]}}},
	}
	return m
}

// NewTimeline builds a timeline with frames one-minute frames. Participant n
// has n*100 gold per minute elapsed, and participant 1 levels Q at minute 1.
func NewTimeline(matchID string, frames int) *riot.Timeline {
	tl := &riot.Timeline{
		Metadata: riot.TimelineMetadata{MatchID: matchID},
		Info:     riot.TimelineInfo{FrameInterval: 60000},
	}
	for f := range frames {
		frame := riot.Frame{
			Timestamp:         int64(f) * 60000,
			ParticipantFrames: make(map[string]riot.ParticipantFrame, 10),
		}
		for id := 1; id <= 10; id++ {
			frame.ParticipantFrames[strconv.Itoa(id)] = riot.ParticipantFrame{
				ParticipantID: id,
				TotalGold:     500 + f*id*100,
				XP:            f * 300,
				Level:         1 + f/2,
				MinionsKilled: f * 7,
			}
		}
		if f == 1 {
			frame.Events = []riot.Event{
				{Type: riot.EventItemPurchased, Timestamp: 65000, ParticipantID: 1, ItemID: 1055},
				{Type: riot.EventSkillLevelUp, Timestamp: 70000, ParticipantID: 1, SkillSlot: 1, LevelUpType: riot.LevelUpNormal},
			}
		}
		tl.Info.Frames = append(tl.Info.Frames, frame)
	}
	return tl
}

// NewFixture builds a player with n matches, each with a timeline of
// frames frames. Match ids are "KR_<n>" newest first.
func NewFixture(player string, n, frames int) *Fixture {
	fx := &Fixture{
		Summoner: riot.Summoner{
			ID:            "sid-" + player,
			PUUID:         "puuid-" + player,
			Name:          player,
			ProfileIconID: 6,
			SummonerLevel: 612,
		},
		Rank: []riot.LeagueEntry{
			{QueueType: "RANKED_FLEX_SR", Tier: "DIAMOND", Rank: "II", LeaguePoints: 30, Wins: 20, Losses: 10},
			{QueueType: "RANKED_SOLO_5x5", Tier: "CHALLENGER", Rank: "I", LeaguePoints: 1203, Wins: 300, Losses: 250},
		},
		Matches:   make(map[string]*riot.Match, n),
		Timelines: make(map[string]*riot.Timeline, n),
	}
	for i := range n {
		id := fmt.Sprintf("KR_%d", 6000000000-i)
		// every third game is on a second champion
		champ := 7
		if i%3 == 2 {
			champ = 245
		}
		fx.MatchIDs = append(fx.MatchIDs, id)
		fx.Matches[id] = NewMatch(id, player, champ, i%2 == 0)
		fx.Timelines[id] = NewTimeline(id, frames)
	}
	return fx
}
