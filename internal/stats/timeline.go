package stats

import (
	"fmt"
	"strings"

	"lolstats/internal/gamedata"
	"lolstats/internal/riot"
)

const msPerMinute = 60_000

func minuteOf(timestampMs int64) int {
	if timestampMs < 0 {
		return 0
	}
	return int(timestampMs / msPerMinute)
}

var skillKeys = map[int]string{1: "Q", 2: "W", 3: "E", 4: "R"}

// SkillLevel is one ability rank-up
type SkillLevel struct {
	Level      int    `json:"level"` // 1-based ordinal of this level-up
	Slot       int    `json:"slot"`
	Key        string `json:"key"`
	ChampLevel int    `json:"champLevel"` // champion level in the containing frame, 0 if absent
	Minute     int    `json:"minute"`
}

// ReconstructSkillOrder lists a participant's normal skill level-ups in event
// order. participantIndex is 0-based; timeline participant ids are index+1.
func ReconstructSkillOrder(tl *riot.Timeline, participantIndex int) []SkillLevel {
	if tl == nil {
		return nil
	}
	pid := participantIndex + 1
	var order []SkillLevel
	for fi := range tl.Info.Frames {
		frame := &tl.Info.Frames[fi]
		for _, ev := range frame.Events {
			if ev.Type != riot.EventSkillLevelUp || ev.LevelUpType != riot.LevelUpNormal || ev.ParticipantID != pid {
				continue
			}
			champLevel := 0
			if pf, ok := frame.Participant(pid); ok {
				champLevel = pf.Level
			}
			order = append(order, SkillLevel{
				Level:      len(order) + 1,
				Slot:       ev.SkillSlot,
				Key:        skillKeys[ev.SkillSlot],
				ChampLevel: champLevel,
				Minute:     minuteOf(ev.Timestamp),
			})
		}
	}
	return order
}

// ItemEvent is one purchase, sale or undo
type ItemEvent struct {
	Type   string `json:"type"`
	ItemID int    `json:"itemId"`
	Minute int    `json:"minute"`
	Core   bool   `json:"core"`
}

// ReconstructItemTimeline lists a participant's item events in order. For an
// undo the item shown is beforeId, or afterId when beforeId is 0.
func ReconstructItemTimeline(tl *riot.Timeline, participantIndex int) []ItemEvent {
	if tl == nil {
		return nil
	}
	pid := participantIndex + 1
	var events []ItemEvent
	for _, frame := range tl.Info.Frames {
		for _, ev := range frame.Events {
			if ev.ParticipantID != pid {
				continue
			}
			var item int
			switch ev.Type {
			case riot.EventItemPurchased, riot.EventItemSold:
				item = ev.ItemID
			case riot.EventItemUndo:
				item = ev.BeforeID
				if item == 0 {
					item = ev.AfterID
				}
			default:
				continue
			}
			events = append(events, ItemEvent{
				Type:   ev.Type,
				ItemID: item,
				Minute: minuteOf(ev.Timestamp),
				Core:   ev.Type == riot.EventItemPurchased && gamedata.IsCoreItem(item),
			})
		}
	}
	return events
}

// ItemsByMinute groups an item timeline into per-minute buckets, keeping
// event order inside each bucket
func ItemsByMinute(events []ItemEvent) [][]ItemEvent {
	var groups [][]ItemEvent
	last := -1
	for _, ev := range events {
		if ev.Minute != last || len(groups) == 0 {
			groups = append(groups, nil)
			last = ev.Minute
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], ev)
	}
	return groups
}

// Metric selects the per-frame value plotted on the graph tab
type Metric int

const (
	MetricGold Metric = iota
	MetricXP
	MetricCS
	MetricDamage
)

var metricNames = [...]string{"gold", "xp", "cs", "damage"}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return "unknown"
	}
	return metricNames[m]
}

// MarshalText serialises the metric by name
func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Label is the chart axis title for the metric
func (m Metric) Label() string {
	switch m {
	case MetricGold:
		return "Gold"
	case MetricXP:
		return "XP"
	case MetricCS:
		return "CS"
	case MetricDamage:
		return "Damage"
	}
	return "Unknown"
}

// ParseMetric accepts the metric names case-insensitively
func ParseMetric(s string) (Metric, error) {
	for i, name := range metricNames {
		if strings.EqualFold(s, name) {
			return Metric(i), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q", s)
}

// Point is one sample of a series
type Point struct {
	Minute int `json:"minute"`
	Value  int `json:"value"`
}

// SeriesForMetric returns one point per frame for a participant. In ARAM
// the CS series counts lane minions only. A frame missing the participant
// contributes a zero value.
func SeriesForMetric(frames []riot.Frame, participantIndex int, metric Metric, gameMode string) []Point {
	pid := participantIndex + 1
	aram := gameMode == gamedata.GameModeARAM
	points := make([]Point, 0, len(frames))
	for i := range frames {
		pf, _ := frames[i].Participant(pid)
		var v int
		switch metric {
		case MetricGold:
			v = pf.TotalGold
		case MetricXP:
			v = pf.XP
		case MetricCS:
			v = pf.MinionsKilled
			if !aram {
				v += pf.JungleMinionsKilled
			}
		case MetricDamage:
			v = pf.DamageStats.TotalDamageDoneToChampions
		}
		points = append(points, Point{Minute: minuteOf(frames[i].Timestamp), Value: v})
	}
	return points
}
