// Package stats derives presentation data from raw match and timeline
// documents. Every function here is pure: same input, same output, no I/O.
package stats

import (
	"errors"

	"lolstats/internal/riot"
)

// ErrEmptyInput is returned when an aggregate is asked of nothing
var ErrEmptyInput = errors.New("empty input")

// ChampionCount is one counter entry
type ChampionCount struct {
	ChampionID int `json:"championId"`
	Games      int `json:"games"`
}

// ChampionCounter counts the searched player's champions across fetched
// matches, remembering the order in which each champion was first seen.
// The zero value is an empty counter. Counters are values: Add returns a new
// counter and never modifies the receiver.
type ChampionCounter struct {
	order  []int
	counts map[int]int
}

// Add returns a counter with championID counted once more
func (c ChampionCounter) Add(championID int) ChampionCounter {
	next := c.clone()
	if _, seen := next.counts[championID]; !seen {
		next.order = append(next.order, championID)
	}
	next.counts[championID]++
	return next
}

func (c ChampionCounter) clone() ChampionCounter {
	next := ChampionCounter{
		order:  make([]int, len(c.order), len(c.order)+1),
		counts: make(map[int]int, len(c.counts)+1),
	}
	copy(next.order, c.order)
	for id, n := range c.counts {
		next.counts[id] = n
	}
	return next
}

// Count returns how many games were played on championID
func (c ChampionCounter) Count(championID int) int {
	return c.counts[championID]
}

// Len returns the number of distinct champions
func (c ChampionCounter) Len() int { return len(c.order) }

// Entries lists counts in first-seen order
func (c ChampionCounter) Entries() []ChampionCount {
	out := make([]ChampionCount, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, ChampionCount{ChampionID: id, Games: c.counts[id]})
	}
	return out
}

// CountChampions is the counter reducer: it folds a page of matches into
// prev, counting the participant whose name matches playerName. Matches
// without such a participant are skipped.
func CountChampions(prev ChampionCounter, matches []*riot.Match, playerName string) ChampionCounter {
	next := prev.clone()
	for _, m := range matches {
		if m == nil {
			continue
		}
		idx, ok := FindParticipant(m, playerName)
		if !ok {
			continue
		}
		id := m.Info.Participants[idx].ChampionID
		if _, seen := next.counts[id]; !seen {
			next.order = append(next.order, id)
		}
		next.counts[id]++
	}
	return next
}

// DominantChampion returns the most played champion. Ties go to the champion
// seen first.
func DominantChampion(c ChampionCounter) (int, error) {
	if len(c.order) == 0 {
		return 0, ErrEmptyInput
	}
	best, bestCount := c.order[0], c.counts[c.order[0]]
	for _, id := range c.order[1:] {
		if n := c.counts[id]; n > bestCount {
			best, bestCount = id, n
		}
	}
	return best, nil
}
