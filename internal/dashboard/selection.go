package dashboard

import (
	"fmt"
	"math/bits"

	"lolstats/internal/stats"
)

// Tab is the detail view shown for an expanded match
type Tab int

const (
	TabOverview Tab = iota
	TabAnalysis
	TabBuild
	TabGraph
)

var tabNames = [...]string{"overview", "analysis", "build", "graph"}

func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return "unknown"
	}
	return tabNames[t]
}

// MarshalText serialises the tab by name
func (t Tab) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// ParseTab accepts the tab names
func ParseTab(s string) (Tab, error) {
	for i, name := range tabNames {
		if s == name {
			return Tab(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tab %q", s)
}

// NoSelection marks an unset match or participant index
const NoSelection = -1

const participantCount = 10

// ParticipantSet is a set of participant indexes 0-9
type ParticipantSet uint16

// Toggle flips membership of i. Out-of-range indexes are ignored.
func (s ParticipantSet) Toggle(i int) ParticipantSet {
	if i < 0 || i >= participantCount {
		return s
	}
	return s ^ (1 << i)
}

// Has reports whether i is in the set
func (s ParticipantSet) Has(i int) bool {
	return i >= 0 && i < participantCount && s&(1<<i) != 0
}

// Len returns the number of members
func (s ParticipantSet) Len() int { return bits.OnesCount16(uint16(s)) }

// Indexes lists members in ascending order
func (s ParticipantSet) Indexes() []int {
	out := make([]int, 0, s.Len())
	for i := 0; i < participantCount; i++ {
		if s.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// Selection is the dashboard's toggle state. Every transition returns a new
// value; the receiver is never modified.
type Selection struct {
	Expanded         int            `json:"expanded"`
	Tab              Tab            `json:"tab"`
	BuildParticipant int            `json:"buildParticipant"`
	Graph            ParticipantSet `json:"graph"`
	Metric           stats.Metric   `json:"metric"`
}

// NewSelection returns the initial state: nothing expanded, overview tab,
// gold metric
func NewSelection() Selection {
	return Selection{
		Expanded:         NoSelection,
		Tab:              TabOverview,
		BuildParticipant: NoSelection,
		Metric:           stats.MetricGold,
	}
}

// ToggleMatch expands match i, collapsing any other. Toggling the expanded
// match collapses it. Either way the tab returns to overview and the
// per-match choices are cleared.
func (s Selection) ToggleMatch(i int) Selection {
	next := s
	if s.Expanded == i {
		next.Expanded = NoSelection
	} else {
		next.Expanded = i
	}
	next.Tab = TabOverview
	next.BuildParticipant = NoSelection
	next.Graph = 0
	return next
}

// SetTab switches the detail tab and clears the graph set. Entering the
// build tab with no participant chosen selects playerIndex, the searched
// player's own row.
func (s Selection) SetTab(t Tab, playerIndex int) Selection {
	next := s
	next.Tab = t
	next.Graph = 0
	if t == TabBuild && next.BuildParticipant == NoSelection {
		next.BuildParticipant = clampParticipant(playerIndex)
	}
	return next
}

// SelectBuildParticipant chooses whose build is shown
func (s Selection) SelectBuildParticipant(i int) Selection {
	if i < 0 || i >= participantCount {
		return s
	}
	next := s
	next.BuildParticipant = i
	return next
}

// ToggleGraphParticipant adds or removes a participant from the graph
func (s Selection) ToggleGraphParticipant(i int) Selection {
	next := s
	next.Graph = s.Graph.Toggle(i)
	return next
}

// SetMetric switches the graph metric, keeping the participant set
func (s Selection) SetMetric(m stats.Metric) Selection {
	next := s
	next.Metric = m
	return next
}

func clampParticipant(i int) int {
	if i < 0 || i >= participantCount {
		return 0
	}
	return i
}
