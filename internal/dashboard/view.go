package dashboard

import (
	"errors"
	"fmt"

	"lolstats/internal/gamedata"
	"lolstats/internal/riot"
	"lolstats/internal/stats"
)

// ErrNoGraph is returned by GraphLines when no expanded match has a timeline
var ErrNoGraph = errors.New("no timeline for the expanded match")

// ProfileHeader is the top of the page
type ProfileHeader struct {
	Name          string           `json:"name"`
	Level         int              `json:"level"`
	IconURL       string           `json:"iconUrl"`
	BackgroundURL string           `json:"backgroundUrl,omitempty"`
	Ranks         []stats.RankCard `json:"ranks"`
}

// MatchRow is one entry of the match list
type MatchRow struct {
	Index    int             `json:"index"`
	MatchID  string          `json:"matchId"`
	Overview *stats.Overview `json:"overview,omitempty"`
	Error    string          `json:"error,omitempty"`
	Expanded bool            `json:"expanded"`
}

// ParticipantRow is a scoreboard line on the overview and analysis tabs
type ParticipantRow struct {
	Index     int                    `json:"index"`
	Name      string                 `json:"name"`
	Champion  string                 `json:"champion"`
	Level     int                    `json:"level"`
	Kills     int                    `json:"kills"`
	Deaths    int                    `json:"deaths"`
	Assists   int                    `json:"assists"`
	Stats     stats.ParticipantStats `json:"stats"`
	Loadout   stats.Loadout          `json:"loadout"`
	Damage    DamageBreakdown        `json:"damage"`
	Vision    int                    `json:"vision"`
	Searched  bool                   `json:"searched"`
	GraphLine bool                   `json:"graphLine"`
}

// DamageBreakdown backs the analysis tab
type DamageBreakdown struct {
	ToChampions   int     `json:"toChampions"`
	Physical      int     `json:"physical"`
	Magic         int     `json:"magic"`
	True          int     `json:"true"`
	Taken         int     `json:"taken"`
	SelfMitigated int     `json:"selfMitigated"`
	HealShield    float64 `json:"healShield"`
	SkillshotsHit int     `json:"skillshotsHit"`
	Dodged        int     `json:"dodged"`
	TurretsLost   int     `json:"turretsLost"`
}

// BuildView backs the build tab
type BuildView struct {
	Participant int                 `json:"participant"`
	Runes       stats.RunePage      `json:"runes"`
	Skills      []stats.SkillLevel  `json:"skills"`
	Items       [][]stats.ItemEvent `json:"items"`
}

// GraphLine is one participant's series on the graph tab
type GraphLine struct {
	Participant int           `json:"participant"`
	Name        string        `json:"name"`
	Color       string        `json:"color"`
	Points      []stats.Point `json:"points"`
}

// MatchDetail is the expanded match panel for the active tab
type MatchDetail struct {
	Tab          Tab                    `json:"tab"`
	Sides        []stats.TeamSummary    `json:"sides,omitempty"`
	Teams        []stats.TeamComparison `json:"teams,omitempty"`
	Participants []ParticipantRow       `json:"participants,omitempty"`
	Build        *BuildView             `json:"build,omitempty"`
	Graph        []GraphLine            `json:"graph,omitempty"`
	Metric       stats.Metric           `json:"metric"`
}

// View is everything the page renders
type View struct {
	Session    string                `json:"session"`
	Generation uint64                `json:"generation"`
	Status     Status                `json:"status"`
	Error      string                `json:"error,omitempty"`
	Profile    *ProfileHeader        `json:"profile,omitempty"`
	Champions  []stats.ChampionCount `json:"champions"`
	Matches    []MatchRow            `json:"matches"`
	Selection  Selection             `json:"selection"`
	Detail     *MatchDetail          `json:"detail,omitempty"`
}

var overviewFields = []stats.TeamField{
	stats.FieldKills, stats.FieldGold, stats.FieldDamageToChampions,
	stats.FieldVisionScore, stats.FieldBaronKills, stats.FieldDragonKills,
}

// View recomputes the page from session state. Nothing is cached between
// calls.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Session:    s.id.String(),
		Generation: s.generation,
		Status:     s.status,
		Champions:  s.counter.Entries(),
		Selection:  s.selection,
		Matches:    make([]MatchRow, 0, len(s.entries)),
	}
	if s.err != nil {
		v.Error = s.err.Error()
	}

	if s.profile != nil {
		v.Profile = s.profileHeaderLocked()
	}

	now := s.cfg.Now()
	for i, e := range s.entries {
		row := MatchRow{Index: i, MatchID: e.MatchID, Expanded: s.selection.Expanded == i}
		switch {
		case e.Match == nil:
			row.Error = placeholderText(e.Err)
		default:
			o, err := stats.MatchOverview(e.Match, s.name, now)
			if err != nil {
				row.Error = err.Error()
			} else {
				row.Overview = &o
			}
		}
		v.Matches = append(v.Matches, row)
	}

	if e := s.expandedLocked(); e != nil && e.Match != nil {
		v.Detail = s.detailLocked(e)
	}
	return v
}

func placeholderText(err *riot.UpstreamError) string {
	if err == nil {
		return "match unavailable"
	}
	return err.Error()
}

func (s *Session) profileHeaderLocked() *ProfileHeader {
	h := &ProfileHeader{
		Name:    s.profile.Name,
		Level:   s.profile.SummonerLevel,
		IconURL: gamedata.ProfileIconURL(s.profile.ProfileIconID),
		Ranks:   stats.BuildRankCards(s.rank),
	}
	if champ, err := stats.DominantChampion(s.counter); err == nil {
		h.BackgroundURL = gamedata.ChampionSplashURL(champ)
	}
	return h
}

func (s *Session) detailLocked(e *Entry) *MatchDetail {
	sel := s.selection
	d := &MatchDetail{Tab: sel.Tab, Metric: sel.Metric}
	participants := e.Match.Info.Participants

	switch sel.Tab {
	case TabOverview, TabAnalysis:
		if sel.Tab == TabOverview {
			d.Sides = stats.SummarizeTeams(e.Match)
		}
		d.Teams = stats.CompareTeams(participants, overviewFields...)
		d.Participants = s.participantRowsLocked(e.Match)
	case TabBuild:
		idx := sel.BuildParticipant
		if idx >= 0 && idx < len(participants) {
			d.Build = &BuildView{
				Participant: idx,
				Runes:       stats.BuildRunePage(participants[idx].Perks),
				Skills:      stats.ReconstructSkillOrder(e.Timeline, idx),
				Items:       stats.ItemsByMinute(stats.ReconstructItemTimeline(e.Timeline, idx)),
			}
		}
	case TabGraph:
		d.Participants = s.participantRowsLocked(e.Match)
		d.Graph, _ = graphLines(e, sel)
	}
	return d
}

func (s *Session) participantRowsLocked(m *riot.Match) []ParticipantRow {
	rows := make([]ParticipantRow, 0, len(m.Info.Participants))
	for i, p := range m.Info.Participants {
		rows = append(rows, ParticipantRow{
			Index:    i,
			Name:     p.DisplayName(),
			Champion: p.ChampionName,
			Level:    p.ChampLevel,
			Kills:    p.Kills,
			Deaths:   p.Deaths,
			Assists:  p.Assists,
			Stats:    stats.DeriveParticipant(p, m.Info.GameDuration),
			Loadout:  stats.BuildLoadout(p),
			Damage: DamageBreakdown{
				ToChampions:   p.TotalDamageDealtToChampions,
				Physical:      p.PhysicalDamageDealtToChampions,
				Magic:         p.MagicDamageDealtToChampions,
				True:          p.TrueDamageDealtToChampions,
				Taken:         p.TotalDamageTaken,
				SelfMitigated: p.DamageSelfMitigated,
				HealShield:    p.Challenges.EffectiveHealAndShielding,
				SkillshotsHit: p.Challenges.SkillshotsHit,
				Dodged:        p.Challenges.SkillshotsDodged,
				TurretsLost:   p.TurretsLost,
			},
			Vision:    p.VisionScore,
			Searched:  riot.SameName(p.DisplayName(), s.name),
			GraphLine: s.selection.Graph.Has(i),
		})
	}
	return rows
}

// GraphLines returns one series per selected participant for the active
// metric on the expanded match
func (s *Session) GraphLines() ([]GraphLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.expandedLocked()
	if e == nil {
		return nil, fmt.Errorf("%w: no match expanded", ErrNoGraph)
	}
	return graphLines(e, s.selection)
}

func graphLines(e *Entry, sel Selection) ([]GraphLine, error) {
	if e.Timeline == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoGraph, e.MatchID)
	}
	mode := ""
	if e.Match != nil {
		mode = e.Match.Info.GameMode
	}

	lines := make([]GraphLine, 0, sel.Graph.Len())
	for _, idx := range sel.Graph.Indexes() {
		line := GraphLine{
			Participant: idx,
			Color:       gamedata.ParticipantColors[idx],
			Points:      stats.SeriesForMetric(e.Timeline.Info.Frames, idx, sel.Metric, mode),
		}
		if e.Match != nil && idx < len(e.Match.Info.Participants) {
			line.Name = e.Match.Info.Participants[idx].DisplayName()
		}
		lines = append(lines, line)
	}
	return lines, nil
}
