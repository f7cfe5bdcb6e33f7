// Package dashboard holds the per-user view state: the current search, the
// accumulated match history, the toggle selection and the derived view built
// from them. It reaches the relay through a Backend.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"lolstats/internal/collector"
	"lolstats/internal/riot"
	"lolstats/internal/stats"
	"lolstats/internal/summoner"
)

var (
	// ErrFetchInFlight rejects a page request while another is running
	ErrFetchInFlight = errors.New("page fetch already in flight")
	// ErrStaleGeneration marks a result that arrived after a newer search
	ErrStaleGeneration = errors.New("result belongs to a previous search")
	// ErrNoSearch is returned by page operations before any search
	ErrNoSearch = errors.New("no active search")
)

// Backend is the relay surface the session needs
type Backend interface {
	SummonerInfo(ctx context.Context, name string, region riot.Region) (*riot.Summoner, error)
	SummonerRank(ctx context.Context, name string, region riot.Region) ([]riot.LeagueEntry, error)
	MatchPage(ctx context.Context, name string, region riot.Region, start int) (*collector.Page, error)
}

// Status summarises where the current search stands
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusNotFound
	StatusUpstreamError
)

var statusNames = [...]string{"idle", "loading", "ready", "not_found", "upstream_error"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// MarshalText serialises the status by name
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Entry is one match in the session list with its aligned timeline. Either
// side may be missing when its slot was an error placeholder.
type Entry struct {
	MatchID  string
	Match    *riot.Match
	Timeline *riot.Timeline
	Err      *riot.UpstreamError
}

// DefaultMaxEntries bounds the match list of one search
const DefaultMaxEntries = 500

// Config holds session settings
type Config struct {
	// MaxEntries caps the match list; the earliest loaded entries are
	// trimmed first. Negative means unbounded.
	MaxEntries int
	// ExpectedMatches sizes the filter of ids loaded during one search
	ExpectedMatches uint
	Logger          *slog.Logger
	Now             func() time.Time
}

// Session is one dashboard user's state. Methods are safe for concurrent use.
type Session struct {
	id      uuid.UUID
	backend Backend
	cfg     Config
	logger  *slog.Logger

	mu         sync.Mutex
	generation uint64
	name       string
	region     riot.Region
	status     Status
	err        error

	profile *riot.Summoner
	rank    []riot.LeagueEntry
	entries []Entry
	// index holds the ids of retained entries; seen also remembers the
	// trimmed ones
	index     map[string]int
	seen      *bloom.BloomFilter
	trimmed   int
	counter   stats.ChampionCounter
	nextStart int

	fetching      bool
	fetchingGen   uint64
	selection     Selection
	profileErr    error
	rankErr       error
	lastPageError error
}

// NewSession creates an idle session
func NewSession(backend Backend, cfg Config) *Session {
	if cfg.MaxEntries == 0 {
		cfg.MaxEntries = DefaultMaxEntries
	}
	if cfg.ExpectedMatches == 0 {
		cfg.ExpectedMatches = 1000
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		id:      uuid.New(),
		backend: backend,
		cfg:     cfg,
	}
	s.logger = logger.With("session", s.id.String())
	s.resetLocked()
	return s
}

// ID identifies the session in logs
func (s *Session) ID() uuid.UUID { return s.id }

// Generation returns the current search generation
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

func (s *Session) resetLocked() {
	s.profile = nil
	s.rank = nil
	s.entries = nil
	s.seen = bloom.NewWithEstimates(s.cfg.ExpectedMatches, 0.001)
	s.index = make(map[string]int)
	s.trimmed = 0
	s.counter = stats.ChampionCounter{}
	s.nextStart = 0
	s.fetching = false
	s.selection = NewSelection()
	s.err = nil
	s.profileErr = nil
	s.rankErr = nil
	s.lastPageError = nil
}

// Search starts a new search. All state from the previous search is cleared
// before any request is sent. Profile, rank and the first page are fetched
// concurrently; results from an older search that finish later are dropped.
func (s *Session) Search(ctx context.Context, name string, region riot.Region) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.name = name
	s.region = region
	s.resetLocked()
	s.status = StatusLoading
	s.fetching = true
	s.fetchingGen = gen
	s.mu.Unlock()

	s.logger.Info("search started", "player", name, "region", region, "generation", gen)

	var g errgroup.Group
	g.Go(func() error {
		profile, err := s.backend.SummonerInfo(ctx, name, region)
		return s.apply(gen, func() {
			s.profile, s.profileErr = profile, err
		})
	})
	g.Go(func() error {
		rank, err := s.backend.SummonerRank(ctx, name, region)
		return s.apply(gen, func() {
			s.rank, s.rankErr = rank, err
		})
	})
	g.Go(func() error {
		page, err := s.backend.MatchPage(ctx, name, region, 0)
		return s.apply(gen, func() {
			s.finishPageLocked(gen, page, err)
		})
	})
	if err := g.Wait(); err != nil {
		s.logger.Debug("search superseded", "generation", gen)
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrStaleGeneration
	}
	s.status, s.err = classify(s.profileErr, s.rankErr, s.lastPageError)
	if s.err != nil {
		s.logger.Warn("search failed", "player", name, "status", s.status, "error", s.err)
	}
	return s.err
}

// classify picks the search outcome. A missing player wins over other
// failures so the view can say so.
func classify(errs ...error) (Status, error) {
	var first error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if errors.Is(err, summoner.ErrNotFound) {
			return StatusNotFound, err
		}
		if first == nil {
			first = err
		}
	}
	if first != nil {
		return StatusUpstreamError, first
	}
	return StatusReady, nil
}

// apply runs fn under the lock if gen is still current
func (s *Session) apply(gen uint64, fn func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrStaleGeneration
	}
	fn()
	return nil
}

// ShowMore fetches the next page for the current search. The offset moves
// by the number of ids the relay returned, so ids it trims from the end of a
// page are requested again at the start of the next one. Only one page fetch
// runs at a time.
func (s *Session) ShowMore(ctx context.Context) error {
	s.mu.Lock()
	if s.status == StatusIdle || s.status == StatusNotFound || s.name == "" {
		s.mu.Unlock()
		return ErrNoSearch
	}
	if s.fetching {
		s.mu.Unlock()
		return ErrFetchInFlight
	}
	gen := s.generation
	name, region := s.name, s.region
	start := s.nextStart
	s.fetching = true
	s.fetchingGen = gen
	s.mu.Unlock()

	page, err := s.backend.MatchPage(ctx, name, region, start)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrStaleGeneration
	}
	s.finishPageLocked(gen, page, err)
	if err != nil {
		s.logger.Warn("page fetch failed", "start", start, "error", err)
		return fmt.Errorf("fetch page at %d: %w", start, err)
	}
	return nil
}

func (s *Session) finishPageLocked(gen uint64, page *collector.Page, err error) {
	if s.fetchingGen == gen {
		s.fetching = false
	}
	s.lastPageError = err
	if err != nil || page == nil {
		return
	}
	s.appendPageLocked(page)
}

// appendPageLocked adds a page's entries, skipping match ids already loaded
// by this search, and folds the new matches into the champion counter
func (s *Session) appendPageLocked(page *collector.Page) {
	var added []*riot.Match
	for i, id := range page.MatchIDs {
		if s.loadedLocked(id) {
			continue
		}

		e := Entry{MatchID: id}
		if i < len(page.Matches) {
			slot := page.Matches[i]
			e.Match, e.Err = slot.Match, slot.Err
		}
		if i < len(page.Timelines) && page.Timelines[i].OK() {
			e.Timeline = page.Timelines[i].Timeline
		}

		s.seen.AddString(id)
		s.index[id] = len(s.entries)
		s.entries = append(s.entries, e)
		if e.Match != nil {
			added = append(added, e.Match)
		}
	}
	s.counter = stats.CountChampions(s.counter, added, s.name)
	s.nextStart = page.Start + len(page.MatchIDs)
	s.trimLocked()
	s.logger.Debug("page appended", "start", page.Start, "added", len(added), "total", len(s.entries), "next", s.nextStart)
}

// loadedLocked reports whether id was loaded earlier in this search. Retained
// ids are answered exactly; once entries have been trimmed the filter stands
// in for the ids no longer indexed.
func (s *Session) loadedLocked(id string) bool {
	if _, ok := s.index[id]; ok {
		return true
	}
	return s.trimmed > 0 && s.seen.TestString(id)
}

// trimLocked drops the earliest loaded entries beyond MaxEntries and
// reindexes the rest. An expanded match that is trimmed collapses.
func (s *Session) trimLocked() {
	n := len(s.entries) - s.cfg.MaxEntries
	if s.cfg.MaxEntries < 0 || n <= 0 {
		return
	}
	s.entries = append([]Entry(nil), s.entries[n:]...)
	s.trimmed += n

	clear(s.index)
	for i, e := range s.entries {
		s.index[e.MatchID] = i
	}

	switch exp := s.selection.Expanded; {
	case exp == NoSelection:
	case exp < n:
		s.selection = s.selection.ToggleMatch(exp)
	default:
		s.selection.Expanded = exp - n
	}
	s.logger.Debug("entries trimmed", "dropped", n, "trimmed", s.trimmed)
}

// Status returns the search outcome and its error, if any
func (s *Session) Status() (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.err
}

// Entries returns a copy of the session's match list
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Counter returns the champion play counter
func (s *Session) Counter() stats.ChampionCounter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// Selection returns the current toggle state
func (s *Session) Selection() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// ToggleMatch expands or collapses match i
func (s *Session) ToggleMatch(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.entries) {
		return
	}
	s.selection = s.selection.ToggleMatch(i)
}

// SetTab switches the expanded match's detail tab
func (s *Session) SetTab(t Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	player := NoSelection
	if m := s.expandedLocked(); m != nil {
		if idx, ok := stats.FindParticipant(m.Match, s.name); ok {
			player = idx
		}
	}
	s.selection = s.selection.SetTab(t, player)
}

// SelectBuildParticipant chooses whose build the build tab shows
func (s *Session) SelectBuildParticipant(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.SelectBuildParticipant(i)
}

// ToggleGraphParticipant adds or removes a line from the graph
func (s *Session) ToggleGraphParticipant(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.ToggleGraphParticipant(i)
}

// SetMetric switches the graph metric
func (s *Session) SetMetric(m stats.Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = s.selection.SetMetric(m)
}

func (s *Session) expandedLocked() *Entry {
	i := s.selection.Expanded
	if i < 0 || i >= len(s.entries) {
		return nil
	}
	return &s.entries[i]
}
