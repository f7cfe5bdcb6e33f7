// Package collector fetches pages of a player's match history and stitches
// match details and timelines into index-aligned collections.
package collector

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"lolstats/internal/riot"
	"lolstats/internal/summoner"
)

const (
	// Upstream default and max page is 20 ids
	DefaultPageSize = 20
	// The last DefaultDropTail ids of every page are never fetched
	DefaultDropTail = 10
	// Concurrent match/timeline fetches per page
	DefaultWorkerCount = 4
)

// API is the subset of the Riot client the collector needs
type API interface {
	GetMatchIDs(ctx context.Context, cluster riot.Cluster, puuid string, start, count int) ([]string, error)
	GetMatch(ctx context.Context, cluster riot.Cluster, matchID string) (*riot.Match, error)
	GetTimeline(ctx context.Context, cluster riot.Cluster, matchID string) (*riot.Timeline, error)
}

// Config holds paging and fan-out settings
type Config struct {
	PageSize    int
	DropTail    int // ids dropped from the end of each page; negative means 0
	WorkerCount int
}

// Page is one fetched page. Matches and Timelines are index-aligned with
// MatchIDs; a side that was not requested is nil.
type Page struct {
	Start     int            `json:"start"`
	MatchIDs  []string       `json:"matchIds"`
	Matches   []MatchSlot    `json:"matches"`
	Timelines []TimelineSlot `json:"timelines"`
}

// Collector fetches match pages
type Collector struct {
	api    API
	cfg    Config
	logger *slog.Logger
}

// New creates a collector, filling zero config values with defaults
func New(api API, cfg Config, logger *slog.Logger) *Collector {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.DropTail < 0 {
		cfg.DropTail = 0
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Collector{api: api, cfg: cfg, logger: logger}
}

// PageSize returns the number of ids requested per page
func (c *Collector) PageSize() int { return c.cfg.PageSize }

// ApplyDropTail keeps the first len(ids)-dropTail ids. A page shorter than
// dropTail yields no ids.
func ApplyDropTail(ids []string, dropTail int) []string {
	n := len(ids) - dropTail
	if n <= 0 {
		return []string{}
	}
	return ids[:n]
}

type sides struct {
	matches   bool
	timelines bool
}

// SlotFunc receives slots in id order as they become available
type SlotFunc func(index int, match MatchSlot, timeline TimelineSlot) error

// FetchMatchPage fetches match details and timelines for one page
func (c *Collector) FetchMatchPage(ctx context.Context, id summoner.Identity, start int) (*Page, error) {
	return c.collect(ctx, id, start, sides{matches: true, timelines: true}, nil)
}

// FetchMatches fetches only match details for one page
func (c *Collector) FetchMatches(ctx context.Context, id summoner.Identity, start int) (*Page, error) {
	return c.collect(ctx, id, start, sides{matches: true}, nil)
}

// FetchTimelines fetches only timelines for one page
func (c *Collector) FetchTimelines(ctx context.Context, id summoner.Identity, start int) (*Page, error) {
	return c.collect(ctx, id, start, sides{timelines: true}, nil)
}

// StreamMatchPage fetches both sides and hands each slot pair to fn in id
// order. If fn fails, outstanding fetches are cancelled and the error is
// returned.
func (c *Collector) StreamMatchPage(ctx context.Context, id summoner.Identity, start int, fn SlotFunc) (*Page, error) {
	return c.collect(ctx, id, start, sides{matches: true, timelines: true}, fn)
}

func (c *Collector) collect(ctx context.Context, id summoner.Identity, start int, want sides, emit SlotFunc) (*Page, error) {
	if start < 0 {
		start = 0
	}
	cluster := id.Region.Cluster()
	began := time.Now()

	ids, err := c.api.GetMatchIDs(ctx, cluster, id.PUUID, start, c.cfg.PageSize)
	if err != nil {
		return nil, fmt.Errorf("fetch match ids: %w", err)
	}
	ids = ApplyDropTail(ids, c.cfg.DropTail)

	page := &Page{Start: start, MatchIDs: ids}
	if want.matches {
		page.Matches = make([]MatchSlot, len(ids))
	}
	if want.timelines {
		page.Timelines = make([]TimelineSlot, len(ids))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make([]chan struct{}, len(ids))
	for i := range done {
		done[i] = make(chan struct{})
	}

	// Per-id failures become placeholders, so workers never return errors
	var g errgroup.Group
	g.SetLimit(c.cfg.WorkerCount)
	scheduled := make(chan struct{})
	go func() {
		defer close(scheduled)
		for i, matchID := range ids {
			g.Go(func() error {
				defer close(done[i])
				c.fetchOne(ctx, cluster, matchID, i, page, want)
				return nil
			})
		}
	}()

	var emitErr error
	for i := range ids {
		<-done[i]
		if emit == nil || emitErr != nil {
			continue
		}
		var m MatchSlot
		var tl TimelineSlot
		if want.matches {
			m = page.Matches[i]
		}
		if want.timelines {
			tl = page.Timelines[i]
		}
		if err := emit(i, m, tl); err != nil {
			emitErr = err
			cancel()
		}
	}

	<-scheduled
	g.Wait()

	c.logger.Debug("match page collected",
		"player", id.DisplayName,
		"cluster", cluster,
		"start", start,
		"ids", len(ids),
		"elapsed", time.Since(began))

	if emitErr != nil {
		return page, emitErr
	}
	return page, nil
}

// fetchOne fills slot i. Each worker writes only its own index.
func (c *Collector) fetchOne(ctx context.Context, cluster riot.Cluster, matchID string, i int, page *Page, want sides) {
	if want.matches {
		slot := MatchSlot{MatchID: matchID}
		match, err := c.api.GetMatch(ctx, cluster, matchID)
		if err != nil {
			slot.Err = riot.AsUpstreamError(err)
			c.logger.Warn("match fetch failed", "match", matchID, "error", err)
		} else {
			slot.Match = match
		}
		page.Matches[i] = slot
	}

	if want.timelines {
		slot := TimelineSlot{MatchID: matchID}
		timeline, err := c.api.GetTimeline(ctx, cluster, matchID)
		if err != nil {
			slot.Err = riot.AsUpstreamError(err)
			c.logger.Warn("timeline fetch failed", "match", matchID, "error", err)
		} else {
			slot.Timeline = timeline
		}
		page.Timelines[i] = slot
	}
}
