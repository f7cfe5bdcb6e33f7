// Package riottest serves canned Riot API documents over HTTP for tests
// that exercise the real client.
package riottest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"lolstats/internal/riot"
)

// Fixture is the upstream state a test server answers from
type Fixture struct {
	Summoner  riot.Summoner
	Rank      []riot.LeagueEntry
	MatchIDs  []string
	Matches   map[string]*riot.Match
	Timelines map[string]*riot.Timeline
	// FailStatus makes the match and timeline for an id answer with that status
	FailStatus map[string]int
	// RateLimited makes every request answer 429
	RateLimited bool
}

// Server is a running fake upstream
type Server struct {
	*httptest.Server
	fx       *Fixture
	Requests atomic.Int64
}

// NewServer starts a fake upstream for fx, closed when the test ends
func NewServer(t testing.TB, fx *Fixture) *Server {
	t.Helper()
	s := &Server{fx: fx}

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.Requests.Add(1)
			if fx.RateLimited {
				writeStatus(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}
			next.ServeHTTP(w, req)
		})
	})
	r.Get("/lol/summoner/v4/summoners/by-name/{name}", s.summonerByName)
	r.Get("/lol/summoner/v4/summoners/{id}", s.summonerByID)
	r.Get("/lol/league/v4/entries/by-summoner/{id}", s.leagueEntries)
	r.Get("/lol/match/v5/matches/by-puuid/{puuid}/ids", s.matchIDs)
	r.Get("/lol/match/v5/matches/{id}", s.match)
	r.Get("/lol/match/v5/matches/{id}/timeline", s.timeline)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Client returns an unthrottled client pointed at the server
func (s *Server) Client(t testing.TB) *riot.Client {
	t.Helper()
	c, err := riot.NewClient("RGAPI-test-key", riot.WithBaseURL(s.URL), riot.WithRateLimit(0, 0))
	if err != nil {
		t.Fatalf("riot.NewClient: %v", err)
	}
	return c
}

func writeDoc(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeStatus(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(riot.ErrorBody{Status: riot.ErrorStatus{Message: msg, StatusCode: status}})
}

func (s *Server) summonerByName(w http.ResponseWriter, r *http.Request) {
	if !riot.SameName(chi.URLParam(r, "name"), s.fx.Summoner.Name) {
		writeStatus(w, http.StatusNotFound, "Data not found - summoner not found")
		return
	}
	writeDoc(w, s.fx.Summoner)
}

func (s *Server) summonerByID(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "id") != s.fx.Summoner.ID {
		writeStatus(w, http.StatusNotFound, "Data not found - summoner not found")
		return
	}
	writeDoc(w, s.fx.Summoner)
}

func (s *Server) leagueEntries(w http.ResponseWriter, r *http.Request) {
	rank := s.fx.Rank
	if rank == nil {
		rank = []riot.LeagueEntry{}
	}
	writeDoc(w, rank)
}

func (s *Server) matchIDs(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "puuid") != s.fx.Summoner.PUUID {
		writeStatus(w, http.StatusNotFound, "Data not found - puuid not found")
		return
	}
	start, _ := strconv.Atoi(r.URL.Query().Get("start"))
	count, err := strconv.Atoi(r.URL.Query().Get("count"))
	if err != nil {
		count = 20
	}
	ids := s.fx.MatchIDs
	if start > len(ids) {
		start = len(ids)
	}
	end := min(start+count, len(ids))
	writeDoc(w, ids[start:end])
}

func (s *Server) match(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if status, ok := s.fx.FailStatus[id]; ok {
		writeStatus(w, status, http.StatusText(status))
		return
	}
	m, ok := s.fx.Matches[id]
	if !ok {
		writeStatus(w, http.StatusNotFound, "Data not found - match file not found")
		return
	}
	writeDoc(w, m)
}

func (s *Server) timeline(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if status, ok := s.fx.FailStatus[id]; ok {
		writeStatus(w, status, http.StatusText(status))
		return
	}
	tl, ok := s.fx.Timelines[id]
	if !ok {
		writeStatus(w, http.StatusNotFound, fmt.Sprintf("Data not found - timeline %s not found", id))
		return
	}
	writeDoc(w, tl)
}
