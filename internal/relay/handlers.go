package relay

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"lolstats/internal/collector"
	"lolstats/internal/riot"
	"lolstats/internal/summoner"
)

const writeWait = 10 * time.Second

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// searchQuery is the parsed username/region/start triple every data
// endpoint takes
type searchQuery struct {
	name   string
	region riot.Region
	start  int
}

func parseSearch(r *http.Request, withStart bool) (searchQuery, error) {
	q := r.URL.Query()
	name := strings.TrimSpace(q.Get("username"))
	if name == "" {
		return searchQuery{}, &badRequestError{msg: "username is required"}
	}
	region, err := riot.ParseRegion(q.Get("region"))
	if err != nil {
		return searchQuery{}, &badRequestError{msg: err.Error()}
	}
	sq := searchQuery{name: name, region: region}
	if !withStart {
		return sq, nil
	}
	if raw := q.Get("start"); raw != "" {
		start, err := strconv.Atoi(raw)
		if err != nil || start < 0 {
			return searchQuery{}, &badRequestError{msg: fmt.Sprintf("start must be a non-negative integer, got %q", raw)}
		}
		sq.start = start
	}
	return sq, nil
}

// parseGeneration reads the optional generation tag echoed in stream frames
func parseGeneration(r *http.Request) (uint64, error) {
	raw := r.URL.Query().Get("generation")
	if raw == "" {
		return 0, nil
	}
	generation, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &badRequestError{msg: fmt.Sprintf("generation must be a non-negative integer, got %q", raw)}
	}
	return generation, nil
}

// resolve parses the query and looks the player up
func (s *Server) resolve(r *http.Request, withStart bool) (summoner.Identity, searchQuery, error) {
	sq, err := parseSearch(r, withStart)
	if err != nil {
		return summoner.Identity{}, sq, err
	}
	id, err := s.summoners.ResolveIdentity(r.Context(), sq.name, sq.region)
	return id, sq, err
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status >= http.StatusInternalServerError || status == http.StatusTooManyRequests {
		s.logger.Warn("upstream request failed", "path", r.URL.Path, "status", status, "error", err)
	}
	writeError(w, status, err)
}

func (s *Server) handleSummonerInfo(w http.ResponseWriter, r *http.Request) {
	id, _, err := s.resolve(r, false)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	profile, err := s.summoners.FetchProfile(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleSummonerRank(w http.ResponseWriter, r *http.Request) {
	id, _, err := s.resolve(r, false)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	entries, err := s.summoners.FetchRank(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if entries == nil {
		entries = []riot.LeagueEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handlePastGames(w http.ResponseWriter, r *http.Request) {
	id, sq, err := s.resolve(r, true)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.collector.FetchMatches(r.Context(), id, sq.start)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page.Matches)
}

func (s *Server) handleMatchTimeline(w http.ResponseWriter, r *http.Request) {
	id, sq, err := s.resolve(r, true)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.collector.FetchTimelines(r.Context(), id, sq.start)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page.Timelines)
}

func (s *Server) handleMatchPage(w http.ResponseWriter, r *http.Request) {
	id, sq, err := s.resolve(r, true)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	page, err := s.collector.FetchMatchPage(r.Context(), id, sq.start)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// handleMatchStream streams one page over a websocket, a frame per slot in
// id order, then a done frame. Lookup failures are answered over plain HTTP
// before the upgrade.
func (s *Server) handleMatchStream(w http.ResponseWriter, r *http.Request) {
	generation, err := parseGeneration(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	id, sq, err := s.resolve(r, true)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	// A closed client connection shows up as a read error
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	page, err := s.collector.StreamMatchPage(ctx, id, sq.start, func(i int, m collector.MatchSlot, tl collector.TimelineSlot) error {
		return writeFrame(conn, StreamMessage{
			Generation: generation,
			Index:      i,
			MatchID:    m.MatchID,
			Match:      &m,
			Timeline:   &tl,
		})
	})
	if err != nil {
		if page == nil {
			status := StatusFor(err)
			writeFrame(conn, StreamMessage{Generation: generation, Error: errorBody(status, err)})
		}
		s.logger.Warn("match stream ended early", "player", id.DisplayName, "error", err)
		return
	}

	writeFrame(conn, StreamMessage{Generation: generation, Done: true, Count: len(page.MatchIDs)})
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeWait))
}

func writeFrame(conn *websocket.Conn, msg StreamMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode stream frame: %w", err)
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteMessage(websocket.TextMessage, data)
}
