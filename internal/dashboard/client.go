package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"

	"lolstats/internal/collector"
	"lolstats/internal/relay"
	"lolstats/internal/riot"
	"lolstats/internal/summoner"
)

// RelayError is a non-2xx answer from the relay
type RelayError struct {
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	return fmt.Sprintf("relay returned %d: %s", e.StatusCode, e.Message)
}

// Is lets callers test relay errors against the same sentinels the relay
// maps from
func (e *RelayError) Is(target error) bool {
	switch target {
	case summoner.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case riot.ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// Client talks to the relay over HTTP the same way the browser does
type Client struct {
	baseURL    string
	httpClient *http.Client
	dialer     *websocket.Dialer
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithRelayHTTPClient replaces the default HTTP client
func WithRelayHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a relay client for baseURL, e.g. http://localhost:4000
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		dialer:     &websocket.Dialer{HandshakeTimeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func searchParams(name string, region riot.Region) url.Values {
	return url.Values{"username": {name}, "region": {string(region)}}
}

func pageParams(name string, region riot.Region, start int) url.Values {
	q := searchParams(name, region)
	q.Set("start", strconv.Itoa(start))
	return q
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeRelayError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

func decodeRelayError(resp *http.Response) error {
	var body relay.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Message == "" {
		return &RelayError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}
	return &RelayError{StatusCode: resp.StatusCode, Message: body.Message}
}

// SummonerInfo fetches the profile summary
func (c *Client) SummonerInfo(ctx context.Context, name string, region riot.Region) (*riot.Summoner, error) {
	var s riot.Summoner
	if err := c.getJSON(ctx, "/summonerInfo", searchParams(name, region), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// SummonerRank fetches ranked entries
func (c *Client) SummonerRank(ctx context.Context, name string, region riot.Region) ([]riot.LeagueEntry, error) {
	var entries []riot.LeagueEntry
	if err := c.getJSON(ctx, "/summonerRank", searchParams(name, region), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// PastGames fetches one page of match documents
func (c *Client) PastGames(ctx context.Context, name string, region riot.Region, start int) ([]collector.MatchSlot, error) {
	var slots []collector.MatchSlot
	if err := c.getJSON(ctx, "/pastGames", pageParams(name, region, start), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// MatchTimeline fetches one page of timelines, aligned with PastGames
func (c *Client) MatchTimeline(ctx context.Context, name string, region riot.Region, start int) ([]collector.TimelineSlot, error) {
	var slots []collector.TimelineSlot
	if err := c.getJSON(ctx, "/matchTimeline", pageParams(name, region, start), &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

// MatchPage fetches matches and timelines for one page in a single call
func (c *Client) MatchPage(ctx context.Context, name string, region riot.Region, start int) (*collector.Page, error) {
	var page collector.Page
	if err := c.getJSON(ctx, "/matchPage", pageParams(name, region, start), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// StreamMatches reads the websocket stream for one page, calling fn for each
// slot frame in order. It returns the slot count from the final frame.
func (c *Client) StreamMatches(ctx context.Context, name string, region riot.Region, start int, generation uint64, fn func(relay.StreamMessage) error) (int, error) {
	q := pageParams(name, region, start)
	q.Set("generation", strconv.FormatUint(generation, 10))

	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http") + "/ws/matches?" + q.Encode()
	conn, resp, err := c.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusSwitchingProtocols {
				return 0, decodeRelayError(resp)
			}
		}
		return 0, fmt.Errorf("dial match stream: %w", err)
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return 0, fmt.Errorf("read match stream: %w", err)
		}
		var msg relay.StreamMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return 0, fmt.Errorf("decode stream frame: %w", err)
		}
		if msg.Error != nil {
			return 0, &RelayError{StatusCode: msg.Error.Code, Message: msg.Error.Message}
		}
		if msg.Done {
			return msg.Count, nil
		}
		if err := fn(msg); err != nil {
			return 0, err
		}
	}
}
