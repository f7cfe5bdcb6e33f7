package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	// Rate limits for dev key (using conservative values to be safe)
	requestsPerSecond = 15 // Actual: 20, using 15 for safety
	requestsPer2Min   = 90 // Actual: 100, using 90 for safety

	defaultTimeout = 30 * time.Second

	// error bodies larger than this are truncated in messages
	maxErrorBody = 4 << 10
)

// Client is a rate-limited Riot API client. It is safe for concurrent use.
type Client struct {
	apiKey     string
	httpClient *http.Client

	// Rate limiting: short window and long window, both must admit a request
	shortLimiter *rate.Limiter
	longLimiter  *rate.Limiter

	// hostURL maps a routing value (region or cluster) to a base URL
	hostURL func(route string) string
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL sends every request to one base URL regardless of routing
// value (useful for testing)
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.hostURL = func(string) string { return base }
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit overrides the short window limit. rps <= 0 disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.shortLimiter = rate.NewLimiter(rate.Inf, 0)
			c.longLimiter = rate.NewLimiter(rate.Inf, 0)
			return
		}
		if burst <= 0 {
			burst = 1
		}
		c.shortLimiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a new Riot API client
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key cannot be empty")
	}

	c := &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		shortLimiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		longLimiter:  rate.NewLimiter(rate.Every(2*time.Minute/requestsPer2Min), requestsPer2Min),
		hostURL: func(route string) string {
			return fmt.Sprintf("https://%s.api.riotgames.com", route)
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// waitForRateLimit blocks until both windows admit a request or ctx ends
func (c *Client) waitForRateLimit(ctx context.Context) error {
	if err := c.shortLimiter.Wait(ctx); err != nil {
		return err
	}
	return c.longLimiter.Wait(ctx)
}

// doRequest makes a rate-limited GET and decodes a 200 body into result.
// There is no retry: a 429 is returned to the caller as an UpstreamError.
func (c *Client) doRequest(ctx context.Context, route, path string, result interface{}) error {
	if err := c.waitForRateLimit(ctx); err != nil {
		return AsUpstreamError(fmt.Errorf("rate limiter: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.hostURL(route)+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Riot-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    "malformed response body",
			Err:        err,
		}
	}
	return nil
}

// errorMessage pulls status.message out of a Riot error body, falling back
// to the raw body or the status text
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body ErrorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Status.Message != "" {
		return body.Status.Message
	}
	if len(raw) > 0 {
		return string(raw)
	}
	return http.StatusText(resp.StatusCode)
}

// GetSummonerByName fetches a summoner by display name on a platform region
func (c *Client) GetSummonerByName(ctx context.Context, region Region, name string) (*Summoner, error) {
	path := "/lol/summoner/v4/summoners/by-name/" + url.PathEscape(name)

	var summoner Summoner
	if err := c.doRequest(ctx, string(region), path, &summoner); err != nil {
		return nil, fmt.Errorf("failed to get summoner by name: %w", err)
	}
	return &summoner, nil
}

// GetSummoner fetches a summoner by encrypted summoner id
func (c *Client) GetSummoner(ctx context.Context, region Region, summonerID string) (*Summoner, error) {
	path := "/lol/summoner/v4/summoners/" + url.PathEscape(summonerID)

	var summoner Summoner
	if err := c.doRequest(ctx, string(region), path, &summoner); err != nil {
		return nil, fmt.Errorf("failed to get summoner: %w", err)
	}
	return &summoner, nil
}

// GetLeagueEntries fetches ranked entries (one per queue) for a summoner
func (c *Client) GetLeagueEntries(ctx context.Context, region Region, summonerID string) ([]LeagueEntry, error) {
	path := "/lol/league/v4/entries/by-summoner/" + url.PathEscape(summonerID)

	var entries []LeagueEntry
	if err := c.doRequest(ctx, string(region), path, &entries); err != nil {
		return nil, fmt.Errorf("failed to get league entries: %w", err)
	}
	if entries == nil {
		entries = []LeagueEntry{}
	}
	return entries, nil
}

// GetMatchIDs fetches a page of match IDs for a player, newest first
func (c *Client) GetMatchIDs(ctx context.Context, cluster Cluster, puuid string, start, count int) ([]string, error) {
	path := fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d",
		url.PathEscape(puuid), start, count)

	var matchIDs []string
	if err := c.doRequest(ctx, string(cluster), path, &matchIDs); err != nil {
		return nil, fmt.Errorf("failed to get match IDs: %w", err)
	}
	return matchIDs, nil
}

// GetMatch fetches match details
func (c *Client) GetMatch(ctx context.Context, cluster Cluster, matchID string) (*Match, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID)

	var match Match
	if err := c.doRequest(ctx, string(cluster), path, &match); err != nil {
		return nil, fmt.Errorf("failed to get match %s: %w", matchID, err)
	}
	return &match, nil
}

// GetTimeline fetches match timeline
func (c *Client) GetTimeline(ctx context.Context, cluster Cluster, matchID string) (*Timeline, error) {
	path := "/lol/match/v5/matches/" + url.PathEscape(matchID) + "/timeline"

	var timeline Timeline
	if err := c.doRequest(ctx, string(cluster), path, &timeline); err != nil {
		return nil, fmt.Errorf("failed to get timeline %s: %w", matchID, err)
	}
	return &timeline, nil
}
