package relay

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lolstats/internal/collector"
	"lolstats/internal/riot"
	"lolstats/internal/riot/riottest"
)

func newTestRelay(t *testing.T, fx *riottest.Fixture) (*httptest.Server, *riottest.Server) {
	t.Helper()
	upstream := riottest.NewServer(t, fx)
	srv := NewServer(upstream.Client(t), Config{
		Collector: collector.Config{PageSize: 20, DropTail: 10, WorkerCount: 3},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts, upstream
}

func get(t *testing.T, ts *httptest.Server, path string, q url.Values) *http.Response {
	t.Helper()
	resp, err := http.Get(ts.URL + path + "?" + q.Encode())
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func fakerQuery(start string) url.Values {
	q := url.Values{"username": {"Faker"}, "region": {"kr"}}
	if start != "" {
		q.Set("start", start)
	}
	return q
}

func TestHealth(t *testing.T) {
	ts, _ := newTestRelay(t, riottest.NewFixture("Faker", 0, 0))
	resp := get(t, ts, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
}

func TestSummonerInfo(t *testing.T) {
	ts, _ := newTestRelay(t, riottest.NewFixture("Faker", 0, 0))

	resp := get(t, ts, "/summonerInfo", fakerQuery(""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	s := decode[riot.Summoner](t, resp)
	assert.Equal(t, "Faker", s.Name)
	assert.Equal(t, 612, s.SummonerLevel)
	assert.Equal(t, 6, s.ProfileIconID)
}

func TestSummonerRank(t *testing.T) {
	ts, _ := newTestRelay(t, riottest.NewFixture("Faker", 0, 0))

	resp := get(t, ts, "/summonerRank", fakerQuery(""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	entries := decode[[]riot.LeagueEntry](t, resp)
	assert.Len(t, entries, 2)
}

func TestSummonerRank_UnrankedIsEmptyArray(t *testing.T) {
	fx := riottest.NewFixture("Faker", 0, 0)
	fx.Rank = nil
	ts, _ := newTestRelay(t, fx)

	resp := get(t, ts, "/summonerRank", fakerQuery(""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(body)))
}

func TestParameterErrors(t *testing.T) {
	ts, upstream := newTestRelay(t, riottest.NewFixture("Faker", 0, 0))

	tests := []struct {
		name string
		path string
		q    url.Values
	}{
		{"missing username", "/summonerInfo", url.Values{"region": {"kr"}}},
		{"blank username", "/summonerRank", url.Values{"username": {"  "}, "region": {"kr"}}},
		{"unknown region", "/summonerInfo", url.Values{"username": {"Faker"}, "region": {"moon1"}}},
		{"negative start", "/pastGames", fakerQuery("-20")},
		{"non-numeric start", "/matchPage", fakerQuery("ten")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, ts, tt.path, tt.q)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decode[ErrorResponse](t, resp)
			assert.Equal(t, http.StatusBadRequest, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
	assert.Zero(t, upstream.Requests.Load(), "bad parameters must not reach upstream")
}

func TestUnknownPlayerIs404(t *testing.T) {
	ts, _ := newTestRelay(t, riottest.NewFixture("Faker", 0, 0))

	for _, path := range []string{"/summonerInfo", "/summonerRank", "/pastGames", "/matchTimeline", "/matchPage"} {
		resp := get(t, ts, path, url.Values{"username": {"Nobody Here"}, "region": {"kr"}})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, http.StatusNotFound, decode[ErrorResponse](t, resp).Code, path)
	}
}

func TestRateLimitedUpstreamIs429(t *testing.T) {
	fx := riottest.NewFixture("Faker", 0, 0)
	fx.RateLimited = true
	ts, _ := newTestRelay(t, fx)

	resp := get(t, ts, "/summonerInfo", fakerQuery(""))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestPastGames_DropsTailAndKeepsOrder(t *testing.T) {
	fx := riottest.NewFixture("Faker", 25, 3)
	ts, _ := newTestRelay(t, fx)

	resp := get(t, ts, "/pastGames", fakerQuery("0"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	slots := decode[[]collector.MatchSlot](t, resp)

	require.Len(t, slots, 10)
	for i, s := range slots {
		require.True(t, s.OK(), "slot %d", i)
		assert.Equal(t, fx.MatchIDs[i], s.Match.Metadata.MatchID)
	}
}

func TestPastGames_SecondPage(t *testing.T) {
	fx := riottest.NewFixture("Faker", 25, 3)
	ts, _ := newTestRelay(t, fx)

	// ids 20..24 are fewer than the dropped tail
	resp := get(t, ts, "/pastGames", fakerQuery("20"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	slots := decode[[]collector.MatchSlot](t, resp)
	assert.Empty(t, slots)
}

func TestPastGames_FailedMatchIsPlaceholder(t *testing.T) {
	fx := riottest.NewFixture("Faker", 20, 3)
	fx.FailStatus = map[string]int{fx.MatchIDs[2]: http.StatusNotFound}
	ts, _ := newTestRelay(t, fx)

	resp := get(t, ts, "/pastGames", fakerQuery(""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw := decode[[]json.RawMessage](t, resp)
	require.Len(t, raw, 10)
	assert.Contains(t, string(raw[2]), `"status"`)
	assert.Contains(t, string(raw[2]), `"status_code":404`)
	assert.Contains(t, string(raw[3]), `"metadata"`)
}

func TestMatchTimeline_AlignedWithPastGames(t *testing.T) {
	fx := riottest.NewFixture("Faker", 20, 4)
	ts, _ := newTestRelay(t, fx)

	resp := get(t, ts, "/matchTimeline", fakerQuery("0"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	slots := decode[[]collector.TimelineSlot](t, resp)
	require.Len(t, slots, 10)
	for i, s := range slots {
		require.True(t, s.OK())
		assert.Equal(t, fx.MatchIDs[i], s.Timeline.Metadata.MatchID)
		assert.Len(t, s.Timeline.Info.Frames, 4)
	}
}

func TestMatchPage(t *testing.T) {
	fx := riottest.NewFixture("Faker", 20, 2)
	ts, _ := newTestRelay(t, fx)

	resp := get(t, ts, "/matchPage", fakerQuery(""))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[collector.Page](t, resp)

	assert.Equal(t, 0, page.Start)
	assert.Equal(t, fx.MatchIDs[:10], page.MatchIDs)
	require.Len(t, page.Matches, 10)
	require.Len(t, page.Timelines, 10)
	for i := range page.MatchIDs {
		assert.Equal(t, page.MatchIDs[i], page.Matches[i].Match.Metadata.MatchID)
		assert.Equal(t, page.MatchIDs[i], page.Timelines[i].Timeline.Metadata.MatchID)
	}
}

func TestCORSHeaders(t *testing.T) {
	ts, _ := newTestRelay(t, riottest.NewFixture("Faker", 0, 0))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func wsURL(ts *httptest.Server, q url.Values) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/matches?" + q.Encode()
}

func TestMatchStream(t *testing.T) {
	fx := riottest.NewFixture("Faker", 20, 2)
	ts, _ := newTestRelay(t, fx)

	q := fakerQuery("0")
	q.Set("generation", "7")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts, q), nil)
	require.NoError(t, err)
	defer conn.Close()

	var frames []StreamMessage
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var msg StreamMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.EqualValues(t, 7, msg.Generation)
		if msg.Done {
			assert.Equal(t, 10, msg.Count)
			break
		}
		frames = append(frames, msg)
	}

	require.Len(t, frames, 10)
	for i, f := range frames {
		assert.Equal(t, i, f.Index)
		assert.Equal(t, fx.MatchIDs[i], f.MatchID)
		require.NotNil(t, f.Match)
		require.NotNil(t, f.Timeline)
		assert.True(t, f.Match.OK())
		assert.True(t, f.Timeline.OK())
	}
}

func TestMatchStream_UnknownPlayerRejectedBeforeUpgrade(t *testing.T) {
	ts, _ := newTestRelay(t, riottest.NewFixture("Faker", 0, 0))

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, url.Values{"username": {"Nobody"}, "region": {"kr"}}), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMatchStream_MalformedGenerationRejectedBeforeUpgrade(t *testing.T) {
	ts, upstream := newTestRelay(t, riottest.NewFixture("Faker", 20, 1))

	for _, raw := range []string{"abc", "-1", "1.5"} {
		q := fakerQuery("0")
		q.Set("generation", raw)
		_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, q), nil)
		require.Error(t, err, raw)
		require.NotNil(t, resp, raw)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, raw)
		assert.Equal(t, http.StatusBadRequest, decode[ErrorResponse](t, resp).Code, raw)
		resp.Body.Close()
	}
	assert.Zero(t, upstream.Requests.Load(), "bad parameters must not reach upstream")
}

func TestWriteJSON_EncodeFailureKeepsStatus(t *testing.T) {
	var logs bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Failed to encode")
	assert.Contains(t, logs.String(), "failed to encode response")
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{&badRequestError{msg: "x"}, http.StatusBadRequest},
		{&riot.UpstreamError{StatusCode: 404}, http.StatusNotFound},
		{&riot.UpstreamError{StatusCode: 429}, http.StatusTooManyRequests},
		{&riot.UpstreamError{StatusCode: 500}, http.StatusBadGateway},
		{&riot.UpstreamError{Message: "dial tcp: refused"}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusFor(tt.err), tt.err.Error())
	}
}
