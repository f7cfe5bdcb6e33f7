package collector

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"

	"lolstats/internal/riot"
	"lolstats/internal/summoner"
)

// fakeAPI serves generated match ids and documents with random latency so
// completion order differs from id order
type fakeAPI struct {
	ids       []string
	idsErr    error
	failMatch map[string]bool
	maxDelay  time.Duration

	mu            sync.Mutex
	gotCluster    riot.Cluster
	gotStart      int
	gotCount      int
	matchCalls    int32
	timelineCalls int32
	inFlight      int32
	maxInFlight   int32
}

func (f *fakeAPI) GetMatchIDs(ctx context.Context, cluster riot.Cluster, puuid string, start, count int) ([]string, error) {
	f.mu.Lock()
	f.gotCluster, f.gotStart, f.gotCount = cluster, start, count
	f.mu.Unlock()
	return f.ids, f.idsErr
}

func (f *fakeAPI) track() func() {
	n := atomic.AddInt32(&f.inFlight, 1)
	for {
		max := atomic.LoadInt32(&f.maxInFlight)
		if n <= max || atomic.CompareAndSwapInt32(&f.maxInFlight, max, n) {
			break
		}
	}
	if f.maxDelay > 0 {
		time.Sleep(time.Duration(rand.Int63n(int64(f.maxDelay))))
	}
	return func() { atomic.AddInt32(&f.inFlight, -1) }
}

func (f *fakeAPI) GetMatch(ctx context.Context, cluster riot.Cluster, matchID string) (*riot.Match, error) {
	defer f.track()()
	atomic.AddInt32(&f.matchCalls, 1)
	if f.failMatch[matchID] {
		return nil, fmt.Errorf("failed to get match %s: %w", matchID,
			&riot.UpstreamError{StatusCode: 404, Message: "match not found"})
	}
	return testMatch(matchID), nil
}

func (f *fakeAPI) GetTimeline(ctx context.Context, cluster riot.Cluster, matchID string) (*riot.Timeline, error) {
	defer f.track()()
	atomic.AddInt32(&f.timelineCalls, 1)
	return &riot.Timeline{Metadata: riot.TimelineMetadata{MatchID: matchID}, Info: riot.TimelineInfo{
		FrameInterval: 60000,
		Frames:        []riot.Frame{{Timestamp: 0}, {Timestamp: 60000}},
	}}, nil
}

func testMatch(matchID string) *riot.Match {
	m := &riot.Match{Metadata: riot.MatchMetadata{MatchID: matchID}}
	for i := 0; i < 10; i++ {
		m.Info.Participants = append(m.Info.Participants, riot.Participant{
			ParticipantID: i + 1,
			SummonerName:  fmt.Sprintf("player%d", i),
		})
	}
	return m
}

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("KR_%d", 1000-i)
	}
	return ids
}

var faker = summoner.Identity{DisplayName: "Faker", Region: "kr", PUUID: "puuid-faker", SummonerID: "sid"}

func TestApplyDropTail(t *testing.T) {
	tests := []struct {
		n, drop, want int
	}{
		{20, 10, 10},
		{15, 10, 5},
		{10, 10, 0},
		{3, 10, 0},
		{0, 10, 0},
		{20, 0, 20},
	}
	for _, tt := range tests {
		got := ApplyDropTail(makeIDs(tt.n), tt.drop)
		if len(got) != tt.want {
			t.Errorf("ApplyDropTail(%d ids, %d) kept %d, want %d", tt.n, tt.drop, len(got), tt.want)
		}
		if got == nil {
			t.Errorf("ApplyDropTail(%d ids, %d) returned nil", tt.n, tt.drop)
		}
	}
}

func TestFetchMatchPage_TruncatesAndAligns(t *testing.T) {
	api := &fakeAPI{ids: makeIDs(20), maxDelay: 5 * time.Millisecond}
	c := New(api, Config{DropTail: DefaultDropTail, WorkerCount: 3}, nil)

	page, err := c.FetchMatchPage(context.Background(), faker, 20)
	if err != nil {
		t.Fatalf("FetchMatchPage failed: %v", err)
	}

	if api.gotCluster != riot.ClusterAsia || api.gotStart != 20 || api.gotCount != DefaultPageSize {
		t.Errorf("id request = %s start=%d count=%d", api.gotCluster, api.gotStart, api.gotCount)
	}
	if len(page.Matches) != 10 || len(page.Timelines) != 10 {
		t.Fatalf("got %d matches, %d timelines, want 10 each", len(page.Matches), len(page.Timelines))
	}
	if api.matchCalls != 10 || api.timelineCalls != 10 {
		t.Errorf("dropped ids were fetched: %d match calls, %d timeline calls", api.matchCalls, api.timelineCalls)
	}
	if api.maxInFlight > 3 {
		t.Errorf("fan-out exceeded limit: %d in flight", api.maxInFlight)
	}

	for i := range page.Matches {
		want := page.MatchIDs[i]
		if got := page.Matches[i].Match.Metadata.MatchID; got != want {
			t.Errorf("matches[%d] = %s, want %s", i, got, want)
		}
		if got := page.Timelines[i].Timeline.Metadata.MatchID; got != want {
			t.Errorf("timelines[%d] = %s, want %s", i, got, want)
		}
		if n := len(page.Matches[i].Match.Info.Participants); n != 10 {
			t.Errorf("matches[%d] has %d participants", i, n)
		}
	}
}

func TestFetchMatchPage_PerIDErrorPlaceholder(t *testing.T) {
	ids := makeIDs(14)
	api := &fakeAPI{ids: ids, failMatch: map[string]bool{ids[2]: true}}
	c := New(api, Config{DropTail: 10}, nil)

	page, err := c.FetchMatchPage(context.Background(), faker, 0)
	if err != nil {
		t.Fatalf("page must not fail for one bad id: %v", err)
	}
	if len(page.Matches) != 4 {
		t.Fatalf("got %d matches, want 4", len(page.Matches))
	}

	bad := page.Matches[2]
	if bad.OK() || bad.Err == nil || bad.Err.StatusCode != 404 {
		t.Errorf("expected 404 placeholder, got %+v", bad)
	}
	if bad.MatchID != ids[2] {
		t.Errorf("placeholder MatchID = %s", bad.MatchID)
	}
	if !page.Timelines[2].OK() {
		t.Error("timeline for the failed match should still be fetched")
	}
	for _, i := range []int{0, 1, 3} {
		if !page.Matches[i].OK() {
			t.Errorf("matches[%d] unexpectedly failed", i)
		}
	}
}

func TestFetchMatchPage_IDListFailure(t *testing.T) {
	api := &fakeAPI{idsErr: &riot.UpstreamError{StatusCode: 429, Message: "Rate limit exceeded"}}
	c := New(api, Config{}, nil)

	_, err := c.FetchMatchPage(context.Background(), faker, 0)
	if !errors.Is(err, riot.ErrRateLimited) {
		t.Errorf("expected rate limited error, got %v", err)
	}
}

func TestFetchSingleSides(t *testing.T) {
	api := &fakeAPI{ids: makeIDs(12)}
	c := New(api, Config{DropTail: 10}, nil)

	matches, err := c.FetchMatches(context.Background(), faker, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches.Matches) != 2 || matches.Timelines != nil {
		t.Errorf("FetchMatches returned %d matches, timelines=%v", len(matches.Matches), matches.Timelines)
	}
	if api.timelineCalls != 0 {
		t.Errorf("FetchMatches fetched %d timelines", api.timelineCalls)
	}

	timelines, err := c.FetchTimelines(context.Background(), faker, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(timelines.Timelines) != 2 || timelines.Matches != nil {
		t.Errorf("FetchTimelines returned %d timelines, matches=%v", len(timelines.Timelines), timelines.Matches)
	}
}

func TestStreamMatchPage_Order(t *testing.T) {
	api := &fakeAPI{ids: makeIDs(18), maxDelay: 5 * time.Millisecond}
	c := New(api, Config{DropTail: 10, WorkerCount: 8}, nil)

	var order []int
	page, err := c.StreamMatchPage(context.Background(), faker, 0, func(i int, m MatchSlot, tl TimelineSlot) error {
		order = append(order, i)
		if m.MatchID != tl.MatchID {
			t.Errorf("slot %d misaligned: %s vs %s", i, m.MatchID, tl.MatchID)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(order) != len(page.MatchIDs) {
		t.Fatalf("emitted %d slots, want %d", len(order), len(page.MatchIDs))
	}
	for i, got := range order {
		if got != i {
			t.Fatalf("emission order %v", order)
		}
	}
}

func TestStreamMatchPage_EmitError(t *testing.T) {
	api := &fakeAPI{ids: makeIDs(20)}
	c := New(api, Config{DropTail: 10}, nil)

	stop := errors.New("client went away")
	calls := 0
	_, err := c.StreamMatchPage(context.Background(), faker, 0, func(int, MatchSlot, TimelineSlot) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("expected emit error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("emit called %d times after failing", calls)
	}
}

func TestSlotJSON_PlaceholderShape(t *testing.T) {
	slots := []MatchSlot{
		{MatchID: "KR_1", Match: testMatch("KR_1")},
		{MatchID: "KR_2", Err: &riot.UpstreamError{StatusCode: 404, Message: "match not found"}},
	}

	data, err := json.Marshal(slots)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `{"status":{"message":"match not found","status_code":404}}`) {
		t.Errorf("placeholder not in Riot error shape: %s", data)
	}

	var decoded []MatchSlot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if !decoded[0].OK() || decoded[0].MatchID != "KR_1" {
		t.Errorf("document slot decoded as %+v", decoded[0])
	}
	if decoded[1].OK() || decoded[1].Err.StatusCode != 404 {
		t.Errorf("placeholder slot decoded as %+v", decoded[1])
	}
}

func TestTimelineSlotJSON_UnknownShapes(t *testing.T) {
	for _, raw := range []string{`null`, `{}`, `{"message":"Request failed with status code 403"}`} {
		var slot TimelineSlot
		if err := json.Unmarshal([]byte(raw), &slot); err != nil {
			t.Errorf("%s: unexpected error %v", raw, err)
			continue
		}
		if slot.OK() || slot.Err == nil {
			t.Errorf("%s: expected placeholder, got %+v", raw, slot)
		}
	}
}
