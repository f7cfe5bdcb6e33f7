package relay

import "lolstats/internal/collector"

// StreamMessage is one frame of the /ws/matches stream. Slot frames carry
// Index, Match and Timeline; the final frame has Done set and Count slots
// sent. Error is set when the stream stops early.
type StreamMessage struct {
	Generation uint64                  `json:"generation"`
	Index      int                     `json:"index"`
	MatchID    string                  `json:"matchId,omitempty"`
	Match      *collector.MatchSlot    `json:"match,omitempty"`
	Timeline   *collector.TimelineSlot `json:"timeline,omitempty"`
	Done       bool                    `json:"done,omitempty"`
	Count      int                     `json:"count,omitempty"`
	Error      *ErrorResponse          `json:"error,omitempty"`
}
