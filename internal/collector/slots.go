package collector

import (
	"bytes"

	json "github.com/goccy/go-json"

	"lolstats/internal/riot"
)

// MatchSlot is one entry of a fetched page: either the match document or the
// upstream error that replaced it. On the wire a failed slot is Riot's error
// document, so consumers must check the shape before reading fields.
type MatchSlot struct {
	MatchID string
	Match   *riot.Match
	Err     *riot.UpstreamError
}

// TimelineSlot is the timeline counterpart of MatchSlot
type TimelineSlot struct {
	MatchID  string
	Timeline *riot.Timeline
	Err      *riot.UpstreamError
}

// OK reports whether the slot holds a usable match document
func (s MatchSlot) OK() bool { return s.Err == nil && s.Match != nil }

// OK reports whether the slot holds a usable timeline document
func (s TimelineSlot) OK() bool { return s.Err == nil && s.Timeline != nil }

func (s MatchSlot) MarshalJSON() ([]byte, error) {
	if !s.OK() {
		return json.Marshal(placeholder(s.Err).Body())
	}
	return json.Marshal(s.Match)
}

func (s *MatchSlot) UnmarshalJSON(data []byte) error {
	uerr, isDoc := inspectSlot(data)
	if !isDoc {
		s.Err = uerr
		return nil
	}
	var m riot.Match
	if err := json.Unmarshal(data, &m); err != nil {
		s.Err = &riot.UpstreamError{Message: "malformed match document", Err: err}
		return nil
	}
	s.Match = &m
	s.MatchID = m.Metadata.MatchID
	return nil
}

func (s TimelineSlot) MarshalJSON() ([]byte, error) {
	if !s.OK() {
		return json.Marshal(placeholder(s.Err).Body())
	}
	return json.Marshal(s.Timeline)
}

func (s *TimelineSlot) UnmarshalJSON(data []byte) error {
	uerr, isDoc := inspectSlot(data)
	if !isDoc {
		s.Err = uerr
		return nil
	}
	var tl riot.Timeline
	if err := json.Unmarshal(data, &tl); err != nil {
		s.Err = &riot.UpstreamError{Message: "malformed timeline document", Err: err}
		return nil
	}
	s.Timeline = &tl
	s.MatchID = tl.Metadata.MatchID
	return nil
}

func placeholder(err *riot.UpstreamError) *riot.UpstreamError {
	if err == nil {
		return &riot.UpstreamError{Message: "missing document"}
	}
	return err
}

// inspectSlot decides whether data is a real document (has "info") or an error
// placeholder. For placeholders it returns the decoded error.
func inspectSlot(data []byte) (*riot.UpstreamError, bool) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return &riot.UpstreamError{Message: "missing document"}, false
	}

	var shape struct {
		Status *riot.ErrorStatus `json:"status"`
		Info   json.RawMessage   `json:"info"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return &riot.UpstreamError{Message: "malformed document", Err: err}, false
	}
	if shape.Info != nil {
		return nil, true
	}
	if shape.Status != nil {
		return &riot.UpstreamError{StatusCode: shape.Status.StatusCode, Message: shape.Status.Message}, false
	}
	return &riot.UpstreamError{Message: "unrecognised document"}, false
}
