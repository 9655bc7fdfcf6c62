// Package session keeps the per-conversation mutable state: remembered
// identifiers and the ordered transcript of exchanged messages. One Session is
// created at conversation start and passed explicitly to every component that
// needs it; nothing here is global.
package session

import "github.com/google/uuid"

// Identifier keys observed during a conversation.
const (
	KeyOrderID  = "order_id"
	KeyRefundID = "refund_id"
	KeyItemName = "item_name"
)

// Session is the process-lifetime conversation state. Identifiers, once set,
// are trusted without re-validation on later turns. The transcript is
// append-only within a session.
type Session struct {
	id         string
	values     map[string]string
	transcript []string
}

func New() *Session {
	return &Session{
		id:     uuid.NewString(),
		values: make(map[string]string),
	}
}

// ID returns the conversation id.
func (s *Session) ID() string {
	return s.id
}

// Get returns the remembered value for key.
func (s *Session) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether key has been remembered.
func (s *Session) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Set remembers a value for key.
func (s *Session) Set(key, value string) {
	s.values[key] = value
}

// Append adds one message line to the transcript.
func (s *Session) Append(line string) {
	s.transcript = append(s.transcript, line)
}

// Transcript returns a copy of the transcript so callers cannot mutate the
// session's log.
func (s *Session) Transcript() []string {
	out := make([]string, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// Reset clears identifiers and transcript. Equivalent to starting a fresh
// conversation while keeping the same id.
func (s *Session) Reset() {
	s.values = make(map[string]string)
	s.transcript = nil
}
