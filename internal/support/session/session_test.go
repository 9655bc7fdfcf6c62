package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiers(t *testing.T) {
	s := New()

	_, ok := s.Get(KeyOrderID)
	assert.False(t, ok)
	assert.False(t, s.Has(KeyOrderID))

	s.Set(KeyOrderID, "1")
	v, ok := s.Get(KeyOrderID)
	require.True(t, ok)
	assert.Equal(t, "1", v)
	assert.True(t, s.Has(KeyOrderID))
}

func TestTranscriptIsAppendOnlyCopy(t *testing.T) {
	s := New()
	s.Append("User: hello")
	s.Append("PirateEase: ahoy")

	got := s.Transcript()
	require.Equal(t, []string{"User: hello", "PirateEase: ahoy"}, got)

	// Mutating the returned slice must not affect the session's log.
	got[0] = "tampered"
	assert.Equal(t, []string{"User: hello", "PirateEase: ahoy"}, s.Transcript())
}

func TestReset(t *testing.T) {
	s := New()
	s.Set(KeyRefundID, "102")
	s.Append("User: refund my order")

	s.Reset()

	assert.False(t, s.Has(KeyRefundID))
	assert.Empty(t, s.Transcript())
}

func TestSessionsHaveDistinctIDs(t *testing.T) {
	a, b := New(), New()

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}
