// Package agents manages the live-agent roster: the notification pool, the
// exclusive allocation of an agent to a conversation, and the transcript
// handoff delivered to pooled agents.
package agents

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	"github.com/brysenPfingsten/PirateEase/internal/core/errx"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/model"
	logx "github.com/brysenPfingsten/PirateEase/pkg/logger"
)

// Notifier delivers a conversation transcript to one agent. Fire-and-forget:
// delivery failures are logged by the directory, never surfaced to the user.
type Notifier interface {
	Notify(ctx context.Context, agent string, transcript []string) error
}

// Directory is the pool of live agents. The notification pool is always
// exactly the subset of agents still marked available: membership is set at
// load time and an allocation removes the chosen agent in the same critical
// section that marks it unavailable. Availability is a one-way transition;
// an allocated agent stays unavailable for the rest of the process.
type Directory struct {
	mu       sync.Mutex
	agents   []*model.Agent
	pool     []*model.Agent
	catalog  *catalog.Catalog
	notifier Notifier
}

func NewDirectory(roster []model.Agent, cat *catalog.Catalog, notifier Notifier) *Directory {
	d := &Directory{catalog: cat, notifier: notifier}
	for i := range roster {
		a := roster[i]
		d.agents = append(d.agents, &a)
		if a.Available {
			d.pool = append(d.pool, d.agents[len(d.agents)-1])
		}
	}
	return d
}

// Allocate connects the conversation to a uniformly random available agent.
// Marking the agent unavailable and removing it from the pool happen under
// one mutex hold, so no caller ever observes an allocated agent as pooled.
// Returns errx.ErrNoAgentAvailable when the pool is empty.
func (d *Directory) Allocate() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pool) == 0 {
		return "", errx.ErrNoAgentAvailable
	}
	idx := rand.Intn(len(d.pool))
	agent := d.pool[idx]
	agent.Available = false
	d.pool = append(d.pool[:idx], d.pool[idx+1:]...)

	logx.Info().Str("agent", agent.Name).Int("pool_size", len(d.pool)).Msg("agent allocated")
	return d.catalog.Render(catalog.CategoryConnectingAgent, map[string]string{"agent": agent.Name}), nil
}

// NotifyAll delivers the transcript to every currently pooled agent and
// returns the number of agents notified. No acknowledgment, no retry.
func (d *Directory) NotifyAll(ctx context.Context, transcript []string) int {
	d.mu.Lock()
	pooled := make([]string, 0, len(d.pool))
	for _, a := range d.pool {
		pooled = append(pooled, a.Name)
	}
	d.mu.Unlock()

	for _, name := range pooled {
		if err := d.notifier.Notify(ctx, name, transcript); err != nil {
			logx.Error().Err(err).Str("agent", name).Msg("transcript handoff failed")
		}
	}
	return len(pooled)
}

// KnownName reports whether any agent's name, available or not, appears in
// the given text. Used only for conversation termination detection; name
// recognition is independent of pool membership.
func (d *Directory) KnownName(text string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, a := range d.agents {
		if strings.Contains(text, a.Name) {
			return true
		}
	}
	return false
}

// AvailableCount returns the number of agents still in the pool.
func (d *Directory) AvailableCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pool)
}
