// Package bot is the top-level conversation orchestrator: one call per user
// turn that decides between sentiment escalation, a predefined answer and
// intent-routed handling, while maintaining the transcript.
package bot

import (
	"context"
	"strings"

	"github.com/brysenPfingsten/PirateEase/internal/support/agents"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/handlers"
	"github.com/brysenPfingsten/PirateEase/internal/support/nlu"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
	logx "github.com/brysenPfingsten/PirateEase/pkg/logger"
)

// Escalator connects the conversation to a live agent, returning the
// structured greeting/connection pair.
type Escalator interface {
	Escalate(ctx context.Context) (handlers.Escalation, error)
}

// Bot runs the per-turn pipeline. Priority per turn: sentiment escalation
// over predefined answers over intent routing. Complaints get a human
// immediately; exact-match canned answers are cheaper and more precise than
// keyword classification, so they short-circuit it.
type Bot struct {
	session     *session.Session
	classifier  *nlu.Classifier
	sentiment   *nlu.SentimentGate
	registry    *handlers.Registry
	qa          handlers.QueryHandler
	escalator   Escalator
	catalog     *catalog.Catalog
	directory   *agents.Directory
	exitPhrases []string
}

func New(
	sess *session.Session,
	classifier *nlu.Classifier,
	sentiment *nlu.SentimentGate,
	registry *handlers.Registry,
	qa handlers.QueryHandler,
	escalator Escalator,
	cat *catalog.Catalog,
	directory *agents.Directory,
	exitPhrases []string,
) *Bot {
	return &Bot{
		session:     sess,
		classifier:  classifier,
		sentiment:   sentiment,
		registry:    registry,
		qa:          qa,
		escalator:   escalator,
		catalog:     cat,
		directory:   directory,
		exitPhrases: exitPhrases,
	}
}

// Session exposes the conversation state, mainly for the prompt collaborator
// and tests.
func (b *Bot) Session() *session.Session {
	return b.session
}

// ProcessQuery runs one turn: records the query, produces exactly one
// response, records it, returns it.
func (b *Bot) ProcessQuery(ctx context.Context, query string) (string, error) {
	b.session.Append("User: " + query)

	dbResponse, err := b.qa.Handle(ctx, query)
	if err != nil {
		return "", err
	}

	var response string
	switch {
	case b.sentiment.Negative(query):
		logx.Debug().Str("conversation_id", b.session.ID()).Msg("negative sentiment detected, escalating")
		esc, err := b.escalator.Escalate(ctx)
		if err != nil {
			return "", err
		}
		response = b.catalog.Pick(catalog.CategoryNegative) + "\n" + esc.Connection

	case dbResponse != "":
		response = dbResponse

	default:
		intent := b.classifier.Classify(query)
		logx.Debug().Str("conversation_id", b.session.ID()).Str("intent", string(intent)).Msg("query routed")
		response, err = b.registry.Resolve(intent).Handle(ctx, strings.ToLower(strings.TrimSpace(query)))
		if err != nil {
			return "", err
		}
	}

	b.session.Append("PirateEase: " + response)
	return response, nil
}

// ShouldDisconnect reports whether the conversation is over: a live-agent
// connection was initiated (an agent's name appears in the text) or a
// farewell trigger phrase does. A query for the caller to run after each
// turn, not a side effect of processing.
func (b *Bot) ShouldDisconnect(text string) bool {
	if b.directory.KnownName(text) {
		return true
	}
	lowered := strings.ToLower(text)
	for _, phrase := range b.exitPhrases {
		if phrase != "" && strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
