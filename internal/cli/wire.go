package cli

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/brysenPfingsten/PirateEase/internal/support/agents"
	"github.com/brysenPfingsten/PirateEase/internal/support/backend"
	"github.com/brysenPfingsten/PirateEase/internal/support/bot"
	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/handlers"
	"github.com/brysenPfingsten/PirateEase/internal/support/model"
	"github.com/brysenPfingsten/PirateEase/internal/support/nlu"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
	"github.com/brysenPfingsten/PirateEase/internal/support/sink"
	"github.com/brysenPfingsten/PirateEase/internal/support/store"
	"github.com/brysenPfingsten/PirateEase/pkg/console"
)

// buildBot assembles the whole dialogue pipeline for one conversation. rdb
// may be nil, in which case the file recorder and log notifier stand in for
// the Redis-backed sinks.
func buildBot(cfg AppConfig, rdb goredis.Cmdable, printer *console.Printer, reader *console.Reader) (*bot.Bot, error) {
	tables, err := store.Load(cfg.Support.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load data tables: %w", err)
	}

	cat := catalog.New(tables.Responses)
	sess := session.New()
	prompter := &consolePrompter{
		catalog: cat,
		session: sess,
		printer: printer,
		reader:  reader,
	}

	var (
		notifier agents.Notifier = agents.LogNotifier{}
		recorder sink.Recorder   = sink.NewFileRecorder(cfg.Support.UnmatchedLogPath)
	)
	if rdb != nil {
		notifier = agents.NewRedisNotifier(rdb)
		recorder = sink.NewRedisRecorder(rdb)
	}

	directory := agents.NewDirectory(tables.Agents, cat, notifier)
	orders := backend.NewOrders(tables.Orders, cat)
	refunds := backend.NewRefunds(tables.PastOrders, cat)
	inventory := backend.NewInventory(tables.Inventory, cat)

	liveAgent := handlers.NewLiveAgentHandler(directory, sess, cat)
	maxTries := cfg.Support.MaxIDAttempts
	registry := handlers.NewRegistry(map[model.Intent]handlers.QueryHandler{
		model.IntentOrder:     handlers.NewOrderHandler(orders, sess, cat, prompter, prompter, maxTries),
		model.IntentRefund:    handlers.NewRefundHandler(refunds, sess, cat, prompter, prompter, maxTries),
		model.IntentInventory: handlers.NewInventoryHandler(inventory, sess, prompter),
		model.IntentLiveAgent: liveAgent,
		model.IntentExit:      handlers.NewExitHandler(cat),
	}, handlers.NewDefaultHandler(recorder, cat))

	return bot.New(
		sess,
		nlu.NewClassifier(tables.Intents),
		nlu.NewSentimentGate(tables.NegativePhrases),
		registry,
		handlers.NewQAHandler(tables.Queries),
		liveAgent,
		cat,
		directory,
		tables.ExitPhrases(),
	), nil
}
