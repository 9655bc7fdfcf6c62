package cli

import (
	"fmt"
	"os"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/brysenPfingsten/PirateEase/internal/core"
	"github.com/brysenPfingsten/PirateEase/pkg/console"
	logx "github.com/brysenPfingsten/PirateEase/pkg/logger"
)

const (
	bannerGreeting = "PirateEase: Hello! Welcome to the PirateEase support bot!"
	bannerHelp     = "PirateEase: You can ask me about the status of your order, have me refund a purchase, " +
		"have me check the availability of a product, or I can connect you with one of our live agents."
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start a support conversation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd)
		},
	}
}

func runChat(cmd *cobra.Command) error {
	if err := godotenv.Load(".env"); err != nil {
		logx.Debug().Err(err).Msg("no .env file loaded")
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return fmt.Errorf("process environment config: %w", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Support.Environment)})

	var rdb goredis.Cmdable
	if cfg.Redis.Enabled() {
		client, err := cfg.Redis.New()
		if err != nil {
			return fmt.Errorf("initialise redis client: %w", err)
		}
		defer client.Close()
		rdb = client
	}

	printer := console.NewPrinter(os.Stdout, time.Duration(cfg.Support.TypingDelayMS)*time.Millisecond)
	reader := console.NewReader(os.Stdin)

	b, err := buildBot(cfg, rdb, printer, reader)
	if err != nil {
		return err
	}
	logx.Info().Str("conversation_id", b.Session().ID()).Msg("conversation started")

	printer.Println(bannerGreeting)
	printer.Println(bannerHelp)

	ctx := cmd.Context()
	var response, input string
	for !b.ShouldDisconnect(response + input) {
		printer.Print("User: ")
		input = reader.ReadLine()

		response, err = b.ProcessQuery(ctx, input)
		if err != nil {
			return fmt.Errorf("process query: %w", err)
		}
		printer.Typewrite("PirateEase: " + response)
	}

	logx.Info().Str("conversation_id", b.Session().ID()).Msg("conversation ended")
	return nil
}
