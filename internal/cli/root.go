// Package cli wires configuration, data tables and the dialogue pipeline
// behind the pirateease command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/brysenPfingsten/PirateEase/internal/support/model"
	pkgredis "github.com/brysenPfingsten/PirateEase/pkg/redis"
)

// AppConfig gathers every configurable parameter, sourced from environment
// variables (loaded from .env for local runs).
type AppConfig struct {
	Support model.SupportConfig
	Redis   pkgredis.Config
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pirateease",
		Short:         "PirateEase customer support bot",
		Long:          "PirateEase is a scripted customer-support agent: it tracks orders, processes refunds, checks product availability and can hand a conversation over to a live agent.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newChatCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
