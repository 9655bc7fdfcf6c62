package model

// SupportConfig holds all tunables of the dialogue pipeline, sourced from
// environment variables (loaded from .env for local runs).
type SupportConfig struct {
	Environment string `envconfig:"SUPPORT_ENVIRONMENT" default:"development"`

	// DataDir is the directory holding the JSON tables and phrase catalogs.
	DataDir string `envconfig:"SUPPORT_DATA_DIR" default:"data"`

	// MaxIDAttempts bounds the order/refund id collection loop. When the user
	// exhausts the attempts the handler gives up with a dedicated response
	// instead of looping forever.
	MaxIDAttempts int `envconfig:"SUPPORT_MAX_ID_ATTEMPTS" default:"3"`

	// TypingDelayMS is the per-character delay of the typed-out console
	// output. Zero disables the effect.
	TypingDelayMS int `envconfig:"SUPPORT_TYPING_DELAY_MS" default:"20"`

	// UnmatchedLogPath receives queries no handler understood when Redis is
	// not configured.
	UnmatchedLogPath string `envconfig:"SUPPORT_UNMATCHED_LOG" default:"unrecognized_queries.txt"`
}
