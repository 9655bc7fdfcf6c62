package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brysenPfingsten/PirateEase/internal/support/model"
	"github.com/brysenPfingsten/PirateEase/pkg/console"
)

// Wires the pipeline against the shipped data directory, so malformed data
// files fail here rather than at startup.
func TestBuildBotFromShippedData(t *testing.T) {
	cfg := AppConfig{
		Support: model.SupportConfig{
			DataDir:          "../../data",
			MaxIDAttempts:    3,
			UnmatchedLogPath: t.TempDir() + "/unrecognized_queries.txt",
		},
	}
	printer := console.NewPrinter(&bytes.Buffer{}, 0)
	reader := console.NewReader(strings.NewReader(""))

	b, err := buildBot(cfg, nil, printer, reader)
	require.NoError(t, err)
	require.NotNil(t, b)
	require.NotEmpty(t, b.Session().ID())
}
