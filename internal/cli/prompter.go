package cli

import (
	"strconv"

	"github.com/brysenPfingsten/PirateEase/internal/support/catalog"
	"github.com/brysenPfingsten/PirateEase/internal/support/session"
	"github.com/brysenPfingsten/PirateEase/pkg/console"
)

// consolePrompter collects input from the terminal mid-turn. Every prompt and
// reply is recorded in the transcript, and non-numeric ids are re-prompted
// here so handlers only ever see parseable values.
type consolePrompter struct {
	catalog *catalog.Catalog
	session *session.Session
	printer *console.Printer
	reader  *console.Reader
}

func (p *consolePrompter) PromptNumericID(category string) string {
	for {
		msg := "PirateEase: " + p.catalog.Pick(category)
		p.printer.Typewrite(msg)
		p.session.Append(msg)

		raw := p.reader.ReadLine()
		p.session.Append("User: " + raw)
		if _, err := strconv.Atoi(raw); err == nil {
			return raw
		}

		invalid := "PirateEase: " + p.catalog.Pick(catalog.CategoryInvalidOrderID)
		p.session.Append(invalid)
		p.printer.Typewrite(invalid)
	}
}

func (p *consolePrompter) PromptText(category string) string {
	msg := "PirateEase: " + p.catalog.Pick(category)
	p.printer.Typewrite(msg)
	p.session.Append(msg)

	raw := p.reader.ReadLine()
	p.session.Append("User: " + raw)
	return raw
}

// Show displays a mid-turn message with the bot prefix.
func (p *consolePrompter) Show(text string) {
	p.printer.Typewrite("PirateEase: " + text)
}
