package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypewriteZeroDelay(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 0)

	p.Typewrite("Ahoy!")
	assert.Equal(t, "Ahoy!\n", buf.String())
}

func TestTypewriteHandlesMultibyteRunes(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 1)

	p.Typewrite("Ahoy ☠")
	assert.Equal(t, "Ahoy ☠\n", buf.String())
}

func TestPrintAndPrintln(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, 0)

	p.Print("User: ")
	p.Println("done")
	assert.Equal(t, "User: done\n", buf.String())
}

func TestReadLineTrims(t *testing.T) {
	r := NewReader(strings.NewReader("  track my order  \nnext\n"))

	assert.Equal(t, "track my order", r.ReadLine())
	assert.Equal(t, "next", r.ReadLine())
}

func TestReadLineEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""))

	assert.Equal(t, "", r.ReadLine())
}
