// Package console provides the terminal presentation and input primitives:
// the typed-out printing effect and a line-buffered reader.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Printer writes bot output. Typewrite renders text character by character
// with a fixed delay; a zero delay disables the effect entirely.
type Printer struct {
	w     io.Writer
	delay time.Duration
}

func NewPrinter(w io.Writer, delay time.Duration) *Printer {
	return &Printer{w: w, delay: delay}
}

// Typewrite prints s one rune at a time followed by a newline.
func (p *Printer) Typewrite(s string) {
	if p.delay <= 0 {
		fmt.Fprintln(p.w, s)
		return
	}
	for _, r := range s {
		fmt.Fprint(p.w, string(r))
		time.Sleep(p.delay)
	}
	fmt.Fprintln(p.w)
}

// Println prints s with a trailing newline, no effect.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.w, s)
}

// Print prints s with no trailing newline, used for input prompts.
func (p *Printer) Print(s string) {
	fmt.Fprint(p.w, s)
}

// Reader reads user input line by line.
type Reader struct {
	scanner *bufio.Scanner
}

func NewReader(r io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(r)}
}

// ReadLine blocks for the next input line and returns it trimmed. Returns ""
// on end of input.
func (r *Reader) ReadLine() string {
	if !r.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(r.scanner.Text())
}
