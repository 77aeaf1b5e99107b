package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type options struct {
	program     string
	maxAttempts int
	noColor     bool
}

type Option func(opts *options)

// WithProgram sets the name shown at the start of the prompt.
func WithProgram(name string) Option {
	return func(o *options) {
		o.program = name
	}
}

// WithMaxAttempts makes Confirm decline after n unrecognised answers.
// Zero, the default, asks until a valid answer arrives.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = n
	}
}

// WithoutColor prints the file name without highlighting.
func WithoutColor() Option {
	return func(o *options) {
		o.noColor = true
	}
}

type line struct {
	text string
	err  error
}

// Prompter asks yes/no questions on a line based console.
type Prompter struct {
	in        *bufio.Reader
	out       io.Writer
	highlight *color.Color
	options   options

	lines chan line
}

// New creates a Prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:        bufio.NewReader(in),
		out:       out,
		highlight: color.New(color.FgWhite, color.Bold),
		options:   options{program: "tildesweep"},
	}
	for _, o := range opts {
		o(&p.options)
	}
	if p.options.noColor {
		p.highlight.DisableColor()
	}
	return p
}

// Confirm asks whether name may be removed. Only "y", "yes", "n" and "no"
// are accepted; anything else repeats the question. A closed input or a
// cancelled ctx declines.
func (p *Prompter) Confirm(ctx context.Context, name string) bool {
	for attempt := 1; ctx.Err() == nil; attempt++ {
		fmt.Fprintf(p.out, "%s: remove '%s' (y/n) ? ", p.options.program, p.highlight.Sprint(name))

		var l line
		var ok bool
		select {
		case <-ctx.Done():
			fmt.Fprintln(p.out)
			return false
		case l, ok = <-p.readLines():
		}
		if !ok {
			fmt.Fprintln(p.out)
			return false
		}
		if answer, valid := parseAnswer(l.text); valid && (l.err == nil || errors.Is(l.err, io.EOF)) {
			return answer
		}
		if errors.Is(l.err, io.EOF) {
			fmt.Fprintln(p.out)
			return false
		}
		if p.options.maxAttempts > 0 && attempt >= p.options.maxAttempts {
			return false
		}
	}
	return false
}

// readLines starts the single reader of p.in on first use. The reader stays
// blocked on input after a cancelled Confirm; the next Confirm picks up the
// line it delivers.
func (p *Prompter) readLines() <-chan line {
	if p.lines != nil {
		return p.lines
	}
	p.lines = make(chan line)
	go func() {
		defer close(p.lines)
		for {
			text, err := p.in.ReadString('\n')
			p.lines <- line{text: text, err: err}
			if errors.Is(err, io.EOF) {
				return
			}
		}
	}()
	return p.lines
}

func parseAnswer(text string) (answer bool, ok bool) {
	switch strings.TrimRight(text, "\r\n") {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}
