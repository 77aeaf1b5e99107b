package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/tomekjarosik/tildesweep/pkg/report"
)

type options struct {
	noColor bool
}

type Option func(opts *options)

// WithoutColor turns colouring off for this Console only. Without it,
// colour follows fatih/color's terminal detection.
func WithoutColor() Option {
	return func(o *options) {
		o.noColor = true
	}
}

// Console prints sweep events as one line each.
type Console struct {
	w io.Writer

	entering *color.Color
	leaving  *color.Color
	deleted  *color.Color
	problem  *color.Color
	banner   *color.Color
	warning  *color.Color
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer, opts ...Option) *Console {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	newColor := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if o.noColor {
			c.DisableColor()
		}
		return c
	}
	return &Console{
		w:        w,
		entering: newColor(color.FgCyan, color.Bold),
		leaving:  newColor(color.FgBlue, color.Bold),
		deleted:  newColor(color.FgGreen, color.Bold),
		problem:  newColor(color.FgRed, color.Bold),
		banner:   newColor(color.FgYellow, color.Bold),
		warning:  newColor(color.FgYellow),
	}
}

func (c *Console) Entering(dirPath string) {
	c.entering.Fprintf(c.w, "-> Entering %s\n", dirPath)
}

func (c *Console) Leaving(dirPath string) {
	c.leaving.Fprintf(c.w, "<- Leaving %s\n", dirPath)
}

func (c *Console) Deleted(path string) {
	c.deleted.Fprintf(c.w, "%s deleted\n", path)
}

func (c *Console) Problem(p *report.Problem) {
	if p.Err == nil {
		c.problem.Fprintf(c.w, "Problem with this %s: %s\n", p.Kind.Subject(), p.Path)
		return
	}
	c.problem.Fprintf(c.w, "Problem with this %s: %s -> %v\n", p.Kind.Subject(), p.Path, p.Err)
}

// Banner prints a highlighted line marking the start or end of a run.
func (c *Console) Banner(format string, args ...interface{}) {
	c.banner.Fprintf(c.w, format+"\n", args...)
}

// PrintSummary prints the closing banner of a verbose run.
func (c *Console) PrintSummary(stats *report.Stats) {
	deleted := int(stats.FilesDeleted())
	problems := int(stats.Problems())
	c.Banner("End of execution - removed %d file%s, %d problem%s",
		deleted, Pluralize(deleted, "", "s"), problems, Pluralize(problems, "", "s"))
}

// PrintWarning prints a warning message with yellow color
func (c *Console) PrintWarning(format string, args ...interface{}) {
	fmt.Fprintf(c.w, "%s - "+format+"\n", append([]interface{}{c.warning.Sprint("warning")}, args...)...)
}

// Pluralize returns the singular or plural form based on count
func Pluralize(count int, singular, plural string) string {
	if count == 1 {
		return singular
	}
	return plural
}
