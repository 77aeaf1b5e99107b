package candidate

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tomekjarosik/tildesweep/pkg/report"
	"github.com/tomekjarosik/tildesweep/pkg/sweep"
)

var (
	errNoName      = errors.New("path has no file name")
	errInvalidUTF8 = errors.New("file name is not valid UTF-8")
)

// Remover deletes a single file.
type Remover interface {
	Remove(path string) error
}

// Confirmer asks the user whether a file may be removed.
type Confirmer interface {
	Confirm(ctx context.Context, name string) bool
}

type options struct {
	matcher   Matcher
	confirmer Confirmer
	reporter  report.Reporter
}

type Option func(opts *options)

// WithMatcher replaces HasBackupSuffix.
func WithMatcher(m Matcher) Option {
	return func(o *options) {
		o.matcher = m
	}
}

// WithConfirmer sets who is asked when Options.Confirm is on. Without one,
// every confirmation is declined.
func WithConfirmer(c Confirmer) Option {
	return func(o *options) {
		o.confirmer = c
	}
}

func WithReporter(r report.Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// Evaluator removes files whose name marks them as backups.
type Evaluator struct {
	sweepOptions sweep.Options
	remover      Remover
	options      options
}

// New creates an Evaluator removing files through remover.
func New(sweepOptions sweep.Options, remover Remover, opts ...Option) *Evaluator {
	e := &Evaluator{
		sweepOptions: sweepOptions,
		remover:      remover,
		options: options{
			matcher:  HasBackupSuffix,
			reporter: report.Discard,
		},
	}
	for _, o := range opts {
		o(&e.options)
	}
	return e
}

// Evaluate inspects a single file and removes it when it is a candidate.
// Non-candidates, declined confirmations and a cancelled ctx produce no
// report at all.
func (e *Evaluator) Evaluate(ctx context.Context, path string) {
	name, err := fileName(path)
	if err != nil {
		e.options.reporter.Problem(report.NewProblem(report.NameUnrepresentable, path, err))
		return
	}

	if !e.options.matcher(name) {
		return
	}

	if e.sweepOptions.Confirm && !e.confirm(ctx, name) {
		return
	}
	// an answer may arrive after an interrupt
	if ctx.Err() != nil {
		return
	}

	if err := e.remover.Remove(path); err != nil {
		e.options.reporter.Problem(report.NewProblem(report.DeletionFailed, path, err))
		return
	}
	if e.sweepOptions.Verbose {
		e.options.reporter.Deleted(path)
	}
}

func (e *Evaluator) confirm(ctx context.Context, name string) bool {
	if e.options.confirmer == nil {
		return false
	}
	return e.options.confirmer.Confirm(ctx, name)
}

// fileName returns the last element of path, rejecting paths that do not end
// in a real name.
func fileName(path string) (string, error) {
	trimmed := strings.TrimRight(path, "/"+string(filepath.Separator))
	if trimmed == "" {
		return "", errNoName
	}
	name := filepath.Base(trimmed)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		return "", errNoName
	}
	if !utf8.ValidString(name) {
		return "", errInvalidUTF8
	}
	return name, nil
}
