package traverse

import (
	"context"
	"fmt"

	"github.com/tomekjarosik/tildesweep/pkg/report"
	"github.com/tomekjarosik/tildesweep/pkg/sweep"
)

// Evaluator handles every regular file the engine reaches.
type Evaluator interface {
	Evaluate(ctx context.Context, path string)
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(ctx context.Context, path string)

func (f EvaluatorFunc) Evaluate(ctx context.Context, path string) {
	f(ctx, path)
}

// Engine walks directory trees depth-first and hands regular files to an
// Evaluator. Failures on single entries are reported and never stop a walk.
type Engine struct {
	sweepOptions sweep.Options
	fsys         sweep.FS
	evaluator    Evaluator
	reporter     report.Reporter
}

// New creates an Engine. A nil fsys uses the host filesystem and a nil
// reporter discards every event.
func New(sweepOptions sweep.Options, fsys sweep.FS, evaluator Evaluator, reporter report.Reporter) *Engine {
	if fsys == nil {
		fsys = sweep.OS{}
	}
	if reporter == nil {
		reporter = report.Discard
	}
	return &Engine{
		sweepOptions: sweepOptions,
		fsys:         fsys,
		evaluator:    evaluator,
		reporter:     reporter,
	}
}

// Walk visits root at depth 0. The only error it returns is the context's,
// when the walk was interrupted.
func (e *Engine) Walk(ctx context.Context, root string) error {
	e.visit(ctx, root, 0)
	return ctx.Err()
}

func (e *Engine) visit(ctx context.Context, path string, depth uint) {
	if ctx.Err() != nil {
		return
	}

	info, err := e.fsys.Stat(path)
	if err != nil {
		e.reporter.Problem(report.NewProblem(report.EntryUnresolvable, path, err))
		return
	}

	switch {
	case info.IsDir():
		e.visitDirectory(ctx, path, depth)
	case info.Mode().IsRegular():
		e.visitFile(ctx, path)
	default:
		e.reporter.Problem(report.NewProblem(report.EntryUnresolvable, path,
			fmt.Errorf("unsupported file type %s", info.Mode().Type())))
	}
}

// visitDirectory lists a directory and visits each child one level deeper.
// The directory itself is never removed.
func (e *Engine) visitDirectory(ctx context.Context, dirPath string, depth uint) {
	if !e.sweepOptions.MayDescend(dirPath, depth) {
		return
	}

	children, err := e.fsys.ListChildren(dirPath)
	if err != nil {
		e.reporter.Problem(report.NewProblem(report.DirectoryUnlistable, dirPath, err))
		return
	}

	if e.sweepOptions.Verbose {
		e.reporter.Entering(dirPath)
	}
	for child, err := range children {
		if ctx.Err() != nil {
			break
		}
		if err != nil {
			e.reporter.Problem(report.NewProblem(report.ChildEnumerationError, dirPath, err))
			continue
		}
		e.visit(ctx, child, depth+1)
	}
	if e.sweepOptions.Verbose {
		e.reporter.Leaving(dirPath)
	}
}

func (e *Engine) visitFile(ctx context.Context, path string) {
	e.evaluator.Evaluate(ctx, path)
}
