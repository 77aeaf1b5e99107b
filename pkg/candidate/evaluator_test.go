package candidate

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomekjarosik/tildesweep/pkg/report"
	"github.com/tomekjarosik/tildesweep/pkg/sweep"
)

type scriptedConfirmer struct {
	answers []bool
	asked   []string
}

func (s *scriptedConfirmer) Confirm(_ context.Context, name string) bool {
	s.asked = append(s.asked, name)
	if len(s.answers) == 0 {
		return false
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer
}

type failingRemover struct {
	err error
}

func (f failingRemover) Remove(string) error {
	return f.err
}

func createFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
	return path
}

func TestHasBackupSuffix(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"draft.txt~", true},
		{"~", true},
		{".emacs~", true},
		{"~draft.txt", false},
		{"draft~.txt", false},
		{"notes.txt", false},
		{"draft.txt.bak", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, HasBackupSuffix(tt.name), "name %q", tt.name)
	}
}

func TestEvaluate_RemovesCandidate(t *testing.T) {
	dir := t.TempDir()
	backup := createFile(t, dir, "draft.txt~")
	keep := createFile(t, dir, "notes.txt")

	rec := &report.Recorder{}
	e := New(sweep.Options{}, sweep.OS{}, WithReporter(rec))
	e.Evaluate(context.Background(), backup)
	e.Evaluate(context.Background(), keep)

	assert.NoFileExists(t, backup)
	assert.FileExists(t, keep)
	assert.Empty(t, rec.Events, "quiet run must not report anything")
}

func TestEvaluate_VerboseReportsFullPath(t *testing.T) {
	dir := t.TempDir()
	backup := createFile(t, dir, "old.md~")
	keep := createFile(t, dir, "old.md")

	rec := &report.Recorder{}
	e := New(sweep.Options{Verbose: true}, sweep.OS{}, WithReporter(rec))
	e.Evaluate(context.Background(), backup)
	e.Evaluate(context.Background(), keep)

	assert.Equal(t, []string{backup}, rec.DeletedPaths())
	assert.Len(t, rec.Events, 1, "non-candidates are skipped silently")
}

func TestEvaluate_ConfirmationAsksWithNameOnly(t *testing.T) {
	dir := t.TempDir()
	first := createFile(t, dir, "a~")
	second := createFile(t, dir, "b~")

	confirmer := &scriptedConfirmer{answers: []bool{false, true}}
	rec := &report.Recorder{}
	e := New(sweep.Options{Confirm: true, Verbose: true}, sweep.OS{},
		WithConfirmer(confirmer), WithReporter(rec))

	e.Evaluate(context.Background(), first)
	e.Evaluate(context.Background(), second)

	assert.Equal(t, []string{"a~", "b~"}, confirmer.asked)
	assert.FileExists(t, first, "declined file must be kept")
	assert.NoFileExists(t, second)
	assert.Empty(t, rec.Problems(), "declining is not a problem")
	assert.Equal(t, []string{second}, rec.DeletedPaths())
}

func TestEvaluate_NoConfirmationForNonCandidates(t *testing.T) {
	dir := t.TempDir()
	keep := createFile(t, dir, "notes.txt")

	confirmer := &scriptedConfirmer{answers: []bool{true}}
	e := New(sweep.Options{Confirm: true}, sweep.OS{}, WithConfirmer(confirmer))
	e.Evaluate(context.Background(), keep)

	assert.Empty(t, confirmer.asked)
	assert.FileExists(t, keep)
}

func TestEvaluate_ConfirmWithoutConfirmerDeclines(t *testing.T) {
	dir := t.TempDir()
	backup := createFile(t, dir, "a~")

	e := New(sweep.Options{Confirm: true}, sweep.OS{})
	e.Evaluate(context.Background(), backup)

	assert.FileExists(t, backup)
}

func TestEvaluate_DeletionFailure(t *testing.T) {
	cause := fs.ErrPermission
	rec := &report.Recorder{}
	e := New(sweep.Options{Verbose: true}, failingRemover{err: cause}, WithReporter(rec))

	e.Evaluate(context.Background(), "/some/dir/locked~")

	problems := rec.Problems()
	require.Len(t, problems, 1)
	assert.Equal(t, report.DeletionFailed, problems[0].Kind)
	assert.Equal(t, "/some/dir/locked~", problems[0].Path)
	assert.True(t, errors.Is(problems[0], fs.ErrPermission))
	assert.Empty(t, rec.DeletedPaths())
}

func TestEvaluate_MissingFileIsDeletionFailure(t *testing.T) {
	rec := &report.Recorder{}
	e := New(sweep.Options{}, sweep.OS{}, WithReporter(rec))

	e.Evaluate(context.Background(), filepath.Join(t.TempDir(), "gone~"))

	problems := rec.Problems()
	require.Len(t, problems, 1)
	assert.ErrorIs(t, problems[0], fs.ErrNotExist)
}

func TestEvaluate_NameUnrepresentable(t *testing.T) {
	for _, path := range []string{"", "/", "..", "dir/..", "bad\xff~"} {
		rec := &report.Recorder{}
		e := New(sweep.Options{}, failingRemover{err: errors.New("must not be called")}, WithReporter(rec))

		e.Evaluate(context.Background(), path)

		problems := rec.Problems()
		require.Len(t, problems, 1, "path %q", path)
		assert.Equal(t, report.NameUnrepresentable, problems[0].Kind, "path %q", path)
	}
}

func TestEvaluate_CustomMatcher(t *testing.T) {
	dir := t.TempDir()
	bak := createFile(t, dir, "settings.json.bak")
	tilde := createFile(t, dir, "settings.json~")

	e := New(sweep.Options{}, sweep.OS{}, WithMatcher(func(name string) bool {
		return filepath.Ext(name) == ".bak"
	}))
	e.Evaluate(context.Background(), bak)
	e.Evaluate(context.Background(), tilde)

	assert.NoFileExists(t, bak)
	assert.FileExists(t, tilde)
}

type cancellingConfirmer struct {
	cancel context.CancelFunc
}

func (c cancellingConfirmer) Confirm(context.Context, string) bool {
	c.cancel()
	return true
}

func TestEvaluate_AnswerAfterCancelIsIgnored(t *testing.T) {
	dir := t.TempDir()
	backup := createFile(t, dir, "a~")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rec := &report.Recorder{}
	e := New(sweep.Options{Confirm: true, Verbose: true}, sweep.OS{},
		WithConfirmer(cancellingConfirmer{cancel: cancel}), WithReporter(rec))
	e.Evaluate(ctx, backup)

	assert.FileExists(t, backup)
	assert.Empty(t, rec.Events)
}

func TestEvaluate_CancelledWithoutConfirmation(t *testing.T) {
	dir := t.TempDir()
	backup := createFile(t, dir, "a~")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	New(sweep.Options{}, sweep.OS{}).Evaluate(ctx, backup)

	assert.FileExists(t, backup)
}
