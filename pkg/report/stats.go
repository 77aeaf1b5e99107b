package report

import "sync/atomic"

// Stats counts events on their way to another Reporter. It only sees what
// the engine reports, so entered directories and deletions are counted in
// verbose runs only.
type Stats struct {
	next Reporter

	dirsEntered  atomic.Int64
	filesDeleted atomic.Int64
	problems     atomic.Int64
}

// NewStats wraps next. A nil next behaves like Discard.
func NewStats(next Reporter) *Stats {
	if next == nil {
		next = Discard
	}
	return &Stats{next: next}
}

func (s *Stats) Entering(dirPath string) {
	s.dirsEntered.Add(1)
	s.next.Entering(dirPath)
}

func (s *Stats) Leaving(dirPath string) {
	s.next.Leaving(dirPath)
}

func (s *Stats) Deleted(path string) {
	s.filesDeleted.Add(1)
	s.next.Deleted(path)
}

func (s *Stats) Problem(p *Problem) {
	s.problems.Add(1)
	s.next.Problem(p)
}

func (s *Stats) DirsEntered() int64 {
	return s.dirsEntered.Load()
}

func (s *Stats) FilesDeleted() int64 {
	return s.filesDeleted.Load()
}

func (s *Stats) Problems() int64 {
	return s.problems.Load()
}
