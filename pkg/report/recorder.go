package report

// EventType identifies a recorded event.
type EventType int

const (
	EventEntering EventType = iota
	EventLeaving
	EventDeleted
	EventProblem
)

// Event is a single recorded report.
type Event struct {
	Type    EventType
	Path    string
	Problem *Problem
}

// Recorder keeps every event in memory. It is meant for tests and for
// callers that want to inspect a run afterwards.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Entering(dirPath string) {
	r.Events = append(r.Events, Event{Type: EventEntering, Path: dirPath})
}

func (r *Recorder) Leaving(dirPath string) {
	r.Events = append(r.Events, Event{Type: EventLeaving, Path: dirPath})
}

func (r *Recorder) Deleted(path string) {
	r.Events = append(r.Events, Event{Type: EventDeleted, Path: path})
}

func (r *Recorder) Problem(p *Problem) {
	r.Events = append(r.Events, Event{Type: EventProblem, Path: p.Path, Problem: p})
}

// DeletedPaths returns the paths reported as deleted.
func (r *Recorder) DeletedPaths() []string {
	return r.paths(EventDeleted)
}

// Problems returns every recorded problem.
func (r *Recorder) Problems() []*Problem {
	var res []*Problem
	for _, e := range r.Events {
		if e.Type == EventProblem {
			res = append(res, e.Problem)
		}
	}
	return res
}

func (r *Recorder) paths(t EventType) []string {
	var res []string
	for _, e := range r.Events {
		if e.Type == t {
			res = append(res, e.Path)
		}
	}
	return res
}
