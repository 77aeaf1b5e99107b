package report

// Reporter receives every trace and problem event of a sweep, in the order
// they happen.
type Reporter interface {
	Entering(dirPath string)
	Leaving(dirPath string)
	Deleted(path string)
	Problem(p *Problem)
}

// Discard drops every event.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Entering(string)  {}
func (discard) Leaving(string)   {}
func (discard) Deleted(string)   {}
func (discard) Problem(*Problem) {}

// Multi fans each event out to all reporters in order.
func Multi(reporters ...Reporter) Reporter {
	return multi(reporters)
}

type multi []Reporter

func (m multi) Entering(dirPath string) {
	for _, r := range m {
		r.Entering(dirPath)
	}
}

func (m multi) Leaving(dirPath string) {
	for _, r := range m {
		r.Leaving(dirPath)
	}
}

func (m multi) Deleted(path string) {
	for _, r := range m {
		r.Deleted(path)
	}
}

func (m multi) Problem(p *Problem) {
	for _, r := range m {
		r.Problem(p)
	}
}
