package report

import "fmt"

// Kind classifies a per-entry failure. None of them stop a run.
type Kind int

const (
	// EntryUnresolvable means the entry's metadata could not be read, or it
	// is neither a regular file nor a directory.
	EntryUnresolvable Kind = iota
	// DirectoryUnlistable means a directory could not be opened for listing.
	DirectoryUnlistable
	// ChildEnumerationError means listing broke down part way through a directory.
	ChildEnumerationError
	// DeletionFailed means removing a candidate file failed.
	DeletionFailed
	// NameUnrepresentable means no usable file name could be taken from the path.
	NameUnrepresentable
)

func (k Kind) String() string {
	switch k {
	case EntryUnresolvable:
		return "entry unresolvable"
	case DirectoryUnlistable:
		return "directory unlistable"
	case ChildEnumerationError:
		return "child enumeration error"
	case DeletionFailed:
		return "deletion failed"
	case NameUnrepresentable:
		return "name unrepresentable"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Subject is the noun used when printing a problem of this kind.
func (k Kind) Subject() string {
	switch k {
	case DirectoryUnlistable, ChildEnumerationError:
		return "directory"
	case DeletionFailed, NameUnrepresentable:
		return "file"
	default:
		return "entry"
	}
}

// Problem is a failure tied to a single filesystem entry.
type Problem struct {
	Kind Kind
	Path string
	Err  error
}

func NewProblem(kind Kind, path string, err error) *Problem {
	return &Problem{Kind: kind, Path: path, Err: err}
}

func (p *Problem) Error() string {
	if p.Err != nil {
		return fmt.Sprintf("%s: %s: %v", p.Kind, p.Path, p.Err)
	}
	return fmt.Sprintf("%s: %s", p.Kind, p.Path)
}

func (p *Problem) Unwrap() error {
	return p.Err
}
