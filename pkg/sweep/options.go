package sweep

// CurrentDir is the root that is always descended, even without Recursive.
const CurrentDir = "."

// Options controls a single sweep run. It is built once before the first
// root is visited and is only read afterwards.
type Options struct {
	Recursive bool // descend into subdirectories
	Verbose   bool // emit entering/leaving/deleted trace lines
	Confirm   bool // ask before every removal
	MaxDepth  uint // 0 means unlimited
}

// MayDescend reports whether a directory at the given depth is listed.
// The root is depth 0; a MaxDepth of N still lists directories at depth N.
func (o Options) MayDescend(dirPath string, depth uint) bool {
	if !o.Recursive && dirPath != CurrentDir {
		return false
	}
	return o.MaxDepth == 0 || depth <= o.MaxDepth
}
