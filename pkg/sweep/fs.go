package sweep

import (
	"errors"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// readBatch is how many directory entries are fetched per ReadDir call.
const readBatch = 64

// FS is the filesystem the sweeper works against.
type FS interface {
	// Stat resolves the metadata of path, following symlinks.
	Stat(path string) (fs.FileInfo, error)
	// ListChildren opens the directory and returns a sequence over the full
	// paths of its children. An error from ListChildren means the directory
	// could not be listed at all. An error yielded by the sequence means the
	// listing broke down part way; children yielded before it are valid, and
	// OS yields nothing after it.
	ListChildren(dirPath string) (iter.Seq2[string, error], error)
	// Remove deletes a single file.
	Remove(path string) error
}

// OS is the FS backed by the host operating system.
type OS struct{}

func (OS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (OS) Remove(path string) error {
	return os.Remove(path)
}

func (OS) ListChildren(dirPath string) (iter.Seq2[string, error], error) {
	f, err := os.Open(dirPath)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "readdir", Path: dirPath, Err: errors.New("not a directory")}
	}

	return func(yield func(string, error) bool) {
		defer f.Close()
		for {
			entries, err := f.ReadDir(readBatch)
			for _, entry := range entries {
				if !yield(filepath.Join(dirPath, entry.Name()), nil) {
					return
				}
			}
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				// The directory stream is broken past this point, so there is
				// nothing left to iterate.
				yield("", err)
				return
			}
		}
	}, nil
}
