package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// ExecuteCommandWithCapture executes a cobra command and captures its output
func ExecuteCommandWithCapture(t testing.TB, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCommandWithInput(t, cmd, args, strings.NewReader(""))
}

// ExecuteCommandWithInput is ExecuteCommandWithCapture with answers for
// interactive prompts read from stdin.
func ExecuteCommandWithInput(t testing.TB, cmd *cobra.Command, args []string, stdin io.Reader) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd.SetIn(stdin)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), err
}

// SampleStructure defines the complete directory/file structure
type SampleStructure struct {
	BaseDir string   // If empty, uses t.TempDir()
	Files   []string // Relative file paths
	Dirs    []string // Optional: explicit directory creation
}

// CreateSampleStructure creates a complete test directory structure
func CreateSampleStructure(t *testing.T, structure SampleStructure) string {
	t.Helper()

	baseDir := structure.BaseDir
	if baseDir == "" {
		baseDir = t.TempDir()
	}

	for _, dir := range structure.Dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(baseDir, dir), 0755))
	}

	for _, file := range structure.Files {
		fullPath := filepath.Join(baseDir, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(fullPath), 0755))
		require.NoError(t, os.WriteFile(fullPath, []byte("content of "+file), 0644))
	}

	return baseDir
}

// SampleTree is the tree most command tests start from:
//
//	notes.txt
//	draft.txt~
//	sub/old.md~
func SampleTree(t *testing.T) string {
	t.Helper()
	return CreateSampleStructure(t, SampleStructure{
		Files: []string{"notes.txt", "draft.txt~", "sub/old.md~"},
	})
}
