package discovery

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelect_LauncherFanOut(t *testing.T) {
	// "2 2 1" with three per-node instances.
	pids := []int{100, 200, 300}
	counts := []int{2, 1}

	idx, err := Select(pids, 100, counts)
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	idx, err = Select(pids, 200, counts)
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	idx, err = Select(pids, 300, counts)
	require.NoError(t, err)
	require.Equal(t, 1, idx)
}

func TestSelect_UnsortedInputIsCallerResponsibility(t *testing.T) {
	// Select assumes pids is already sorted (Poll does the sort); an
	// out-of-order slice still resolves by position, not by value.
	pids := []int{300, 100, 200}
	counts := []int{1, 2}

	idx, err := Select(pids, 300, counts)
	require.NoError(t, err)
	require.Equal(t, 0, idx)
}

func TestSelect_PIDNotFound(t *testing.T) {
	_, err := Select([]int{1, 2}, 99, []int{2})
	require.Error(t, err)
}

func TestLookup_UsesPidofOnPath(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("stub pidof script assumes a POSIX shell")
	}

	dir := t.TempDir()
	stub := filepath.Join(dir, "pidof")
	require.NoError(t, os.WriteFile(stub, []byte("#!/bin/sh\necho 111 222\n"), 0o755))

	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	pids, err := lookup("whatever")
	require.NoError(t, err)
	require.ElementsMatch(t, []int{111, 222}, pids)
}
