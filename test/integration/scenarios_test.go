// Package integration drives end-to-end scenarios against the
// testdata/hello fixture, built with libcommsplit
// preloaded: a real child process is driven and its observable output
// asserted on, rather than mocking the OS.
//
// These require a real MPI installation (mpicc on PATH, an mpirun-style
// launcher) and a built libcommsplit.so, neither of which this module
// vendors; they are gated behind the "mpi" build tag so a plain
// `go test ./...` run never requires them.
//go:build mpi

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFixtures(t *testing.T) (helloBin, libPath string) {
	t.Helper()
	dir := t.TempDir()

	helloBin = filepath.Join(dir, "hello")
	cmd := exec.Command("go", "build", "-o", helloBin, "./testdata/hello")
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run())

	libPath = filepath.Join(dir, "libcommsplit.so")
	cmd = exec.Command("go", "build", "-buildmode=c-shared", "-o", libPath, "../../interpose")
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run())

	return helloBin, libPath
}

func writeRanksFile(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranks.conf")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func runUnderMPI(t *testing.T, np int, libPath string, env []string, helloBin string) string {
	t.Helper()
	cmd := exec.Command("mpirun", "-np", fmt.Sprint(np), helloBin)
	cmd.Env = append(os.Environ(), env...)
	cmd.Env = append(cmd.Env, "LD_PRELOAD="+libPath)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	require.NoError(t, cmd.Run())
	return out.String()
}

// TestTwoColorSplit covers a four-rank job split into two colors.
func TestTwoColorSplit(t *testing.T) {
	helloBin, libPath := buildFixtures(t)
	ranks := writeRanksFile(t, []string{"0 /tmp", "0 /tmp", "1 /tmp", "1 /tmp"})

	out := runUnderMPI(t, 4, libPath, []string{"CS_FILE=" + ranks}, helloBin)

	require.Equal(t, 4, strings.Count(out, "rank "))
	require.Contains(t, out, "of 2 working in /tmp")
}

// TestWorkingDirectoryIsolation covers two ranks given distinct
// working directories.
func TestWorkingDirectoryIsolation(t *testing.T) {
	helloBin, libPath := buildFixtures(t)
	a := t.TempDir()
	b := t.TempDir()
	ranks := writeRanksFile(t, []string{"0 " + a, "1 " + b})

	out := runUnderMPI(t, 2, libPath, []string{"CS_FILE=" + ranks}, helloBin)

	require.Contains(t, out, "working in "+a)
	require.Contains(t, out, "working in "+b)
}

// TestEnvAssignment is a placeholder for per-rank environment
// assignment. The fixture does not print its environment and no
// wrapper-script fixture is built, so the scenario is skipped here.
func TestEnvAssignment(t *testing.T) {
	t.Skip("requires a shell-wrapper fixture not built by this module; covered at unit level by internal/shaper")
}

// TestRedirectedOutput covers stdout redirection to a job/color-named file.
func TestRedirectedOutput(t *testing.T) {
	helloBin, libPath := buildFixtures(t)
	// The shaper enters the work dir before opening the redirect files,
	// so the files land in the work dir named by the ranks file.
	dir := t.TempDir()
	ranks := writeRanksFile(t, []string{"7 " + dir})

	cmd := exec.Command("mpirun", "-np", "1", helloBin)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"CS_FILE="+ranks,
		"CS_REDIRECT_OUTERR=1",
		"PBS_JOBID=42",
		"LD_PRELOAD="+libPath,
	)
	require.NoError(t, cmd.Run())

	data, err := os.ReadFile(filepath.Join(dir, "42_w_7.out"))
	require.NoError(t, err)
	require.Contains(t, string(data), "rank 0")
}

// TestSigsegvIsolation covers a crashing rank being isolated from its siblings.
func TestSigsegvIsolation(t *testing.T) {
	t.Skip("requires a crashing fixture variant not built by this module; internal/sigpolicy's unit tests cover only the paths that do not exit")
}
