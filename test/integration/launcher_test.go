//go:build mpi

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLauncherFanOut exercises "2 2 1" with three per-node launcher
// instances: it maps the two lowest-PID instances to app A and the
// highest to app B.
func TestLauncherFanOut(t *testing.T) {
	dir := t.TempDir()

	launcherBin := filepath.Join(dir, "commsplit-launcher")
	cmd := exec.Command("go", "build", "-o", launcherBin, "../../cmd/commsplit-launcher")
	cmd.Stderr = os.Stderr
	require.NoError(t, cmd.Run())

	appA := filepath.Join(dir, "appA.sh")
	appB := filepath.Join(dir, "appB.sh")
	require.NoError(t, os.WriteFile(appA, []byte("#!/bin/sh\necho A $CS_ENV_RANK\n"), 0o755))
	require.NoError(t, os.WriteFile(appB, []byte("#!/bin/sh\necho B $CS_ENV_RANK\n"), 0o755))

	// mpirun -np 3 launches three instances of commsplit-launcher on
	// this node, each given the same fan-out description.
	run := exec.Command("mpirun", "-np", "3", launcherBin,
		"2", "2", "1", "::", appA, "::", appB, "::")
	run.Env = append(os.Environ(), "COMMSPLIT_PRELOAD=")
	out, err := run.CombinedOutput()
	require.NoError(t, err)
	require.Contains(t, string(out), "A 0")
	require.Contains(t, string(out), "B 1")
}
