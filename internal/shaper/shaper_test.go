package shaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/commsplit/internal/config"
)

func TestChdir_WorkingDirectoryIsolation(t *testing.T) {
	a := t.TempDir()
	b := t.TempDir()

	start, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(start) })

	require.NoError(t, Chdir(a))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, resolveSymlinks(t, a), resolveSymlinks(t, cwd))

	require.NoError(t, Chdir(b))
	cwd, err = os.Getwd()
	require.NoError(t, err)
	require.Equal(t, resolveSymlinks(t, b), resolveSymlinks(t, cwd))
}

func TestChdir_EmptyIsNoop(t *testing.T) {
	require.NoError(t, Chdir(""))
}

func TestChdir_MissingDirectory(t *testing.T) {
	err := Chdir(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestApplyEnv_Assignment(t *testing.T) {
	require.NoError(t, ApplyEnv([]config.EnvAssignment{
		{Name: "COMMSPLIT_TEST_FOO", Value: "bar"},
		{Name: "COMMSPLIT_TEST_BAZ", Value: "qux"},
	}))
	t.Cleanup(func() {
		_ = os.Unsetenv("COMMSPLIT_TEST_FOO")
		_ = os.Unsetenv("COMMSPLIT_TEST_BAZ")
	})

	require.Equal(t, "bar", os.Getenv("COMMSPLIT_TEST_FOO"))
	require.Equal(t, "qux", os.Getenv("COMMSPLIT_TEST_BAZ"))
}

func TestApplyEnv_Empty(t *testing.T) {
	require.NoError(t, ApplyEnv(nil))
}

func resolveSymlinks(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
