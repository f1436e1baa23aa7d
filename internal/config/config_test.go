package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ranks.conf")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRead_TwoColorSplit(t *testing.T) {
	path := writeConfig(t, "0 /tmp\n0 /tmp\n1 /tmp\n1 /tmp\n")

	for rank, wantColor := range map[int]int{0: 0, 1: 0, 2: 1, 3: 1} {
		rec, err := Read(path, rank)
		require.NoError(t, err)
		if diff := cmp.Diff(wantColor, rec.Color); diff != "" {
			t.Errorf("rank %d color mismatch (-want +got):\n%s", rank, diff)
		}
		if diff := cmp.Diff("/tmp", rec.WorkDir); diff != "" {
			t.Errorf("rank %d workdir mismatch (-want +got):\n%s", rank, diff)
		}
	}
}

func TestRead_EnvAssignment(t *testing.T) {
	path := writeConfig(t, "0 /tmp FOO=bar;BAZ=qux\n")

	rec, err := Read(path, 0)
	require.NoError(t, err)

	want := []EnvAssignment{{Name: "FOO", Value: "bar"}, {Name: "BAZ", Value: "qux"}}
	if diff := cmp.Diff(want, rec.Env); diff != "" {
		t.Errorf("env mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_EmptyEnvStringIsPermitted(t *testing.T) {
	path := writeConfig(t, "0 /tmp\n")

	rec, err := Read(path, 0)
	require.NoError(t, err)
	require.Empty(t, rec.Env)
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "does-not-exist"), 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ConfigMissing))
}

func TestRead_TruncatedFile(t *testing.T) {
	path := writeConfig(t, "0 /tmp\n")

	_, err := Read(path, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ConfigTruncated))
}

func TestRead_MalformedColor(t *testing.T) {
	path := writeConfig(t, "not-a-number /tmp\n")

	_, err := Read(path, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ConfigMalformed))
}

func TestRead_MalformedEnvAssignment(t *testing.T) {
	path := writeConfig(t, "0 /tmp FOO\n")

	_, err := Read(path, 0)
	require.Error(t, err)
	require.True(t, errors.Is(err, ConfigMalformed))
}
