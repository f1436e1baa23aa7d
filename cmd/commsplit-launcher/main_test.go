package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseArgs_LauncherFanOut(t *testing.T) {
	// "2 2 1" with two applications, mirroring a three-instance launcher fan-out.
	apps, err := parseArgs([]string{"2", "2", "1", "::", "/bin/A", "x", "::", "/bin/B", "::"})
	require.NoError(t, err)
	require.Len(t, apps, 2)

	require.Equal(t, 2, apps[0].count)
	require.Equal(t, []string{"/bin/A", "x"}, apps[0].argv)

	require.Equal(t, 1, apps[1].count)
	require.Equal(t, []string{"/bin/B"}, apps[1].argv)
}

func TestParseArgs_WrongAppCount(t *testing.T) {
	_, err := parseArgs([]string{"2", "1", "1", "::", "/bin/A", "::"})
	require.Error(t, err)
}

func TestParseArgs_MissingCounts(t *testing.T) {
	_, err := parseArgs([]string{"3", "1", "1"})
	require.Error(t, err)
}

func TestFilepathBase(t *testing.T) {
	require.Equal(t, "intra.out", filepathBase("/usr/local/bin/intra.out"))
	require.Equal(t, "intra.out", filepathBase("intra.out"))
}
