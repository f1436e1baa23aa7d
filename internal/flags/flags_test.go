package flags

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_PresenceOnlyToggles(t *testing.T) {
	t.Setenv(EnvIgnoreSegv, "1")
	t.Setenv(EnvSigPause, "1")
	t.Setenv(EnvFile, "/tmp/ranks.conf")

	bag := Resolve()
	require.True(t, bag.IgnoreSegv)
	require.True(t, bag.SigPause)
	require.False(t, bag.IgnoreAbrt)
	require.Equal(t, "/tmp/ranks.conf", bag.ConfigFile)
}

func TestRankIdentity_WorldRankByDefault(t *testing.T) {
	bag := Bag{}
	n, err := bag.RankIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 3, n)
}

func TestRankIdentity_FromEnv(t *testing.T) {
	t.Setenv(EnvRank, "7")
	bag := Bag{RankFromEnv: true}
	n, err := bag.RankIdentity(3)
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestRankIdentity_FromEnvMalformed(t *testing.T) {
	t.Setenv(EnvRank, "not-a-number")
	bag := Bag{RankFromEnv: true}
	_, err := bag.RankIdentity(3)
	require.Error(t, err)
}

func TestDebugEnabled(t *testing.T) {
	require.False(t, DebugEnabled())
	t.Setenv(EnvDebug, "1")
	require.True(t, DebugEnabled())
}
