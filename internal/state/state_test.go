package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/commsplit/mpi"
)

func TestSplitComm_NullBeforeInstall(t *testing.T) {
	s := New()
	require.Equal(t, mpi.Null, s.Get())
	require.False(t, s.Finalized())
}

func TestSplitComm_TranslateWorldToSplit(t *testing.T) {
	s := New()
	split := mpi.Comm(42)
	s.Install(split)

	require.Equal(t, split, s.Translate(mpi.World))
}

func TestSplitComm_TranslateNonWorldUntouched(t *testing.T) {
	s := New()
	s.Install(mpi.Comm(42))

	other := mpi.Comm(99)
	require.Equal(t, other, s.Translate(other))
}

func TestSplitComm_InstallTwicePanics(t *testing.T) {
	s := New()
	s.Install(mpi.Comm(1))
	require.Panics(t, func() { s.Install(mpi.Comm(2)) })
}

func TestSplitComm_TeardownIsIdempotent(t *testing.T) {
	s := New()
	s.Install(mpi.Comm(7))

	calls := 0
	free := func(c *mpi.Comm) mpi.Status {
		calls++
		*c = mpi.Null
		return 0
	}

	s.Teardown(free)
	require.Equal(t, 1, calls)
	require.True(t, s.Finalized())
	require.Equal(t, mpi.Null, s.Get())

	s.Teardown(free)
	require.Equal(t, 1, calls, "teardown must not free twice")
}

func TestSplitComm_TeardownBeforeInstallIsNoop(t *testing.T) {
	s := New()
	calls := 0
	s.Teardown(func(c *mpi.Comm) mpi.Status {
		calls++
		return 0
	})
	require.Equal(t, 0, calls)
}
