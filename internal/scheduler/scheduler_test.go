package scheduler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJobID_FromEnv(t *testing.T) {
	t.Setenv("PBS_JOBID", "12345.moab")
	require.Equal(t, "12345.moab", JobID())
}

func TestJobID_Unset(t *testing.T) {
	t.Setenv("PBS_JOBID", "")
	require.Equal(t, "", JobID())
}
