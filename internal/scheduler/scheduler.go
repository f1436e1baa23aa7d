// Package scheduler resolves the single piece of information commsplit
// consults the batch scheduler for: a job identifier used to name
// redirected stdio files. Spec §1 treats the scheduler as an external
// collaborator named only by this interface.
//
// Grounded on original_source/src/split.c's SetStdOutErr, which reads
// PBS_JOBID: the olcf/wraprun original ran under PBS/Torque, not a
// cloud batch service, so that is the variable this package reads.
package scheduler

import "os"

// JobID returns the current batch job identifier, or the empty string
// if the process is not running under a scheduler that sets it.
func JobID() string {
	return os.Getenv("PBS_JOBID")
}
