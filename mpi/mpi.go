// Package mpi is the cgo boundary onto the MPI ABI and its profiling
// interface. It is consumed by interpose (the C5 substitution table)
// and by internal/state; it never vendors libmpi itself, consuming it
// the same way any cgo binding consumes a C library's headers (cf.
// the ctu-vras-singularity starter package's C.struct_starterConfig
// alias pattern in _examples/other_examples).
package mpi

/*
#cgo LDFLAGS: -lmpi
#include <mpi.h>
*/
import "C"

import "fmt"

// Comm is a communicator handle, aliasing the C MPI_Comm type.
type Comm C.MPI_Comm

// World and Null are the two sentinel communicator handles: the world
// communicator and the null sentinel the split communicator starts and
// ends life as.
var (
	World = Comm(C.MPI_COMM_WORLD)
	Null  = Comm(C.MPI_COMM_NULL)
)

// Status wraps an MPI return code; callers are expected to check it
// rather than swallow it, matching the profiling interface's own
// convention.
type Status int

// OK reports whether the status is MPI_SUCCESS.
func (s Status) OK() bool { return int(s) == int(C.MPI_SUCCESS) }

func (s Status) Error() string {
	if s.OK() {
		return ""
	}
	var buf [C.MPI_MAX_ERROR_STRING]C.char
	var length C.int
	C.MPI_Error_string(C.int(s), (*C.char)(&buf[0]), &length)
	return fmt.Sprintf("mpi: error %d: %s", int(s), C.GoStringN(&buf[0], length))
}

// Init calls the real init entry point via the profiling interface.
func Init() Status {
	return Status(C.PMPI_Init(nil, nil))
}

// InitThread calls the threaded real init entry point via the
// profiling interface.
func InitThread(required int) (provided int, status Status) {
	var prov C.int
	st := C.PMPI_Init_thread(nil, nil, C.int(required), &prov)
	return int(prov), Status(st)
}

// Finalize calls the real finalize entry point via the profiling
// interface.
func Finalize() Status {
	return Status(C.PMPI_Finalize())
}

// Finalized reports whether the underlying runtime has already
// finalized, matching the original's guard against double-finalize.
func Finalized() bool {
	var flag C.int
	C.PMPI_Finalized(&flag)
	return flag != 0
}

// CommRank returns the process's rank within comm via the profiling
// interface.
func CommRank(comm Comm) (int, Status) {
	var rank C.int
	st := C.PMPI_Comm_rank(C.MPI_Comm(comm), &rank)
	return int(rank), Status(st)
}

// CommSplit splits comm by color, preserving rank order within each
// resulting color by holding key constant at 0.
func CommSplit(comm Comm, color int) (Comm, Status) {
	var out C.MPI_Comm
	st := C.PMPI_Comm_split(C.MPI_Comm(comm), C.int(color), 0, &out)
	return Comm(out), Status(st)
}

// CommFree releases comm via the profiling interface. Callers must
// never pass World; see internal/state's ownership invariant.
func CommFree(comm *Comm) Status {
	c := C.MPI_Comm(*comm)
	st := C.PMPI_Comm_free(&c)
	*comm = Comm(c)
	return Status(st)
}

// Abort calls the profiling abort entry point.
func Abort(comm Comm, code int) Status {
	return Status(C.PMPI_Abort(C.MPI_Comm(comm), C.int(code)))
}
