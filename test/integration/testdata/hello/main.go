// Command hello is the fixture application the end-to-end scenarios
// drive. It calls the public MPI entry points directly (not the
// profiling interface), so that a preloaded libcommsplit actually gets
// a chance to shadow them, then reports its world rank, size, and
// working directory, barriers, and exits. Grounded on
// original_source/testing/helloMPI.c.
package main

/*
#include <mpi.h>
*/
import "C"

import (
	"fmt"
	"os"
)

func main() {
	C.MPI_Init(nil, nil)

	var rank, size C.int
	C.MPI_Comm_rank(C.MPI_COMM_WORLD, &rank)
	C.MPI_Comm_size(C.MPI_COMM_WORLD, &size)

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "?"
	}
	fmt.Printf("rank %d of %d working in %s\n", int(rank), int(size), cwd)

	C.MPI_Barrier(C.MPI_COMM_WORLD)

	C.MPI_Finalize()
}
