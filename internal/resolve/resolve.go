// Package resolve abstracts the one loader-specific operation the
// unwrap flags need: looking up the next definition of a symbol in the
// dynamic loader's search order, so the rest of the design does not
// depend on loader details.
package resolve

/*
#define _GNU_SOURCE
#include <dlfcn.h>
#include <mpi.h>

typedef int (*init_fn)(int *, char ***);
typedef int (*init_thread_fn)(int *, char ***, int, int *);
typedef int (*finalize_fn)(void);

static int call_next_init(void) {
	init_fn fn = (init_fn)dlsym(RTLD_NEXT, "MPI_Init");
	if (!fn) return -1;
	return fn(NULL, NULL);
}

static int call_next_init_thread(int required, int *provided) {
	init_thread_fn fn = (init_thread_fn)dlsym(RTLD_NEXT, "MPI_Init_thread");
	if (!fn) return -1;
	return fn(NULL, NULL, required, provided);
}

static int call_next_finalize(void) {
	finalize_fn fn = (finalize_fn)dlsym(RTLD_NEXT, "MPI_Finalize");
	if (!fn) return -1;
	return fn();
}
*/
import "C"

// NextInit dynamically resolves and calls the next loader-order
// definition of MPI_Init, bypassing the profiling interface entirely.
// Used when CS_UNWRAP_INIT is set.
func NextInit() int {
	return int(C.call_next_init())
}

// NextInitThread is the threaded-init counterpart of NextInit.
func NextInitThread(required int) (provided int, status int) {
	var prov C.int
	st := C.call_next_init_thread(C.int(required), &prov)
	return int(prov), int(st)
}

// NextFinalize dynamically resolves and calls the next loader-order
// definition of MPI_Finalize. Used when CS_UNWRAP_FINALIZE is set.
func NextFinalize() int {
	return int(C.call_next_finalize())
}
