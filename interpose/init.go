// Package main is the C4 init/finalize orchestrator and, together with
// shadows_gen.go, the full C5 substitution table. Built with `go build
// -buildmode=c-shared` it produces libcommsplit, the library an
// application preloads ahead of its real MPI runtime.
//
// Grounded on original_source/src/split.c's SplitInit/MPI_Init/
// MPI_Finalize, reproduced here in Go's idiom: state lives in
// internal/state.SplitComm instead of a bare static global, and the
// fixed init order (config -> signals -> directory/redirect/env ->
// split) is expressed as ordinary sequential calls rather than a
// single monolithic C function.
package main

/*
#include <mpi.h>
#include <stdlib.h>

extern void commsplitAtExitTrampoline();

static void commsplitInstallAtExit(void) {
	atexit(commsplitAtExitTrampoline);
}
*/
import "C"

import (
	"os"

	"github.com/joeycumines/commsplit/internal/config"
	"github.com/joeycumines/commsplit/internal/flags"
	"github.com/joeycumines/commsplit/internal/obslog"
	"github.com/joeycumines/commsplit/internal/resolve"
	"github.com/joeycumines/commsplit/internal/scheduler"
	"github.com/joeycumines/commsplit/internal/shaper"
	"github.com/joeycumines/commsplit/internal/sigpolicy"
	"github.com/joeycumines/commsplit/internal/state"
	"github.com/joeycumines/commsplit/mpi"
)

// main is required for -buildmode=c-shared but is never executed; the
// host application's own main runs, calling into the exported symbols
// below.
func main() {}

var (
	splitComm  = state.New()
	bag        flags.Bag
	rank       int
	color      int
	redirected *shaper.Redirected
	policy     *sigpolicy.Policy
)

// translateComm implements the one substitution rule every generated
// shadow applies: the world communicator becomes the split
// communicator, every other handle forwards untouched.
func translateComm(c C.MPI_Comm) C.MPI_Comm {
	return C.MPI_Comm(splitComm.Translate(mpi.Comm(c)))
}

//export MPI_Init
func MPI_Init(argc *C.int, argv ***C.char) C.int {
	bag = flags.Resolve()

	var st C.int
	if bag.UnsetPreload {
		os.Unsetenv(flags.EnvLoaderPreload)
	}

	if bag.UnwrapInit {
		st = C.int(resolve.NextInit())
	} else {
		st = C.PMPI_Init(argc, argv)
	}

	splitInit()

	return st
}

//export MPI_Init_thread
func MPI_Init_thread(argc *C.int, argv ***C.char, required C.int, provided *C.int) C.int {
	bag = flags.Resolve()

	var st C.int
	if bag.UnsetPreload {
		os.Unsetenv(flags.EnvLoaderPreload)
	}

	if bag.UnwrapInit {
		prov, s := resolve.NextInitThread(int(required))
		*provided = C.int(prov)
		st = C.int(s)
	} else {
		st = C.PMPI_Init_thread(argc, argv, required, provided)
	}

	splitInit()

	return st
}

// splitInit queries the world rank, resolves identity, reads config,
// installs the signal policy, shapes the process, and splits the
// world communicator.
func splitInit() {
	worldRank, _ := mpi.CommRank(mpi.World)
	rank = worldRank

	identity, err := bag.RankIdentity(worldRank)
	if err != nil {
		obslog.Fatal("init", worldRank, -1, err)
		os.Exit(1)
	}

	rec, err := config.Read(bag.ConfigFile, identity)
	if err != nil {
		obslog.Fatal("init", worldRank, -1, err)
		os.Exit(1)
	}
	color = rec.Color

	policy = sigpolicy.New(bag, rank, color, func() {
		splitComm.Teardown(func(c *mpi.Comm) mpi.Status { return mpi.CommFree(c) })
		if !mpi.Finalized() {
			mpi.Finalize()
		}
	})
	policy.Install()

	if bag.IgnoreReturnCode {
		C.commsplitInstallAtExit()
	}

	if err := shaper.Chdir(rec.WorkDir); err != nil {
		obslog.Fatal("shaper", rank, color, err)
		os.Exit(1)
	}

	if bag.RedirectOutErr {
		r, err := shaper.RedirectOutErr(scheduler.JobID(), color)
		if err != nil {
			obslog.Fatal("shaper", rank, color, err)
			os.Exit(1)
		}
		redirected = r
	}

	if err := shaper.ApplyEnv(rec.Env); err != nil {
		obslog.Fatal("shaper", rank, color, err)
		os.Exit(1)
	}

	comm, st := mpi.CommSplit(mpi.World, color)
	if !st.OK() {
		obslog.Fatal("init", rank, color, st)
		os.Exit(1)
	}
	splitComm.Install(comm)

	obslog.Trace("init", rank, color, "split complete")
}

//export MPI_Finalize
func MPI_Finalize() C.int {
	splitComm.Teardown(func(c *mpi.Comm) mpi.Status { return mpi.CommFree(c) })

	var st C.int
	if !mpi.Finalized() {
		if bag.UnwrapFinalize {
			st = C.int(resolve.NextFinalize())
		} else {
			st = C.PMPI_Finalize()
		}
	}

	if bag.RedirectOutErr {
		redirected.Close()
	}

	return st
}

//export MPI_Comm_free
func MPI_Comm_free(comm *C.MPI_Comm) C.int {
	// Never substitute the split communicator into a free path; forward
	// as given so the underlying runtime's own guard against freeing
	// WORLD still fires.
	return C.PMPI_Comm_free(comm)
}

//export MPI_Comm_disconnect
func MPI_Comm_disconnect(comm *C.MPI_Comm) C.int {
	return C.PMPI_Comm_disconnect(comm)
}

//export commsplitAtExitTrampoline
func commsplitAtExitTrampoline() {
	policy.ExitHook(splitComm.Finalized)
}
