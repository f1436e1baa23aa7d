// Command commsplit-serial is the serial wrapper variant: it
// initializes MPI, forks exactly once, execs the program named by its
// first argument in the child, and the parent waits then finalizes
// MPI.
//
// Grounded on original_source/src/serial_wrapper.c, which sets the
// unset-preload marker before MPI_Init so a preloaded split library
// also removes the preload setting ahead of the fork's exec.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/joeycumines/commsplit/internal/flags"
	"github.com/joeycumines/commsplit/internal/obslog"
	"github.com/joeycumines/commsplit/mpi"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		obslog.Fatal("serial", -1, -1, fmt.Errorf("serial: missing program argument"))
		return 1
	}

	if err := os.Setenv(flags.EnvUnsetPreload, "1"); err != nil {
		obslog.Fatal("serial", -1, -1, err)
		return 1
	}

	if st := mpi.Init(); !st.OK() {
		obslog.Fatal("serial", -1, -1, st)
		return 1
	}

	path, err := exec.LookPath(args[0])
	if err != nil {
		obslog.Fatal("serial", -1, -1, err)
		return 1
	}

	pid, err := syscall.ForkExec(path, args, &syscall.ProcAttr{
		Env:   os.Environ(),
		Files: []uintptr{0, 1, 2},
	})
	if err != nil {
		obslog.Fatal("serial", -1, -1, err)
		return 1
	}

	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(pid, &ws, 0, nil); err != nil {
		obslog.Fatal("serial", -1, -1, err)
		return 1
	}

	mpi.Finalize()

	return ws.ExitStatus()
}
