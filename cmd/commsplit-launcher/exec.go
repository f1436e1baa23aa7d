package main

import (
	"os/exec"
	"syscall"
)

// lookPath resolves the selected application's executable, the same
// way exec.Command would before starting it.
func lookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// forkExec forks the launcher and execs path/argv/envv in the child,
// without replacing the parent, so it can wait on the child below.
func forkExec(path string, argv, envv []string) (pid int, err error) {
	return syscall.ForkExec(path, argv, &syscall.ProcAttr{
		Env:   envv,
		Files: []uintptr{0, 1, 2},
	})
}
