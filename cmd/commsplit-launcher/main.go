// Command commsplit-launcher is the C6 launcher wrapper: a
// pre-MPI process that discovers its siblings on a node and forks each
// onto a distinct application, setting the environment the init
// orchestrator (C4) later consumes.
//
// Invocation: commsplit-launcher N count1 count2 … countN :: app1
// args… :: app2 args… :: …
//
// Grounded on original_source/src/intra_wrapper.c, with fork(2)+execv(2)
// expressed as syscall.ForkExec and the wait as golang.org/x/sys/unix's
// Wait4, the way canonical-lxd's forkexec and orospakr-spawnexec wrap
// process replacement in _examples/other_examples.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joeycumines/go-catrate"
	"golang.org/x/sys/unix"

	"github.com/joeycumines/commsplit/internal/discovery"
	"github.com/joeycumines/commsplit/internal/flags"
	"github.com/joeycumines/commsplit/internal/obslog"
)

type app struct {
	count int
	argv  []string
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	apps, err := parseArgs(args)
	if err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}

	self, err := os.Executable()
	if err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}
	image := filepathBase(self)

	total := 0
	counts := make([]int, len(apps))
	for i, a := range apps {
		total += a.count
		counts[i] = a.count
	}

	limiter := catrate.NewLimiter(map[time.Duration]int{10 * time.Second: 1})

	pids, err := discovery.Poll(image, total, limiter)
	if err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}

	selfPID := os.Getpid()
	idx, err := discovery.Select(pids, selfPID, counts)
	if err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}
	selected := apps[idx]

	if err := os.Setenv(flags.EnvLoaderPreload, os.Getenv(flags.EnvPreloadSaved)); err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}
	if err := os.Setenv(flags.EnvRank, strconv.Itoa(idx)); err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}
	if err := os.Setenv(flags.EnvRankFromEnv, "1"); err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}

	path, lookErr := lookPath(selected.argv[0])
	if lookErr != nil {
		obslog.Fatal("launcher", -1, -1, lookErr)
		return 1
	}

	pid, err := forkExec(path, selected.argv, os.Environ())
	if err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}

	var ws unix.WaitStatus
	if _, err := unix.Wait4(pid, &ws, 0, nil); err != nil {
		obslog.Fatal("launcher", -1, -1, err)
		return 1
	}
	return ws.ExitStatus()
}

// parseArgs parses "N count1 ... countN :: app1 args... :: app2 ...".
func parseArgs(args []string) ([]app, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("launcher: missing app count argument")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("launcher: app count %q: %w", args[0], err)
	}
	if len(args) < 1+n {
		return nil, fmt.Errorf("launcher: expected %d counts, got %d remaining args", n, len(args)-1)
	}

	counts := make([]int, n)
	for i := 0; i < n; i++ {
		c, err := strconv.Atoi(args[1+i])
		if err != nil {
			return nil, fmt.Errorf("launcher: count %q: %w", args[1+i], err)
		}
		counts[i] = c
	}

	rest := strings.Join(args[1+n:], " ")
	segments := strings.Split(rest, "::")

	var apps []app
	for _, seg := range segments {
		fields := strings.Fields(seg)
		if len(fields) == 0 {
			continue
		}
		apps = append(apps, app{argv: fields})
	}

	if len(apps) != n {
		return nil, fmt.Errorf("launcher: expected %d apps, found %d", n, len(apps))
	}
	for i := range apps {
		apps[i].count = counts[i]
	}

	return apps, nil
}

func filepathBase(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}
	return p
}
