// Package discovery implements the launcher's sibling-PID rendezvous
// (C6): poll the process table for every instance of the
// launcher's own image until all expected siblings are visible, sort
// their identifiers, and map the current process's position in that
// sorted list to an application index by cumulative count.
//
// Grounded on original_source/src/intra_wrapper.c, which polls via
// `popen("pidof intra.out", "r")` once a second; this keeps the same
// "ask the process table for my own image name" approach via the
// pidof command rather than switching to a /proc scan, since pidof is
// the interface the original names and the launcher already requires
// a POSIX-ish host environment.
package discovery

import (
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joeycumines/go-catrate"

	"github.com/joeycumines/commsplit/internal/obslog"
)

// PollInterval is the sleep between sibling-discovery polling attempts,
// matching the original's one-second cadence.
const PollInterval = time.Second

// Poll blocks until at least expected instances of image are visible in
// the process table, sleeping PollInterval between attempts. There is
// no deadline: this is an intentional soft-wait, with the job
// launcher's own timeout as the backstop. limiter throttles the
// "still waiting" diagnostic so a stuck rendezvous does not flood
// stderr; a nil limiter disables throttling (every attempt logs).
func Poll(image string, expected int, limiter *catrate.Limiter) ([]int, error) {
	for {
		pids, err := lookup(image)
		if err != nil {
			return nil, fmt.Errorf("discovery: looking up %q: %w", image, err)
		}
		if len(pids) >= expected {
			sort.Ints(pids)
			return pids, nil
		}

		if limiter == nil {
			obslog.Trace("discovery", -1, -1, fmt.Sprintf("waiting for siblings: %d/%d", len(pids), expected))
		} else if _, ok := limiter.Allow("discovery.waiting"); ok {
			obslog.Trace("discovery", -1, -1, fmt.Sprintf("waiting for siblings: %d/%d", len(pids), expected))
		}

		time.Sleep(PollInterval)
	}
}

func lookup(image string) ([]int, error) {
	out, err := exec.Command("pidof", image).Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			// pidof exits 1 when no instances are found yet.
			return nil, nil
		}
		return nil, err
	}

	fields := strings.Fields(string(out))
	pids := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parsing pidof output %q: %w", f, err)
		}
		pids = append(pids, n)
	}
	return pids, nil
}

// Select maps selfPID's position within the sorted sibling list to an
// application index, by cumulative count.
func Select(pids []int, selfPID int, counts []int) (appIndex int, err error) {
	pos := -1
	for i, pid := range pids {
		if pid == selfPID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return 0, fmt.Errorf("discovery: pid %d not found among siblings %v", selfPID, pids)
	}

	cumulative := 0
	for i, count := range counts {
		cumulative += count
		if pos < cumulative {
			return i, nil
		}
	}
	return 0, fmt.Errorf("discovery: position %d exceeds total count %d", pos, cumulative)
}
