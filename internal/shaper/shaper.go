// Package shaper implements the process shaper (C2): the color-derived
// side effects applied once during init, in a fixed order — working
// directory, then output redirection, then
// environment assignments — so redirected files land beside the
// application's working directory and env assignments are visible to
// anything initialized afterward.
package shaper

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/joeycumines/commsplit/internal/config"
)

// Redirected holds the files opened for stdout/stderr redirection, so
// the finalize path (C4) can close them. Zero value means no
// redirection occurred.
type Redirected struct {
	out *os.File
	err *os.File
}

// Close closes the redirected streams, if any were opened. Mirrors the
// original's CloseStdOutErr.
func (r *Redirected) Close() {
	if r == nil {
		return
	}
	if r.out != nil {
		_ = r.out.Close()
		r.out = nil
	}
	if r.err != nil {
		_ = r.err.Close()
		r.err = nil
	}
}

// Chdir changes the process working directory. Failure is fatal to the
// process: a requested working directory that cannot be entered leaves
// no safe place to run the application.
func Chdir(workDir string) error {
	if workDir == "" {
		return nil
	}
	if err := os.Chdir(workDir); err != nil {
		return fmt.Errorf("shaper: chdir %q: %w", workDir, err)
	}
	return nil
}

// RedirectOutErr reopens stdout and stderr onto "<jobID>_w_<color>.out"
// and ".err", appending.
func RedirectOutErr(jobID string, color int) (*Redirected, error) {
	outPath := fmt.Sprintf("%s_w_%d.out", jobID, color)
	errPath := fmt.Sprintf("%s_w_%d.err", jobID, color)

	outFile, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("shaper: opening %q: %w", outPath, err)
	}
	errFile, err := os.OpenFile(errPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		_ = outFile.Close()
		return nil, fmt.Errorf("shaper: opening %q: %w", errPath, err)
	}

	if err := unix.Dup2(int(outFile.Fd()), int(os.Stdout.Fd())); err != nil {
		_ = outFile.Close()
		_ = errFile.Close()
		return nil, fmt.Errorf("shaper: redirecting stdout: %w", err)
	}
	if err := unix.Dup2(int(errFile.Fd()), int(os.Stderr.Fd())); err != nil {
		_ = outFile.Close()
		_ = errFile.Close()
		return nil, fmt.Errorf("shaper: redirecting stderr: %w", err)
	}

	return &Redirected{out: outFile, err: errFile}, nil
}

// ApplyEnv sets the process environment assignments parsed from the
// configuration record, in order.
func ApplyEnv(assignments []config.EnvAssignment) error {
	for _, a := range assignments {
		if err := os.Setenv(a.Name, a.Value); err != nil {
			return fmt.Errorf("shaper: setenv %s: %w", a.Name, err)
		}
	}
	return nil
}
