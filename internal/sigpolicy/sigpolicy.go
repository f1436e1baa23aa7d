// Package sigpolicy implements the signal/exit policy (C3): opt-in
// handlers for segmentation and abort signals, and an exit hook, each
// installed exactly once at init time.
//
// The original C library installs true signal handlers restricted to
// async-signal-safe primitives. Go cannot run arbitrary code inside an
// actual signal handler either, so this package follows the common Go
// idiom for signal handling instead (a buffered notify channel drained
// by a dedicated goroutine) rather than reimplementing a C-style
// handler; the notify+goroutine boundary plays
// the same role the original's restricted handler body did — keep it
// minimal and let the finalize/exit path do the real work off the
// signal-delivery stack.
package sigpolicy

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joeycumines/commsplit/internal/flags"
)

// Finalizer is called by the installed handlers to best-effort tear
// down the underlying runtime before exiting. It must tolerate being
// called from a handler goroutine concurrently with normal shutdown.
type Finalizer func()

// Policy installs the handlers and exit hook for one process,
// according to the resolved flag bag.
type Policy struct {
	bag       flags.Bag
	finalize  Finalizer
	rank      int
	color     int
	once      sync.Once
	installed chan os.Signal
}

// New prepares a Policy for rank/color, to be installed via Install.
func New(bag flags.Bag, rank, color int, finalize Finalizer) *Policy {
	return &Policy{bag: bag, finalize: finalize, rank: rank, color: color}
}

// Install wires up os/signal notification for every opted-in signal.
// It never blocks; handling happens on a background goroutine.
func (p *Policy) Install() {
	var sigs []os.Signal
	if p.bag.IgnoreSegv {
		sigs = append(sigs, syscall.SIGSEGV)
	}
	if p.bag.IgnoreAbrt {
		sigs = append(sigs, syscall.SIGABRT)
	}
	if len(sigs) == 0 {
		return
	}

	ch := make(chan os.Signal, len(sigs))
	signal.Notify(ch, sigs...)
	p.installed = ch

	go p.handle(ch)
}

var (
	segvNotice = []byte("commsplit: caught SIGSEGV\n")
	abrtNotice = []byte("commsplit: caught SIGABRT\n")
	sigNotice  = []byte("commsplit: caught signal\n")
)

// notify writes a fixed, pre-formatted message straight to stderr. It
// is called from the signal-draining goroutine rather than through
// obslog, which allocates and locks and so cannot be trusted on this
// path.
func notify(sig os.Signal) {
	switch sig {
	case syscall.SIGSEGV:
		os.Stderr.Write(segvNotice)
	case syscall.SIGABRT:
		os.Stderr.Write(abrtNotice)
	default:
		os.Stderr.Write(sigNotice)
	}
}

func (p *Policy) handle(ch chan os.Signal) {
	for sig := range ch {
		notify(sig)

		if p.bag.SigDfl {
			// First handling also resets disposition to default, so a
			// repeat of the same signal terminates the process
			// normally instead of being intercepted again.
			signal.Stop(ch)
			signal.Reset(sig.(syscall.Signal))
		}

		if p.bag.SigPause {
			// Matches the original's non-reraising pause handlers:
			// block forever, aiding debugger attach, with no
			// re-raise on detach.
			select {}
		}

		p.finalize()
		os.Exit(0)
	}
}

// ExitHook runs the IGNORE_RETURN_CODE exit policy: if finalization has
// not already happened, finalize and force a success exit, overriding
// whatever code the application intended to return. alreadyFinalized
// reports the current SPLIT_COMM lifecycle state so this is only done
// once.
func (p *Policy) ExitHook(alreadyFinalized func() bool) {
	if !p.bag.IgnoreReturnCode {
		return
	}
	p.once.Do(func() {
		if alreadyFinalized() {
			return
		}
		p.finalize()
		os.Exit(0)
	})
}
