package sigpolicy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joeycumines/commsplit/internal/flags"
)

// Exercising the signal-delivery and exit paths directly would exit the
// test binary (both call os.Exit), and the SIGSEGV-isolation scenario in
// test/integration is a skipped placeholder, so those paths are not
// exercised by any test. These tests cover the parts reachable without
// triggering an exit.

func TestInstall_NoFlagsIsNoop(t *testing.T) {
	p := New(flags.Bag{}, 0, 0, func() { t.Fatal("finalize must not be called") })
	p.Install()
	require.Nil(t, p.installed)
}

func TestExitHook_DisabledByDefault(t *testing.T) {
	called := false
	p := New(flags.Bag{IgnoreReturnCode: false}, 0, 0, func() { called = true })
	p.ExitHook(func() bool { return false })
	require.False(t, called)
}

func TestExitHook_SkipsWhenAlreadyFinalized(t *testing.T) {
	called := false
	p := New(flags.Bag{IgnoreReturnCode: true}, 0, 0, func() { called = true })
	p.ExitHook(func() bool { return true })
	require.False(t, called)
}
