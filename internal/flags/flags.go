// Package flags centralizes the environment-variable feature-flag bag
// so every shadow and command-line entry point resolves the same
// opt-ins identically and exactly once per process.
package flags

import (
	"os"
	"strconv"
)

// Environment variable names. The CS_ prefix mirrors the historical W_
// prefix convention, renamed for this project.
const (
	EnvUnsetPreload      = "CS_UNSET_PRELOAD"
	EnvUnwrapInit        = "CS_UNWRAP_INIT"
	EnvUnwrapFinalize    = "CS_UNWRAP_FINALIZE"
	EnvIgnoreSegv        = "CS_IGNORE_SEGV"
	EnvIgnoreAbrt        = "CS_IGNORE_ABRT"
	EnvSigPause          = "CS_SIG_PAUSE"
	EnvSigDfl            = "CS_SIG_DFL"
	EnvIgnoreReturnCode  = "CS_IGNORE_RETURN_CODE"
	EnvRedirectOutErr    = "CS_REDIRECT_OUTERR"
	EnvRankFromEnv       = "CS_RANK_FROM_ENV"
	EnvRank              = "CS_ENV_RANK"
	EnvFile              = "CS_FILE"
	EnvDebug             = "COMMSPLIT_DEBUG"
	EnvPreloadSaved      = "COMMSPLIT_PRELOAD"
	EnvLoaderPreload     = "LD_PRELOAD"
	EnvBatchSchedulerJob = "PBS_JOBID"
)

// Bag is the resolved feature-flag bag for one process, read once at
// init and held for the process lifetime.
type Bag struct {
	UnsetPreload     bool
	UnwrapInit       bool
	UnwrapFinalize   bool
	IgnoreSegv       bool
	IgnoreAbrt       bool
	SigPause         bool
	SigDfl           bool
	IgnoreReturnCode bool
	RedirectOutErr   bool
	RankFromEnv      bool
	ConfigFile       string
}

// Resolve reads the flag bag from the process environment. Presence-only
// toggles are true whenever the variable is set to anything other than
// the empty string; FILE is always read verbatim (empty means unset).
func Resolve() Bag {
	return Bag{
		UnsetPreload:     present(EnvUnsetPreload),
		UnwrapInit:       present(EnvUnwrapInit),
		UnwrapFinalize:   present(EnvUnwrapFinalize),
		IgnoreSegv:       present(EnvIgnoreSegv),
		IgnoreAbrt:       present(EnvIgnoreAbrt),
		SigPause:         present(EnvSigPause),
		SigDfl:           present(EnvSigDfl),
		IgnoreReturnCode: present(EnvIgnoreReturnCode),
		RedirectOutErr:   present(EnvRedirectOutErr),
		RankFromEnv:      present(EnvRankFromEnv),
		ConfigFile:       os.Getenv(EnvFile),
	}
}

// RankIdentity returns the identity to use when looking up the config
// record: if RankFromEnv is set, the numeric value of CS_ENV_RANK;
// otherwise worldRank unchanged.
func (b Bag) RankIdentity(worldRank int) (int, error) {
	if !b.RankFromEnv {
		return worldRank, nil
	}
	v := os.Getenv(EnvRank)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func present(name string) bool {
	return os.Getenv(name) != ""
}

// DebugEnabled reports whether verbose diagnostic logging (the
// DEBUG-gated trace the original print_macros.h macro provided) is
// requested for this process.
func DebugEnabled() bool {
	return present(EnvDebug)
}
