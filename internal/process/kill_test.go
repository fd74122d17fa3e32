package process

// Notes:
// - KillProcessGroup: we only test with invalid PIDs to verify the function
//   doesn't panic. Real group termination is covered by the command runner
//   cancellation test in the root package.
// - Cannot test with PID 0 (kills current process group) or real PIDs.
// These are acceptable gaps: we test observable behavior, not syscall internals.

import (
	"os/exec"
	"testing"
)

// ---------------------------------------------------------------------------
// TestKillProcessGroup - Invalid PID Handling
// ---------------------------------------------------------------------------

func TestKillProcessGroup_InvalidPID(t *testing.T) {
	t.Parallel()

	KillProcessGroup(999999999)
}

func TestKillProcessGroup_NonPositivePID(t *testing.T) {
	t.Parallel()

	// Must be a no-op: -0 would target the test's own process group.
	KillProcessGroup(0)
	KillProcessGroup(-1)
}

// ---------------------------------------------------------------------------
// TestStartInGroup - SysProcAttr setup
// ---------------------------------------------------------------------------

func TestStartInGroup_SetsAttributes(t *testing.T) {
	t.Parallel()

	cmd := exec.Command("pandoc", "--version")
	StartInGroup(cmd)

	if cmd.SysProcAttr == nil {
		t.Fatal("SysProcAttr should be set")
	}
}
