//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// StartInGroup makes cmd the leader of a new process group so converters
// that spawn helpers (pandoc -> pdflatex, prince -> fonts) can be stopped together.
func StartInGroup(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
}

// KillProcessGroup kills a process and all its children by sending SIGKILL
// to the process group (negative PID).
func KillProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
