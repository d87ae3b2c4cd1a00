//go:build unix

package batch

import (
	"os/exec"
	"syscall"
)

// setProcessGroup starts the editor in its own process group so the whole
// tree can be killed.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	// Negative PID addresses the group.
	_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
