package launch

import (
	"fmt"
	"os/exec"

	"golang.org/x/sys/unix"
)

// ExecFunc replaces the current process image with argv. Implementations only
// return on failure.
type ExecFunc func(argv []string, env []string) error

// execProcess resolves argv[0] on PATH and execs it. On success the call
// never returns; the launched process inherits our PID and standard streams.
func execProcess(argv []string, env []string) error {
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("locate %s: %w", argv[0], err)
	}
	if err := unix.Exec(path, argv, env); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
