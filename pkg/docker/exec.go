package docker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// ExecShell attaches the current terminal to an interactive bash session
// inside the container. It shells out to the docker CLI because an
// interactive TTY attach is what `docker exec -it` already does well; the
// SDK path would mean reimplementing raw terminal handling and resize
// propagation for no gain in a one-shot CLI.
func ExecShell(ctx context.Context, containerID, user, workdir string) error {
	args := []string{"exec", "-it"}
	if user != "" {
		args = append(args, "--user", user)
	}
	if workdir != "" {
		args = append(args, "-w", workdir)
	}
	args = append(args, containerID, "bash")

	log.Info("Connecting to container", "container", containerID, "user", user, "workdir", workdir)

	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if isExecFailure(code) {
				return fmt.Errorf("docker exec failed with status %d", code)
			}
			// Anything else is the shell's own exit status, not a
			// connection failure.
			log.Debug("Session ended", "status", code)
			return nil
		}
		return fmt.Errorf("failed to run docker exec: %w", err)
	}
	return nil
}

// isExecFailure reports whether the exit code came from the docker CLI
// itself rather than the command run inside the container: 125 is a
// daemon error, 126 a non-runnable command, 127 command not found.
func isExecFailure(code int) bool {
	return code == 125 || code == 126 || code == 127
}
