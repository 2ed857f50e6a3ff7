package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sourceplane/taskrun/internal/model"
)

// ErrCommandFailed marks a task command that exited non-zero.
var ErrCommandFailed = errors.New("command failed")

// CommandError carries the failing target, the command text and the
// subprocess exit code. ExitCode is -1 when the process was terminated
// by a signal before reporting one.
type CommandError struct {
	Target   string
	Command  string
	ExitCode int
	Err      error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("target %s: command %q failed with exit code %d", e.Target, e.Command, e.ExitCode)
}

func (e *CommandError) Unwrap() error { return ErrCommandFailed }

// Runner executes a task's commands as sequential subprocesses.
type Runner struct {
	WorkDir string
	Stdout  io.Writer
	Stderr  io.Writer
	DryRun  bool
}

func NewRunner(workDir string, stdout, stderr io.Writer, dryRun bool) *Runner {
	return &Runner{
		WorkDir: workDir,
		Stdout:  stdout,
		Stderr:  stderr,
		DryRun:  dryRun,
	}
}

// ExecuteTask runs each command of the task in order via "sh -c" in the
// task's working directory. Output streams pass through unbuffered to
// the runner's writers. The first non-zero exit aborts the remaining
// commands and is returned as a *CommandError; there are no retries.
// Cancelling ctx sends SIGTERM to the running subprocess.
func (r *Runner) ExecuteTask(ctx context.Context, task *model.Task) error {
	dir := r.resolveWorkingDir(task.WorkDir)

	for _, command := range task.Commands {
		fmt.Fprintf(r.Stdout, "  $ %s\n", command)
		if r.DryRun {
			continue
		}

		cmd := exec.CommandContext(ctx, "sh", "-c", command)
		cmd.Dir = dir
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
		cmd.Cancel = func() error {
			return cmd.Process.Signal(syscall.SIGTERM)
		}
		cmd.WaitDelay = 5 * time.Second

		if err := cmd.Run(); err != nil {
			code := -1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			}
			return &CommandError{
				Target:   task.Name,
				Command:  command,
				ExitCode: code,
				Err:      err,
			}
		}
	}

	return nil
}

func (r *Runner) resolveWorkingDir(path string) string {
	if path == "" || path == "./" {
		return r.WorkDir
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.WorkDir, path)
}
