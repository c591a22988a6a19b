// Package process runs external commands synchronously and reports the
// outcome as a rop.DataResult: the captured output and exit code are
// returned on failure too, so callers can still inspect partial output.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/ib-77/ropsync/pkg/logging"
	"github.com/ib-77/ropsync/pkg/rop"
	"github.com/kballard/go-shellquote"
)

var ErrEmptyCommand = errors.New("empty command")

// WaitDelay bounds how long a command killed by its context may keep its
// output pipe open through leftover children.
var WaitDelay = 2 * time.Second

// Output is what a finished (or failed) command left behind.
type Output struct {
	// Stdout is everything the command wrote to standard output.
	Stdout string
	// ExitCode is -1 when the command did not run to completion.
	ExitCode int
}

// Execute splits command with POSIX shell quoting rules and runs it without a
// shell. A non-zero exit status is a failure carrying the output.
func Execute(ctx context.Context, command string) rop.DataResult[Output] {
	words, err := shellquote.Split(command)
	if err != nil {
		return rop.FailData(Output{ExitCode: -1}, fmt.Errorf("parsing command %q: %w", command, err))
	}
	if len(words) == 0 {
		return rop.FailData(Output{ExitCode: -1}, ErrEmptyCommand)
	}
	return run(ctx, command, exec.CommandContext(ctx, words[0], words[1:]...))
}

// ExecuteShell runs script through /bin/sh -c, so pipes and redirections work.
func ExecuteShell(ctx context.Context, script string) rop.DataResult[Output] {
	if script == "" {
		return rop.FailData(Output{ExitCode: -1}, ErrEmptyCommand)
	}
	return run(ctx, script, exec.CommandContext(ctx, "/bin/sh", "-c", script))
}

// Quote joins args into a single command line that Execute splits back into
// the same words.
func Quote(args ...string) string {
	return shellquote.Join(args...)
}

func run(ctx context.Context, display string, cmd *exec.Cmd) rop.DataResult[Output] {
	log := logging.FromContext(ctx)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.WaitDelay = WaitDelay
	err := cmd.Run()
	out := Output{Stdout: stdout.String(), ExitCode: cmd.ProcessState.ExitCode()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return rop.NewDataResult(out)
	case rop.IsCancellationError(ctx.Err()):
		log.Warnf("process %q interrupted: %v", display, ctx.Err())
		return rop.FailData(out, fmt.Errorf("process %q interrupted: %w", display, ctx.Err()))
	case errors.As(err, &exitErr):
		log.Debugf("process %q exited unsuccessfully with code %d", display, out.ExitCode)
		return rop.FailData(out, fmt.Errorf("process %q exited with code %d: %w", display, out.ExitCode, err))
	default:
		log.Errorf("failed to execute %q: %v", display, err)
		return rop.FailData(out, fmt.Errorf("failed to execute %q: %w", display, err))
	}
}
