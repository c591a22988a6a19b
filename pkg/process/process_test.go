package process

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/ib-77/ropsync/pkg/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no POSIX shell available")
	}
}

func observed() (context.Context, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.WithLogger(context.Background(), zap.New(core).Sugar()), logs
}

func TestExecute_Success(t *testing.T) {
	requireShell(t)
	ctx, _ := observed()

	res := Execute(ctx, Quote("sh", "-c", "printf 'hello world'"))
	require.True(t, res.IsSuccess(), res.ErrorMessage())
	require.Equal(t, "hello world", res.Value().Stdout)
	require.Zero(t, res.Value().ExitCode)
}

func TestExecute_NonZeroExitKeepsOutput(t *testing.T) {
	requireShell(t)
	ctx, logs := observed()

	res := Execute(ctx, `sh -c "echo partial; exit 3"`)
	require.False(t, res.IsSuccess())
	require.Equal(t, "partial\n", res.Value().Stdout)
	require.Equal(t, 3, res.Value().ExitCode)
	require.Contains(t, res.ErrorMessage(), "exited with code 3")

	var exitErr *exec.ExitError
	require.ErrorAs(t, res.Err(), &exitErr)
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.DebugLevel).Len())
}

func TestExecute_MissingProgram(t *testing.T) {
	ctx, logs := observed()

	res := Execute(ctx, "/definitely/not/a/program --help")
	require.False(t, res.IsSuccess())
	require.Equal(t, -1, res.Value().ExitCode)
	require.Contains(t, res.ErrorMessage(), "failed to execute")
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestExecute_BadInput(t *testing.T) {
	ctx, _ := observed()

	require.ErrorIs(t, Execute(ctx, "   ").Err(), ErrEmptyCommand)
	require.ErrorIs(t, ExecuteShell(ctx, "").Err(), ErrEmptyCommand)

	res := Execute(ctx, `echo "unterminated`)
	require.False(t, res.IsSuccess())
	require.Contains(t, res.ErrorMessage(), "parsing command")
}

func TestExecuteShell_Pipes(t *testing.T) {
	requireShell(t)
	ctx, _ := observed()

	res := ExecuteShell(ctx, "printf 'b\\na\\n' | sort")
	require.True(t, res.IsSuccess(), res.ErrorMessage())
	require.Equal(t, "a\nb\n", res.Value().Stdout)
}

func TestExecute_ContextDeadline(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("no sleep binary")
	}
	ctx, logs := observed()
	ctx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	res := Execute(ctx, "sleep 5")
	require.False(t, res.IsSuccess())
	require.ErrorIs(t, res.Err(), context.DeadlineExceeded)
	require.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
