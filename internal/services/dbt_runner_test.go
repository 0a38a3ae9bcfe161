package services

import (
	"context"
	"errors"
	"testing"

	apperrors "finance-pipeline/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type commandCall struct {
	name string
	args []string
}

// fakeCommandRunner records calls and fails on the step named in failOn
type fakeCommandRunner struct {
	calls  []commandCall
	failOn string
	output string
}

func (f *fakeCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, commandCall{name: name, args: args})
	if len(args) > 0 && args[0] == f.failOn {
		return []byte(f.output), errors.New("exit status 1")
	}
	return []byte("ok"), nil
}

func TestDBTRunner_RunsAllSteps(t *testing.T) {
	runner := &fakeCommandRunner{}
	tool := NewDBTRunner(DBTConfig{ProjectDir: "dbt/project", ProfilesDir: "dbt/profiles"}, runner, nil)

	require.NoError(t, tool.Run(context.Background()))
	require.Len(t, runner.calls, 3)

	for i, step := range DBTSteps {
		assert.Equal(t, "dbt", runner.calls[i].name)
		assert.Equal(t, []string{step, "--profiles-dir", "dbt/profiles", "--project-dir", "dbt/project"}, runner.calls[i].args)
	}
}

func TestDBTRunner_StopsAtFirstFailure(t *testing.T) {
	runner := &fakeCommandRunner{failOn: "run", output: "Running models\nCompilation Error in model stg_transactions\n"}
	tool := NewDBTRunner(DBTConfig{Binary: "/usr/local/bin/dbt"}, runner, nil)

	err := tool.Run(context.Background())
	require.Error(t, err)
	require.Len(t, runner.calls, 2)
	assert.Equal(t, "/usr/local/bin/dbt", runner.calls[1].name)

	var toolErr *apperrors.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "run", toolErr.Step)
	assert.Contains(t, err.Error(), "Compilation Error in model stg_transactions")
	assert.NotContains(t, err.Error(), "Running models")
	assert.Equal(t, 3, apperrors.ExitCode(err))
}

func TestDBTRunner_FailureWithoutOutput(t *testing.T) {
	runner := &fakeCommandRunner{failOn: "deps"}
	runner.output = ""
	tool := NewDBTRunner(DBTConfig{}, runner, nil)

	err := tool.Run(context.Background())
	require.Error(t, err)
	assert.Len(t, runner.calls, 1)
	assert.True(t, apperrors.IsToolError(err))
	assert.Contains(t, err.Error(), "exit status 1")
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "c", lastLine("a\nb\nc"))
	assert.Equal(t, "single", lastLine("single"))
}
