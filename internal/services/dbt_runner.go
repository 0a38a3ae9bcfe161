package services

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	apperrors "finance-pipeline/internal/errors"
)

// DBTSteps are the dbt commands of a run, in order
var DBTSteps = []string{"deps", "run", "test"}

// DBTConfig locates the dbt executable and project
type DBTConfig struct {
	Binary      string
	ProjectDir  string
	ProfilesDir string
}

type dbtRunner struct {
	config DBTConfig
	runner CommandRunner
	logger *PipelineLogger
}

// NewDBTRunner creates a ToolRunnerInterface that drives dbt through runner
func NewDBTRunner(config DBTConfig, runner CommandRunner, logger *PipelineLogger) ToolRunnerInterface {
	if config.Binary == "" {
		config.Binary = "dbt"
	}
	if runner == nil {
		runner = NewExecCommandRunner()
	}
	if logger == nil {
		logger = NewPipelineLogger(nil)
	}
	return &dbtRunner{
		config: config,
		runner: runner,
		logger: logger,
	}
}

// Run executes every dbt step and stops at the first failure
func (r *dbtRunner) Run(ctx context.Context) error {
	for _, step := range DBTSteps {
		args := []string{step, "--profiles-dir", r.config.ProfilesDir, "--project-dir", r.config.ProjectDir}

		start := time.Now()
		output, err := r.runner.Run(ctx, r.config.Binary, args...)
		if err != nil {
			if out := strings.TrimSpace(string(output)); out != "" {
				err = fmt.Errorf("%w: %s", err, lastLine(out))
			}
			r.logger.LogToolStep(ctx, step, time.Since(start).Milliseconds(), err)
			return &apperrors.ToolError{Step: step, Err: err}
		}
		r.logger.LogToolStep(ctx, step, time.Since(start).Milliseconds(), nil)
	}
	return nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

type execCommandRunner struct{}

// NewExecCommandRunner creates a CommandRunner backed by os/exec
func NewExecCommandRunner() CommandRunner {
	return execCommandRunner{}
}

// Run executes name with args and returns the combined output
func (execCommandRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
