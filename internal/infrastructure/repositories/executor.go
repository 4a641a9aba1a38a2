package repositories

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/gitupgrade/internal/domain/entities"
	domainRepos "github.com/rios0rios0/gitupgrade/internal/domain/repositories"
)

// CommandExecutor runs external commands through os/exec, translating
// non-zero exits into *entities.CommandError. It serves short status queries
// and long-running installs uniformly; cancelling the context kills the
// child process.
type CommandExecutor struct{}

var _ domainRepos.ExecutorRepository = (*CommandExecutor)(nil)

// NewCommandExecutor creates a new CommandExecutor.
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{}
}

// Run executes name with args in dir and returns the captured standard output.
func (it *CommandExecutor) Run(
	ctx context.Context,
	dir, name string,
	args ...string,
) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	commandLine := strings.Join(append([]string{name}, args...), " ")
	logger.Debugf("Running: %s", commandLine)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.String(), &entities.CommandError{
				Command:  commandLine,
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
		}
		return stdout.String(), fmt.Errorf("failed to start %q: %w", commandLine, err)
	}

	return stdout.String(), nil
}
