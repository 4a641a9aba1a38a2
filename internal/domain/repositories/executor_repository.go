package repositories

import (
	"context"
)

// ExecutorRepository runs external commands uniformly. Non-zero exits are
// reported as *entities.CommandError carrying the command line and exit code;
// failures never panic.
type ExecutorRepository interface {
	// Run executes name with args in dir (the current directory when dir is
	// empty) and returns the captured standard output.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)
}
