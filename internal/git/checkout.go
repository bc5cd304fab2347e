package git

import (
	"context"

	"git.home.luguber.info/inful/railsdocs/internal/process"
)

// Checkouter brings the working tree at dir to tag.
type Checkouter interface {
	Checkout(ctx context.Context, dir, tag string) error
}

// ExecCheckouter shells out to the git executable.
type ExecCheckouter struct {
	runner process.Runner
	binary string
}

// NewExecCheckouter creates a checkouter running binary (default "git").
func NewExecCheckouter(runner process.Runner, binary string) *ExecCheckouter {
	if binary == "" {
		binary = "git"
	}
	return &ExecCheckouter{runner: runner, binary: binary}
}

// Command returns the invocation used for tag in dir.
func (c *ExecCheckouter) Command(dir, tag string) process.Command {
	return process.Command{Name: c.binary, Args: []string{"checkout", tag}, Dir: dir}
}

func (c *ExecCheckouter) Checkout(ctx context.Context, dir, tag string) error {
	_, err := c.runner.Run(ctx, c.Command(dir, tag))
	return err
}
