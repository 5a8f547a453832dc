package renderer

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Executor runs an external command and returns its stdout. Video
// rendering shells out to ffmpeg through this interface so tests can
// substitute the binary.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}

type commandExecutor struct{}

// NewExecutor returns an Executor backed by the local process table.
func NewExecutor() Executor {
	return commandExecutor{}
}

func (commandExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			return "", fmt.Errorf("run %s: %w", name, err)
		}

		return "", fmt.Errorf("run %s: %w: %s", name, err, detail)
	}

	return stdout.String(), nil
}
