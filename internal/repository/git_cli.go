package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/compozy/autotag/internal/domain"
)

// DefaultGitTimeout bounds a single git invocation.
const DefaultGitTimeout = 30 * time.Second

// gitCommand runs the git binary inside a repository.
type gitCommand struct {
	binary  string
	dir     string
	timeout time.Duration
}

func newGitCommand(dir string) *gitCommand {
	return &gitCommand{
		binary:  "git",
		dir:     dir,
		timeout: DefaultGitTimeout,
	}
}

// run executes git with args and extra environment, returning stdout.
func (g *gitCommand) run(ctx context.Context, env []string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Dir = g.dir
	cmd.Env = append(os.Environ(), env...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: git %s timed out after %v", domain.ErrGitCommandFailed, args[0], g.timeout)
		}
		if errMsg := strings.TrimSpace(stderr.String()); errMsg != "" {
			return nil, fmt.Errorf("%w: git %s: %w (stderr: %s)", domain.ErrGitCommandFailed, args[0], err, errMsg)
		}
		return nil, fmt.Errorf("%w: git %s: %w", domain.ErrGitCommandFailed, args[0], err)
	}
	return stdout.Bytes(), nil
}

// CreateTag runs `git tag --annotate` with the tagger identity taken from the environment.
func (g *gitCommand) CreateTag(ctx context.Context, spec domain.TagSpec) error {
	env := []string{
		"GIT_COMMITTER_NAME=" + spec.Tagger.Name,
		"GIT_COMMITTER_EMAIL=" + spec.Tagger.Email,
		"GIT_AUTHOR_NAME=" + spec.Tagger.Name,
		"GIT_AUTHOR_EMAIL=" + spec.Tagger.Email,
	}
	_, err := g.run(ctx, env, "tag", "--annotate", "--message", spec.Message, spec.Name, spec.Commit)
	return err
}
