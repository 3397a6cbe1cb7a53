package repository

import (
	"context"

	"github.com/compozy/autotag/internal/domain"
)

// GitBackend selects how annotated tags are written.
type GitBackend string

const (
	// GitBackendExec shells out to the git binary on PATH.
	GitBackendExec GitBackend = "exec"
	// GitBackendNative writes the tag object with go-git.
	GitBackendNative GitBackend = "native"
)

// GitRepository defines the interface for Git operations.

type GitRepository interface {
	ResolveCommit(ctx context.Context, rev string) (string, error)
	TagExists(ctx context.Context, tag string) (bool, error)
	CreateTag(ctx context.Context, spec domain.TagSpec) error
}
