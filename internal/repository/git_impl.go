package repository

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/compozy/autotag/internal/domain"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// lockFileName lives in the git directory and guards tag creation.
const lockFileName = "auto-tag.lock"

// gitRepository is the implementation of the GitRepository interface.

type gitRepository struct {
	repo    *git.Repository
	root    string
	gitDir  string
	backend GitBackend
	git     *gitCommand
}

// NewGitRepository opens the repository containing dir, walking up to find .git.
func NewGitRepository(dir string, backend GitBackend) (GitRepository, error) {
	switch backend {
	case GitBackendExec, GitBackendNative:
	case "":
		backend = GitBackendExec
	default:
		return nil, fmt.Errorf("unknown git backend %q", backend)
	}
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrNotAGitRepository, dir, err)
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve repository path: %w", err)
	}
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	gitDir := filepath.Join(root, git.GitDirName)
	if fsStorage, ok := repo.Storer.(*filesystem.Storage); ok {
		gitDir = fsStorage.Filesystem().Root()
	}
	return &gitRepository{
		repo:    repo,
		root:    root,
		gitDir:  gitDir,
		backend: backend,
		git:     newGitCommand(root),
	}, nil
}

// ResolveCommit resolves a revision to the full hash of the commit it names.
func (r *gitRepository) ResolveCommit(_ context.Context, rev string) (string, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return "", fmt.Errorf("%w: failed to resolve commit %s: %w", domain.ErrGitCommandFailed, rev, err)
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a commit: %w", domain.ErrGitCommandFailed, rev, err)
	}
	return commit.Hash.String(), nil
}

// TagExists checks if a tag exists.
func (r *gitRepository) TagExists(_ context.Context, tag string) (bool, error) {
	_, err := r.repo.Tag(tag)
	if errors.Is(err, git.ErrTagNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: failed to check tag %s: %w", domain.ErrGitCommandFailed, tag, err)
	}
	return true, nil
}

// CreateTag creates an annotated tag at spec.Commit, holding the repository tag lock.
func (r *gitRepository) CreateTag(ctx context.Context, spec domain.TagSpec) error {
	lock := newTagLock(filepath.Join(r.gitDir, lockFileName))
	if err := lock.Acquire(ctx); err != nil {
		return err
	}
	defer lock.Release()
	if r.backend == GitBackendNative {
		return r.createTagNative(spec)
	}
	return r.git.CreateTag(ctx, spec)
}

// createTagNative writes the tag object and reference with go-git.
func (r *gitRepository) createTagNative(spec domain.TagSpec) error {
	_, err := r.repo.CreateTag(spec.Name, plumbing.NewHash(spec.Commit), &git.CreateTagOptions{
		Message: spec.Message,
		Tagger: &object.Signature{
			Name:  spec.Tagger.Name,
			Email: spec.Tagger.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create tag %s: %w", domain.ErrGitCommandFailed, spec.Name, err)
	}
	return nil
}
