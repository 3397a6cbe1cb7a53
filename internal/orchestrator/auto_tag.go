package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/compozy/autotag/internal/domain"
	"github.com/compozy/autotag/internal/repository"
	"github.com/compozy/autotag/internal/service"
	"github.com/compozy/autotag/internal/usecase"
	"go.uber.org/zap"
)

// GitOpener opens the repository that tags are written to.
type GitOpener func(dir string, backend repository.GitBackend) (repository.GitRepository, error)

// AutoTagConfig contains configuration for one auto-tag run.
type AutoTagConfig struct {
	RepoDir         string   // Directory inside the git repository, "." by default
	Paths           []string // Package directories to inspect
	Recursive       bool     // Also inspect every sub-directory of Paths
	Commit          string
	Tagger          domain.Identity
	DryRun          bool
	SkipExisting    bool
	GitBackend      repository.GitBackend
	MessageTemplate string
	Timeout         time.Duration
}

// AutoTagOrchestrator runs manifest detection, parsing and tag creation.
type AutoTagOrchestrator struct {
	openGit     GitOpener
	manifestSvc service.ManifestService
	out         io.Writer
	logger      *zap.Logger
}

// NewAutoTagOrchestrator creates a new auto-tag orchestrator.
func NewAutoTagOrchestrator(
	openGit GitOpener,
	manifestSvc service.ManifestService,
	out io.Writer,
	logger *zap.Logger,
) *AutoTagOrchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AutoTagOrchestrator{
		openGit:     openGit,
		manifestSvc: manifestSvc,
		out:         out,
		logger:      logger,
	}
}

// Execute processes every configured path. The repository is opened before
// any manifest is read, so running outside a repository always reports
// ErrNotAGitRepository. A failing package does not stop the others; all
// failures are joined into the returned error.
func (o *AutoTagOrchestrator) Execute(ctx context.Context, cfg AutoTagConfig) ([]domain.TagResult, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultWorkflowTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	repoDir := cfg.RepoDir
	if repoDir == "" {
		repoDir = "."
	}
	gitRepo, err := o.openGit(repoDir, cfg.GitBackend)
	if err != nil {
		return nil, err
	}
	paths := cfg.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}
	var (
		results []domain.TagResult
		errs    []error
	)
	for _, path := range paths {
		locs, err := o.manifestSvc.Discover(ctx, path, cfg.Recursive)
		if err != nil {
			o.logger.Error("failed to locate manifest", zap.String("path", path), zap.Error(err))
			errs = append(errs, fmt.Errorf("failed to locate manifest in %s: %w", path, err))
			continue
		}
		for _, loc := range locs {
			result, err := o.processManifest(ctx, gitRepo, loc, cfg)
			if err != nil {
				o.logger.Error("failed to process manifest", zap.String("manifest", loc.Path), zap.Error(err))
				errs = append(errs, fmt.Errorf("failed to process %s: %w", loc.Path, err))
				continue
			}
			results = append(results, result)
		}
	}
	return results, errors.Join(errs...)
}

// processManifest parses one manifest and tags it when enabled.
func (o *AutoTagOrchestrator) processManifest(
	ctx context.Context,
	gitRepo repository.GitRepository,
	loc domain.ManifestLocation,
	cfg AutoTagConfig,
) (domain.TagResult, error) {
	log := o.logger.With(zap.String("manifest", loc.Path), zap.String("format", string(loc.Format)))
	loadUC := &usecase.LoadManifestUseCase{ManifestSvc: o.manifestSvc, Logger: log}
	m, eligible, err := loadUC.Execute(ctx, loc)
	if err != nil {
		return domain.TagResult{}, err
	}
	if !eligible {
		return domain.TagResult{Manifest: m, Outcome: domain.TagOutcomeSkippedDisabled}, nil
	}
	spec := domain.NewTagSpec(m, cfg.Commit, cfg.Tagger)
	if err := ValidateTagName(spec.Name); err != nil {
		return domain.TagResult{}, err
	}
	msgUC := &usecase.PrepareTagMessageUseCase{Template: cfg.MessageTemplate}
	if spec.Message, err = msgUC.Execute(ctx, m, spec.Name); err != nil {
		return domain.TagResult{}, err
	}
	tagUC := &usecase.CreateTagUseCase{GitRepo: gitRepo, Out: o.out}
	outcome, err := tagUC.Execute(ctx, spec, usecase.CreateTagOptions{
		DryRun:       cfg.DryRun,
		SkipExisting: cfg.SkipExisting,
	})
	if err != nil {
		return domain.TagResult{}, err
	}
	log.Debug("package processed", zap.String("tag", spec.Name), zap.String("outcome", string(outcome)))
	return domain.TagResult{Manifest: m, Tag: spec.Name, Commit: spec.Commit, Outcome: outcome}, nil
}

// validateConfig checks the values every run needs.
func validateConfig(cfg AutoTagConfig) error {
	var missing []string
	if strings.TrimSpace(cfg.Commit) == "" {
		missing = append(missing, "commit")
	}
	if strings.TrimSpace(cfg.Tagger.Email) == "" {
		missing = append(missing, "git-user-email")
	}
	if strings.TrimSpace(cfg.Tagger.Name) == "" {
		missing = append(missing, "git-user-name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required values: %s", strings.Join(missing, ", "))
	}
	return nil
}
