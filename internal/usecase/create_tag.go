package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/compozy/autotag/internal/domain"
	"github.com/compozy/autotag/internal/repository"
)

// CreateTagOptions controls how CreateTagUseCase treats the repository.
type CreateTagOptions struct {
	DryRun       bool
	SkipExisting bool
}

// CreateTagUseCase creates, or in dry-run mode reports, one annotated tag.

type CreateTagUseCase struct {
	GitRepo repository.GitRepository
	Out     io.Writer
}

// Execute runs the use case. Dry-run never touches the repository beyond an
// optional existence lookup, whose failure is ignored.
func (uc *CreateTagUseCase) Execute(
	ctx context.Context,
	spec domain.TagSpec,
	opts CreateTagOptions,
) (domain.TagOutcome, error) {
	if opts.DryRun {
		if opts.SkipExisting {
			if exists, err := uc.GitRepo.TagExists(ctx, spec.Name); err == nil && exists {
				uc.printSkipped(spec.Name)
				return domain.TagOutcomeSkippedExisting, nil
			}
		}
		fmt.Fprintf(uc.Out, "would create tag %q for %q with message %q as %s\n",
			spec.Name, spec.Commit, spec.Message, spec.Tagger)
		return domain.TagOutcomeDryRun, nil
	}
	commit, err := uc.GitRepo.ResolveCommit(ctx, spec.Commit)
	if err != nil {
		return "", err
	}
	spec.Commit = commit
	if opts.SkipExisting {
		exists, err := uc.GitRepo.TagExists(ctx, spec.Name)
		if err != nil {
			return "", err
		}
		if exists {
			uc.printSkipped(spec.Name)
			return domain.TagOutcomeSkippedExisting, nil
		}
	}
	if err := uc.GitRepo.CreateTag(ctx, spec); err != nil {
		return "", err
	}
	fmt.Fprintf(uc.Out, "created tag %q\n", spec.Name)
	return domain.TagOutcomeCreated, nil
}

func (uc *CreateTagUseCase) printSkipped(tag string) {
	fmt.Fprintf(uc.Out, "tag %q already exists, skipping...\n", tag)
}
