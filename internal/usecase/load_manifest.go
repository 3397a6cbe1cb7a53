package usecase

import (
	"context"

	"github.com/compozy/autotag/internal/domain"
	"github.com/compozy/autotag/internal/service"
	"go.uber.org/zap"
)

// LoadManifestUseCase parses a located manifest and decides whether it is
// eligible for tagging.

type LoadManifestUseCase struct {
	ManifestSvc service.ManifestService
	Logger      *zap.Logger
}

// Execute parses the manifest at loc. The returned bool is false when the
// package has not opted in; the manifest is still returned in that case.
// Versions that are not semantic versions are accepted with a warning.
func (uc *LoadManifestUseCase) Execute(
	ctx context.Context,
	loc domain.ManifestLocation,
) (*domain.Manifest, bool, error) {
	m, err := uc.ManifestSvc.Parse(ctx, loc)
	if err != nil {
		return nil, false, err
	}
	log := uc.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if !m.TaggingEnabled {
		log.Info("auto-tag not enabled, skipping")
		return m, false, nil
	}
	if !domain.IsSemanticVersion(m.Version) {
		log.Warn("version is not a semantic version, using it verbatim", zap.String("version", m.Version))
	}
	return m, true, nil
}
