package service

import (
	"context"

	"github.com/compozy/autotag/internal/domain"
)

// ManifestService defines the interface for locating and parsing package manifests.

type ManifestService interface {
	Locate(ctx context.Context, dir string) (domain.ManifestLocation, error)
	Discover(ctx context.Context, root string, recursive bool) ([]domain.ManifestLocation, error)
	Parse(ctx context.Context, loc domain.ManifestLocation) (*domain.Manifest, error)
}
