package usecase

import (
	"context"

	"github.com/compozy/autotag/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for GitRepository
type mockGitRepository struct {
	mock.Mock
}

func (m *mockGitRepository) ResolveCommit(ctx context.Context, rev string) (string, error) {
	args := m.Called(ctx, rev)
	return args.String(0), args.Error(1)
}

func (m *mockGitRepository) TagExists(ctx context.Context, tag string) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

func (m *mockGitRepository) CreateTag(ctx context.Context, spec domain.TagSpec) error {
	args := m.Called(ctx, spec)
	return args.Error(0)
}

// Mock for ManifestService
type mockManifestService struct {
	mock.Mock
}

func (m *mockManifestService) Locate(ctx context.Context, dir string) (domain.ManifestLocation, error) {
	args := m.Called(ctx, dir)
	return args.Get(0).(domain.ManifestLocation), args.Error(1)
}

func (m *mockManifestService) Discover(
	ctx context.Context,
	root string,
	recursive bool,
) ([]domain.ManifestLocation, error) {
	args := m.Called(ctx, root, recursive)
	if locs := args.Get(0); locs != nil {
		return locs.([]domain.ManifestLocation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockManifestService) Parse(ctx context.Context, loc domain.ManifestLocation) (*domain.Manifest, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Manifest), args.Error(1)
}
