package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/compozy/autotag/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadManifestUseCase_Execute(t *testing.T) {
	loc := domain.ManifestLocation{Format: domain.FormatCargo, Path: "Cargo.toml"}
	t.Run("Should return enabled manifest as eligible", func(t *testing.T) {
		svc := new(mockManifestService)
		core, logs := observer.New(zapcore.InfoLevel)
		uc := &LoadManifestUseCase{ManifestSvc: svc, Logger: zap.New(core)}
		ctx := context.Background()
		expected := &domain.Manifest{
			Format:         domain.FormatCargo,
			Path:           "Cargo.toml",
			Name:           "my-lib",
			Version:        "0.1.0",
			TaggingEnabled: true,
		}
		svc.On("Parse", ctx, loc).Return(expected, nil)
		m, eligible, err := uc.Execute(ctx, loc)
		require.NoError(t, err)
		assert.True(t, eligible)
		assert.Equal(t, expected, m)
		assert.Zero(t, logs.Len())
		svc.AssertExpectations(t)
	})
	t.Run("Should report disabled manifest as not eligible", func(t *testing.T) {
		svc := new(mockManifestService)
		core, logs := observer.New(zapcore.InfoLevel)
		uc := &LoadManifestUseCase{ManifestSvc: svc, Logger: zap.New(core)}
		ctx := context.Background()
		disabled := &domain.Manifest{Format: domain.FormatCargo, Path: "Cargo.toml", Name: "my-lib"}
		svc.On("Parse", ctx, loc).Return(disabled, nil)
		m, eligible, err := uc.Execute(ctx, loc)
		require.NoError(t, err)
		assert.False(t, eligible)
		assert.Equal(t, disabled, m)
		assert.Equal(t, 1, logs.FilterMessage("auto-tag not enabled, skipping").Len())
	})
	t.Run("Should warn about non-semver versions and stay eligible", func(t *testing.T) {
		svc := new(mockManifestService)
		core, logs := observer.New(zapcore.WarnLevel)
		uc := &LoadManifestUseCase{ManifestSvc: svc, Logger: zap.New(core)}
		ctx := context.Background()
		svc.On("Parse", ctx, loc).Return(&domain.Manifest{
			Format:         domain.FormatCargo,
			Name:           "my-lib",
			Version:        "2024.01",
			TaggingEnabled: true,
		}, nil)
		_, eligible, err := uc.Execute(ctx, loc)
		require.NoError(t, err)
		assert.True(t, eligible)
		warnings := logs.All()
		require.Len(t, warnings, 1)
		assert.Equal(t, "2024.01", warnings[0].ContextMap()["version"])
	})
	t.Run("Should propagate parse errors", func(t *testing.T) {
		svc := new(mockManifestService)
		uc := &LoadManifestUseCase{ManifestSvc: svc}
		ctx := context.Background()
		svc.On("Parse", ctx, loc).Return(nil, fmt.Errorf("%w: Cargo.toml", domain.ErrManifestMalformed))
		m, eligible, err := uc.Execute(ctx, loc)
		assert.ErrorIs(t, err, domain.ErrManifestMalformed)
		assert.False(t, eligible)
		assert.Nil(t, m)
	})
}
