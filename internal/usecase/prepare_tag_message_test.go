package usecase

import (
	"context"
	"testing"

	"github.com/compozy/autotag/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareTagMessageUseCase_Execute(t *testing.T) {
	m := &domain.Manifest{Format: domain.FormatNpm, Name: "@myOrg/package", Version: "0.1.0", TaggingEnabled: true}
	t.Run("Should use default message without template", func(t *testing.T) {
		uc := &PrepareTagMessageUseCase{}
		msg, err := uc.Execute(context.Background(), m, "release-myOrg__package-0.1.0")
		require.NoError(t, err)
		assert.Equal(t, "automatic release tag of @myOrg/package (0.1.0)", msg)
	})
	t.Run("Should render custom template", func(t *testing.T) {
		uc := &PrepareTagMessageUseCase{Template: "{{.Format}} release {{.Name}}@{{.Version}} ({{.Tag}})\n"}
		msg, err := uc.Execute(context.Background(), m, "release-myOrg__package-0.1.0")
		require.NoError(t, err)
		assert.Equal(t, "npm release @myOrg/package@0.1.0 (release-myOrg__package-0.1.0)", msg)
	})
	t.Run("Should fail on unknown field", func(t *testing.T) {
		uc := &PrepareTagMessageUseCase{Template: "{{.Changelog}}"}
		_, err := uc.Execute(context.Background(), m, "release-x-1")
		assert.ErrorContains(t, err, "failed to execute tag message template")
	})
	t.Run("Should fail on invalid template syntax", func(t *testing.T) {
		uc := &PrepareTagMessageUseCase{Template: "{{.Name"}
		_, err := uc.Execute(context.Background(), m, "release-x-1")
		assert.ErrorContains(t, err, "failed to parse tag message template")
	})
	t.Run("Should fail on empty rendered message", func(t *testing.T) {
		uc := &PrepareTagMessageUseCase{Template: "{{if false}}x{{end}}"}
		_, err := uc.Execute(context.Background(), m, "release-x-1")
		assert.ErrorContains(t, err, "empty message")
	})
	t.Run("Should fail on nil manifest", func(t *testing.T) {
		uc := &PrepareTagMessageUseCase{}
		_, err := uc.Execute(context.Background(), nil, "release-x-1")
		assert.Error(t, err)
	})
}
