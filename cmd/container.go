package cmd

import (
	"io"

	"github.com/compozy/autotag/internal/config"
	"github.com/compozy/autotag/internal/logger"
	"github.com/compozy/autotag/internal/orchestrator"
	"github.com/compozy/autotag/internal/repository"
	"github.com/compozy/autotag/internal/service"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// container holds all the dependencies for the application.

type container struct {
	logger       *zap.Logger
	orchestrator *orchestrator.AutoTagOrchestrator
}

// newContainer creates a new container with all the dependencies. Results
// are written to out and diagnostics to logOut.
func newContainer(cfg *config.Config, out, logOut io.Writer) (*container, error) {
	log, err := logger.New(cfg.LogLevel, logOut)
	if err != nil {
		return nil, err
	}
	fsRepo := repository.FileSystemRepository(afero.NewOsFs())
	// Opened per run by the orchestrator.
	orch := orchestrator.NewAutoTagOrchestrator(
		repository.NewGitRepository,
		service.NewManifestService(fsRepo),
		out,
		log,
	)
	return &container{logger: log, orchestrator: orch}, nil
}
