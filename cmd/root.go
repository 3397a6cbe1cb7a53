package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/compozy/autotag/internal/config"
	"github.com/compozy/autotag/internal/domain"
	"github.com/compozy/autotag/internal/orchestrator"
	"github.com/compozy/autotag/internal/repository"
	"github.com/compozy/autotag/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auto-tag [paths...]",
		Short: "Create release tags for packages that opt in to auto-tagging",
		Long: `auto-tag reads the package manifest (Cargo.toml, package.json or pyproject.toml)
in each given directory and, when auto-tagging is enabled, creates the annotated
tag release-<name>-<version> on the given commit.

Opt in with one of:
  Cargo.toml      [package.metadata.auto-tag] enabled = true
  package.json    "autoTag": { "enabled": true }
  pyproject.toml  [tool.auto-tag] enabled = true`,
		Version:       version.Summary(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAutoTag,
	}
	flags := cmd.Flags()
	flags.String("commit", "", "Commit SHA to tag (required, falls back to GITHUB_SHA)")
	flags.String("git-user-email", "", "Tagger e-mail (required)")
	flags.String("git-user-name", "", "Tagger name (required)")
	flags.Bool("dry-run", false, "Report the tags that would be created without creating them")
	flags.Bool("skip-existing", false, "Skip packages whose tag already exists instead of failing")
	flags.BoolP("recursive", "r", false, "Also inspect every sub-directory of the given paths")
	flags.String("git-backend", string(repository.GitBackendExec), "Tag backend: exec (git binary) or native (go-git)")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	flags.StringP("message", "m", "", "Tag message template, e.g. \"Release {{.Name}} {{.Version}}\"")
	flags.Duration("timeout", orchestrator.DefaultWorkflowTimeout, "Maximum duration of the whole run")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command with a context canceled on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func runAutoTag(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	if len(args) > 0 {
		cfg.Paths = args
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}
	c, err := newContainer(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = c.logger.Sync() }()
	_, err = c.orchestrator.Execute(cmd.Context(), autoTagConfig(cfg))
	return err
}

func autoTagConfig(cfg *config.Config) orchestrator.AutoTagConfig {
	return orchestrator.AutoTagConfig{
		Paths:           cfg.Paths,
		Recursive:       cfg.Recursive,
		Commit:          cfg.Commit,
		Tagger:          domain.Identity{Name: cfg.GitUserName, Email: cfg.GitUserEmail},
		DryRun:          cfg.DryRun,
		SkipExisting:    cfg.SkipExisting,
		GitBackend:      repository.GitBackend(cfg.GitBackend),
		MessageTemplate: cfg.TagMessage,
		Timeout:         cfg.Timeout,
	}
}
