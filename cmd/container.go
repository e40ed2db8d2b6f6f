package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhight/stash-release/internal/config"
	"github.com/jhight/stash-release/internal/logger"
	"github.com/jhight/stash-release/internal/orchestrator"
	"github.com/jhight/stash-release/internal/repository"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// container holds all the dependencies for the application.
type container struct {
	cfg    *config.Config
	logger *zap.Logger

	fsRepo repository.FileSystemRepository
	ghRepo repository.GithubRepository
}

// newContainer loads configuration and creates the dependencies. A non-empty
// logLevel overrides the configured one.
func newContainer(logLevel string) (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	log, err := logger.New(cfg.LogLevel, uuid.New().String())
	if err != nil {
		return nil, err
	}
	ghRepo, err := repository.NewGithubRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize GitHub repository: %w", err)
	}
	return &container{
		cfg:    cfg,
		logger: log.With(zap.String("repository", cfg.GithubRepository)),
		fsRepo: repository.FileSystemRepository(afero.NewOsFs()),
		ghRepo: ghRepo,
	}, nil
}

func (c *container) createReleaseOrchestrator() *orchestrator.CreateReleaseOrchestrator {
	return orchestrator.NewCreateReleaseOrchestrator(
		c.ghRepo,
		repository.NewFlagWriter(c.fsRepo, c.cfg.ReleaseFlagFile),
		c.cfg,
		c.logger.Named("create-release"),
	)
}

func (c *container) attachAssetOrchestrator() *orchestrator.AttachAssetOrchestrator {
	return orchestrator.NewAttachAssetOrchestrator(
		c.ghRepo,
		c.fsRepo,
		repository.NewFlagWriter(c.fsRepo, c.cfg.AttachFlagFile),
		c.cfg,
		c.logger.Named("attach-asset"),
	)
}

// InitCommands registers all commands on the root command.
func InitCommands() error {
	var logLevel string
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	load := func() (*container, error) {
		return newContainer(logLevel)
	}
	rootCmd.AddCommand(NewCreateReleaseCmd(load))
	rootCmd.AddCommand(NewAttachAssetCmd(load))
	rootCmd.AddCommand(newVersionCmd())
	return nil
}
