package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/jhight/stash-release/internal/config"
	"github.com/jhight/stash-release/internal/domain"
	"github.com/jhight/stash-release/internal/repository"
	"github.com/jhight/stash-release/internal/usecase"
	"go.uber.org/zap"
)

// CreateReleaseConfig contains per-run options for the create-release workflow.
type CreateReleaseConfig struct {
	DryRun bool // build the release payload but do not submit it
}

// CreateReleaseOrchestrator publishes a release for the newest version tag.
type CreateReleaseOrchestrator struct {
	githubRepo repository.GithubRepository
	flag       repository.FlagWriter
	cfg        *config.Config
	logger     *zap.Logger
}

// NewCreateReleaseOrchestrator creates a new create-release orchestrator.
func NewCreateReleaseOrchestrator(
	githubRepo repository.GithubRepository,
	flag repository.FlagWriter,
	cfg *config.Config,
	logger *zap.Logger,
) *CreateReleaseOrchestrator {
	return &CreateReleaseOrchestrator{
		githubRepo: githubRepo,
		flag:       flag,
		cfg:        cfg,
		logger:     logger,
	}
}

// Execute runs the workflow and records the result flag. Transport failures
// are returned as errors and leave the flag untouched; every other ending is
// reported through the outcome.
func (o *CreateReleaseOrchestrator) Execute(ctx context.Context, runCfg CreateReleaseConfig) (domain.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, workflowTimeout())
	defer cancel()
	outcome, err := o.run(ctx, runCfg)
	if err != nil {
		return "", err
	}
	if err := o.flag.Write(ctx, outcome.Succeeded()); err != nil {
		return outcome, fmt.Errorf("failed to record release result: %w", err)
	}
	o.logger.Info("Recorded release result",
		zap.String("outcome", string(outcome)), zap.String("flag_file", o.flag.Path()))
	return outcome, nil
}

func (o *CreateReleaseOrchestrator) run(ctx context.Context, runCfg CreateReleaseConfig) (domain.Outcome, error) {
	if err := ValidateBranchName(o.cfg.MainBranch); err != nil {
		return "", fmt.Errorf("invalid target branch: %w", err)
	}
	tags, err := o.githubRepo.ListTags(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list tags: %w", err)
	}
	latest, previous := usecase.SelectVersionTags(tags)
	if latest == nil {
		o.logger.Info("Version tag not found, exiting")
		return domain.OutcomeNothingToDo, nil
	}
	o.logTags(latest, previous)

	release, err := o.githubRepo.LatestRelease(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get latest release: %w", err)
	}
	if release != nil {
		o.logger.Info("Latest release", zap.String("tag", release.TagName))
		if release.TagName == latest.Name {
			o.logger.Info("Latest version tag is identical to latest release, no need to do anything",
				zap.String("tag", latest.Name))
			return domain.OutcomeAlreadyReleased, nil
		}
	} else {
		o.logger.Info("No latest release found")
	}

	payload, err := o.buildRelease(ctx, *latest, previous)
	if err != nil {
		return "", err
	}
	o.logger.Info("Submitting release", zap.Any("release", payload))
	if runCfg.DryRun {
		o.logger.Info("Dry-run complete, release not submitted", zap.String("tag", payload.TagName))
		return domain.OutcomeDryRun, nil
	}
	created, err := o.githubRepo.CreateRelease(ctx, payload)
	if err != nil {
		var remoteErr *repository.RemoteError
		if errors.As(err, &remoteErr) {
			o.logger.Error("Release creation failed",
				zap.Int("status", remoteErr.StatusCode), zap.Error(remoteErr.Err))
			return domain.OutcomeCreationFailed, nil
		}
		return "", fmt.Errorf("failed to create release: %w", err)
	}
	o.logger.Info("Created release",
		zap.Int64("id", created.ID), zap.String("tag", created.TagName), zap.String("url", created.HTMLURL))
	return domain.OutcomeCreated, nil
}

// buildRelease scans the commits since the previous tag and renders the
// release body.
func (o *CreateReleaseOrchestrator) buildRelease(
	ctx context.Context,
	latest domain.Tag,
	previous *domain.Tag,
) (domain.NewRelease, error) {
	startSHA := ""
	if previous != nil {
		startSHA = previous.CommitSHA
	}
	o.logger.Info("Retrieving commits",
		zap.String("after", domain.ShortenSHA(startSHA)), zap.String("up_to", domain.ShortenSHA(latest.CommitSHA)))
	scan := &usecase.ScanCommitsUseCase{
		Lister:     o.githubRepo,
		MaxCommits: o.cfg.MaxCommits,
		Logger:     o.logger,
	}
	commits, err := scan.Execute(ctx, latest.CommitSHA, startSHA)
	if err != nil {
		return domain.NewRelease{}, fmt.Errorf("failed to collect commits: %w", err)
	}
	for _, c := range commits {
		o.logger.Debug("Changelog entry", zap.String("sha", c.ShortSHA()), zap.String("author", c.AuthorLogin))
	}
	render := &usecase.RenderChangelogUseCase{
		ServerURL:  o.cfg.ServerURL,
		Repository: o.cfg.GithubRepository,
	}
	body, err := render.Execute(latest, previous, commits)
	if err != nil {
		return domain.NewRelease{}, fmt.Errorf("failed to render changelog: %w", err)
	}
	return domain.NewRelease{
		TagName:         latest.Name,
		TargetCommitish: o.cfg.MainBranch,
		Name:            latest.Name,
		Body:            body,
	}, nil
}

func (o *CreateReleaseOrchestrator) logTags(latest, previous *domain.Tag) {
	o.logger.Info("Latest version tag", zap.String("tag", latest.Name), zap.String("sha", latest.CommitSHA))
	if previous == nil {
		o.logger.Warn("No previous version tag, changelog covers history up to the commit limit",
			zap.Int("max_commits", o.cfg.MaxCommits))
		return
	}
	o.logger.Info("Previous version tag", zap.String("tag", previous.Name), zap.String("sha", previous.CommitSHA))
	latestVer, err := domain.NewVersion(latest.Name)
	if err != nil {
		return
	}
	previousVer, err := domain.NewVersion(previous.Name)
	if err != nil {
		return
	}
	if latestVer.Compare(previousVer) <= 0 {
		o.logger.Warn("Latest version tag does not sort above the previous one",
			zap.String("latest", latestVer.String()), zap.String("previous", previousVer.String()))
	}
}
