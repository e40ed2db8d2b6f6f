package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jhight/stash-release/internal/config"
	"github.com/jhight/stash-release/internal/domain"
	"github.com/jhight/stash-release/internal/repository"
	"go.uber.org/zap"
)

const fallbackContentType = "application/octet-stream"

// AttachAssetOrchestrator uploads the build artifact to the latest release.
type AttachAssetOrchestrator struct {
	githubRepo repository.GithubRepository
	fsRepo     repository.FileSystemRepository
	flag       repository.FlagWriter
	cfg        *config.Config
	logger     *zap.Logger
}

// NewAttachAssetOrchestrator creates a new attach-asset orchestrator.
func NewAttachAssetOrchestrator(
	githubRepo repository.GithubRepository,
	fsRepo repository.FileSystemRepository,
	flag repository.FlagWriter,
	cfg *config.Config,
	logger *zap.Logger,
) *AttachAssetOrchestrator {
	return &AttachAssetOrchestrator{
		githubRepo: githubRepo,
		fsRepo:     fsRepo,
		flag:       flag,
		cfg:        cfg,
		logger:     logger,
	}
}

// Execute runs the workflow and records the result flag. A missing artifact
// and a rejected upload come back as both an outcome and an error.
func (o *AttachAssetOrchestrator) Execute(ctx context.Context) (domain.Outcome, error) {
	ctx, cancel := context.WithTimeout(ctx, workflowTimeout())
	defer cancel()
	outcome, runErr := o.run(ctx)
	if outcome == "" {
		return "", runErr
	}
	if err := o.flag.Write(ctx, outcome.Succeeded()); err != nil {
		return outcome, errors.Join(runErr, fmt.Errorf("failed to record attach result: %w", err))
	}
	o.logger.Info("Recorded attach result",
		zap.String("outcome", string(outcome)), zap.String("flag_file", o.flag.Path()))
	return outcome, runErr
}

func (o *AttachAssetOrchestrator) run(ctx context.Context) (domain.Outcome, error) {
	path := o.cfg.ArtifactPath
	info, err := o.fsRepo.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		o.logger.Error("Cannot find build package", zap.String("path", path))
		if err == nil {
			err = fmt.Errorf("%s is not a regular file", path)
		}
		return domain.OutcomeMissingArtifact, fmt.Errorf("%w: %w", ErrMissingArtifact, err)
	}
	if err := ValidateAssetName(o.cfg.AssetName); err != nil {
		return "", fmt.Errorf("invalid asset name: %w", err)
	}

	release, err := o.githubRepo.LatestRelease(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get latest release: %w", err)
	}
	if release == nil {
		o.logger.Info("There is no latest release, exiting")
		return domain.OutcomeNoRelease, nil
	}

	uploadURL := AssetUploadURL(release.UploadURLTemplate, o.cfg.AssetName)
	contentType := ResolveContentType(o.cfg.AssetContentType, path)
	o.logger.Info("Attaching build package",
		zap.String("path", path),
		zap.String("release", release.Name),
		zap.String("asset", o.cfg.AssetName),
		zap.String("content_type", contentType),
		zap.String("upload_url", uploadURL))

	file, err := o.fsRepo.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()
	err = o.githubRepo.UploadAsset(ctx, uploadURL, repository.AssetUpload{
		Content:     file,
		Size:        info.Size(),
		ContentType: contentType,
	})
	if err != nil {
		var remoteErr *repository.RemoteError
		if errors.As(err, &remoteErr) {
			o.logger.Error("Upload rejected", zap.Int("status", remoteErr.StatusCode), zap.Error(remoteErr.Err))
			return domain.OutcomeUploadFailed, fmt.Errorf("%w: %w", ErrUploadFailed, err)
		}
		return "", fmt.Errorf("failed to upload asset: %w", err)
	}
	o.logger.Info("Success", zap.String("asset", o.cfg.AssetName))
	return domain.OutcomeAttached, nil
}

// AssetUploadURL expands a release upload_url template such as
// ".../assets{?name,label}" into a concrete endpoint for name.
func AssetUploadURL(template, name string) string {
	base, _, _ := strings.Cut(template, "{")
	return base + "?name=" + url.QueryEscape(name)
}

// ResolveContentType returns the configured content type, or one derived
// from the artifact's extension when none is configured.
func ResolveContentType(configured, path string) string {
	if configured != "" {
		return configured
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return fallbackContentType
}
