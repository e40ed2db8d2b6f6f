package repository

import (
	"context"
	"io"

	"github.com/jhight/stash-release/internal/domain"
)

// GithubRepository defines the interface for GitHub API operations.
type GithubRepository interface {
	// ListTags returns the first page of tags, newest first.
	ListTags(ctx context.Context) ([]domain.Tag, error)
	// LatestRelease returns nil without error when the platform reports no release.
	LatestRelease(ctx context.Context) (*domain.Release, error)
	CommitLister
	CreateRelease(ctx context.Context, release domain.NewRelease) (*domain.Release, error)
	UploadAsset(ctx context.Context, uploadURL string, asset AssetUpload) error
}

// CommitLister lists commits reachable from a ref, one page at a time.
type CommitLister interface {
	ListCommits(ctx context.Context, sha string, page int) ([]domain.Commit, error)
}

// AssetUpload is the raw body of a release asset.
type AssetUpload struct {
	Content     io.Reader
	Size        int64
	ContentType string
}
