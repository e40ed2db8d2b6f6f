package orchestrator

import (
	"context"

	"github.com/jhight/stash-release/internal/domain"
	"github.com/jhight/stash-release/internal/repository"
	"github.com/stretchr/testify/mock"
)

// Mock for GithubRepository - implements ALL methods from GithubRepository interface
type mockGithubRepository struct{ mock.Mock }

func (m *mockGithubRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	tags, _ := args.Get(0).([]domain.Tag)
	return tags, args.Error(1)
}
func (m *mockGithubRepository) LatestRelease(ctx context.Context) (*domain.Release, error) {
	args := m.Called(ctx)
	release, _ := args.Get(0).(*domain.Release)
	return release, args.Error(1)
}
func (m *mockGithubRepository) ListCommits(ctx context.Context, sha string, page int) ([]domain.Commit, error) {
	args := m.Called(ctx, sha, page)
	commits, _ := args.Get(0).([]domain.Commit)
	return commits, args.Error(1)
}
func (m *mockGithubRepository) CreateRelease(ctx context.Context, release domain.NewRelease) (*domain.Release, error) {
	args := m.Called(ctx, release)
	created, _ := args.Get(0).(*domain.Release)
	return created, args.Error(1)
}
func (m *mockGithubRepository) UploadAsset(ctx context.Context, uploadURL string, asset repository.AssetUpload) error {
	args := m.Called(ctx, uploadURL, asset)
	return args.Error(0)
}
