package usecase

import (
	"context"
	"fmt"

	"github.com/jhight/stash-release/internal/domain"
	"github.com/stretchr/testify/mock"
)

// Mock for CommitLister
type mockCommitLister struct {
	mock.Mock
}

func (m *mockCommitLister) ListCommits(ctx context.Context, sha string, page int) ([]domain.Commit, error) {
	args := m.Called(ctx, sha, page)
	commits, _ := args.Get(0).([]domain.Commit)
	return commits, args.Error(1)
}

func makeCommits(prefix string, n int) []domain.Commit {
	commits := make([]domain.Commit, n)
	for i := range commits {
		sha := fmt.Sprintf("%s%02d", prefix, i)
		commits[i] = domain.Commit{SHA: sha, AuthorLogin: "octo", HTMLURL: "https://github.com/jhight/stash/commit/" + sha}
	}
	return commits
}
