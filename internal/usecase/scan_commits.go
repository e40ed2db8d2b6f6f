package usecase

import (
	"context"
	"fmt"

	"github.com/jhight/stash-release/internal/domain"
	"github.com/jhight/stash-release/internal/repository"
	"go.uber.org/zap"
)

// DefaultMaxCommits bounds a scan whose start commit is never reached.
const DefaultMaxCommits = 300

// ScanCommitsUseCase collects the commits reachable from one ref down to, but
// excluding, another by paging through the commit listing.
type ScanCommitsUseCase struct {
	Lister     repository.CommitLister
	MaxCommits int
	Logger     *zap.Logger
}

// Execute returns the commits from endSHA back to startSHA (exclusive),
// newest first. When startSHA is empty or unreachable the scan stops at the
// root of history or at MaxCommits, whichever comes first.
func (uc *ScanCommitsUseCase) Execute(ctx context.Context, endSHA, startSHA string) ([]domain.Commit, error) {
	limit := uc.MaxCommits
	if limit <= 0 {
		limit = DefaultMaxCommits
	}
	log := uc.logger().With(zap.String("end_sha", endSHA), zap.String("start_sha", startSHA))
	log.Info("Looking for commits", zap.Int("max_commits", limit))
	commits := make([]domain.Commit, 0)
	seen := make(map[string]struct{})
	found := false
	for page := 1; ; page++ {
		if found || len(commits) >= limit {
			log.Info("Finished looking", zap.Int("commits", len(commits)), zap.Bool("start_found", found))
			return commits, nil
		}
		log.Debug("Reviewing commits page", zap.Int("page", page))
		batch, err := uc.Lister.ListCommits(ctx, endSHA, page)
		if err != nil {
			return nil, fmt.Errorf("failed to list commits page %d: %w", page, err)
		}
		if len(batch) == 0 {
			log.Info("Page had no results, finished looking",
				zap.Int("page", page), zap.Int("commits", len(commits)))
			return commits, nil
		}
		for _, commit := range batch {
			if startSHA != "" && commit.SHA == startSHA {
				found = true
				break
			}
			if len(commits) >= limit {
				break
			}
			if _, dup := seen[commit.SHA]; dup {
				continue
			}
			seen[commit.SHA] = struct{}{}
			log.Debug("Adding commit", zap.String("sha", commit.SHA))
			commits = append(commits, commit)
		}
	}
}

func (uc *ScanCommitsUseCase) logger() *zap.Logger {
	if uc.Logger == nil {
		return zap.NewNop()
	}
	return uc.Logger
}
