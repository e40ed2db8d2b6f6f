package repository

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-github/v74/github"
	"github.com/jhight/stash-release/internal/config"
	"github.com/jhight/stash-release/internal/domain"
	"golang.org/x/oauth2"
)

const (
	tagsPerPage    = 100
	commitsPerPage = 100
)

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGithubRepository creates a GithubRepository authenticated with the
// configured bearer token.
func NewGithubRepository(cfg *config.Config) (GithubRepository, error) {
	if err := config.ValidateGitHubToken(cfg.GithubToken); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	if err := config.ValidateRepositorySlug(cfg.GithubRepository); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	baseURL, err := endpointURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api_url: %w", err)
	}
	uploadURL, err := endpointURL(cfg.UploadURL)
	if err != nil {
		return nil, fmt.Errorf("invalid upload_url: %w", err)
	}
	// oauth2 sends "Authorization: Bearer <token>" on every request, uploads included
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(cfg.GithubToken)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)
	client.BaseURL = baseURL
	client.UploadURL = uploadURL
	return &githubRepository{
		client: client,
		owner:  cfg.Owner(),
		repo:   cfg.Repo(),
	}, nil
}

// endpointURL parses a base URL and makes sure it ends with a slash, which
// go-github requires for relative resolution.
func endpointURL(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	return url.Parse(raw)
}

// ListTags returns the first page of repository tags.
func (r *githubRepository) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, resp, err := r.client.Repositories.ListTags(ctx, r.owner, r.repo, &github.ListOptions{PerPage: tagsPerPage})
	if err != nil {
		return nil, classify("list tags", resp, err)
	}
	result := make([]domain.Tag, 0, len(tags))
	for _, tag := range tags {
		result = append(result, domain.Tag{
			Name:      tag.GetName(),
			CommitSHA: tag.GetCommit().GetSHA(),
		})
	}
	return result, nil
}

// LatestRelease returns the latest published release, or nil when the API
// answers with a non-2xx status.
func (r *githubRepository) LatestRelease(ctx context.Context) (*domain.Release, error) {
	release, resp, err := r.client.Repositories.GetLatestRelease(ctx, r.owner, r.repo)
	if err != nil {
		if resp != nil && resp.Response != nil && !isSuccess(resp.Response) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest release: %w", err)
	}
	return toDomainRelease(release), nil
}

// ListCommits returns one page of commits reachable from sha, newest first.
func (r *githubRepository) ListCommits(ctx context.Context, sha string, page int) ([]domain.Commit, error) {
	commits, resp, err := r.client.Repositories.ListCommits(ctx, r.owner, r.repo, &github.CommitsListOptions{
		SHA:         sha,
		ListOptions: github.ListOptions{Page: page, PerPage: commitsPerPage},
	})
	if err != nil {
		return nil, classify(fmt.Sprintf("list commits of %s page %d", sha, page), resp, err)
	}
	result := make([]domain.Commit, 0, len(commits))
	for _, c := range commits {
		result = append(result, domain.Commit{
			SHA:         c.GetSHA(),
			AuthorLogin: c.GetAuthor().GetLogin(),
			HTMLURL:     c.GetHTMLURL(),
		})
	}
	return result, nil
}

// CreateRelease submits a new release.
func (r *githubRepository) CreateRelease(ctx context.Context, release domain.NewRelease) (*domain.Release, error) {
	created, resp, err := r.client.Repositories.CreateRelease(ctx, r.owner, r.repo, &github.RepositoryRelease{
		TagName:         github.Ptr(release.TagName),
		TargetCommitish: github.Ptr(release.TargetCommitish),
		Name:            github.Ptr(release.Name),
		Body:            github.Ptr(release.Body),
	})
	if err != nil {
		return nil, classify("create release "+release.TagName, resp, err)
	}
	return toDomainRelease(created), nil
}

// UploadAsset posts the asset body to an already resolved upload endpoint.
func (r *githubRepository) UploadAsset(ctx context.Context, uploadURL string, asset AssetUpload) error {
	req, err := r.client.NewUploadRequest(uploadURL, asset.Content, asset.Size, asset.ContentType)
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	uploaded := new(github.ReleaseAsset)
	resp, err := r.client.Do(ctx, req, uploaded)
	if err != nil {
		return classify("upload asset", resp, err)
	}
	return nil
}

func classify(operation string, resp *github.Response, err error) error {
	if resp != nil && resp.Response != nil && !isSuccess(resp.Response) {
		return &RemoteError{Operation: operation, StatusCode: resp.StatusCode, Err: err}
	}
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func toDomainRelease(release *github.RepositoryRelease) *domain.Release {
	return &domain.Release{
		ID:                release.GetID(),
		TagName:           release.GetTagName(),
		Name:              release.GetName(),
		Body:              release.GetBody(),
		HTMLURL:           release.GetHTMLURL(),
		UploadURLTemplate: release.GetUploadURL(),
	}
}
