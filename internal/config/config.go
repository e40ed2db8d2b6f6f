package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/spf13/viper"
)

const (
	DefaultAPIURL           = "https://api.github.com/"
	DefaultUploadURL        = "https://uploads.github.com/"
	DefaultServerURL        = "https://github.com"
	DefaultMainBranch       = "main"
	DefaultMaxCommits       = 300
	DefaultArtifactPath     = "stash/build/outputs/aar/stash-release.aar"
	DefaultAssetName        = "release.aar"
	DefaultAssetContentType = "application/vnd.android.package-archive"
	DefaultReleaseFlagFile  = "release_created"
	DefaultAttachFlagFile   = "build_attached"
	DefaultLogLevel         = "info"
)

var validName = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9\-_.]*[a-zA-Z0-9]$|^[a-zA-Z0-9]$`)

// Config is built once at start-up and handed to the components that need it.
type Config struct {
	GithubRepository string `mapstructure:"github_repository"`
	GithubToken      string `mapstructure:"github_token"`
	APIURL           string `mapstructure:"api_url"`
	UploadURL        string `mapstructure:"upload_url"`
	ServerURL        string `mapstructure:"server_url"`
	MainBranch       string `mapstructure:"main_branch"`
	MaxCommits       int    `mapstructure:"max_commits"`
	ArtifactPath     string `mapstructure:"artifact_path"`
	AssetName        string `mapstructure:"asset_name"`
	AssetContentType string `mapstructure:"asset_content_type"`
	ReleaseFlagFile  string `mapstructure:"release_flag_file"`
	AttachFlagFile   string `mapstructure:"attach_flag_file"`
	LogLevel         string `mapstructure:"log_level"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		APIURL:           DefaultAPIURL,
		UploadURL:        DefaultUploadURL,
		ServerURL:        DefaultServerURL,
		MainBranch:       DefaultMainBranch,
		MaxCommits:       DefaultMaxCommits,
		ArtifactPath:     DefaultArtifactPath,
		AssetName:        DefaultAssetName,
		AssetContentType: DefaultAssetContentType,
		ReleaseFlagFile:  DefaultReleaseFlagFile,
		AttachFlagFile:   DefaultAttachFlagFile,
		LogLevel:         DefaultLogLevel,
	}
}

// Owner returns the owner half of the owner/name repository slug.
func (c *Config) Owner() string {
	owner, _, _ := strings.Cut(c.GithubRepository, "/")
	return owner
}

// Repo returns the name half of the owner/name repository slug.
func (c *Config) Repo() string {
	_, repo, _ := strings.Cut(c.GithubRepository, "/")
	return repo
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := ValidateGitHubToken(c.GithubToken); err != nil {
		return fmt.Errorf("invalid github_token: %w", err)
	}
	if err := ValidateRepositorySlug(c.GithubRepository); err != nil {
		return fmt.Errorf("invalid github_repository: %w", err)
	}
	if c.MainBranch == "" {
		return fmt.Errorf("main_branch cannot be empty")
	}
	if c.MaxCommits <= 0 {
		return fmt.Errorf("max_commits must be positive, got %d", c.MaxCommits)
	}
	if c.ArtifactPath == "" {
		return fmt.Errorf("artifact_path cannot be empty")
	}
	if c.AssetName == "" {
		return fmt.Errorf("asset_name cannot be empty")
	}
	if c.ReleaseFlagFile == "" || c.AttachFlagFile == "" {
		return fmt.Errorf("flag file paths cannot be empty")
	}
	for key, raw := range map[string]string{"api_url": c.APIURL, "upload_url": c.UploadURL, "server_url": c.ServerURL} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL: %q", key, raw)
		}
	}
	return nil
}

// ValidateGitHubToken checks that a bearer token is present and usable in a header.
func ValidateGitHubToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token is required")
	}
	if strings.ContainsAny(token, " \t\r\n") {
		return fmt.Errorf("token must not contain whitespace")
	}
	return nil
}

// ValidateRepositorySlug validates an owner/name repository identifier.
func ValidateRepositorySlug(slug string) error {
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok {
		return fmt.Errorf("expected owner/name, got %q", slug)
	}
	return ValidateGitHubOwnerRepo(owner, repo)
}

// ValidateGitHubOwnerRepo validates GitHub owner and repository names (exported for reuse)
func ValidateGitHubOwnerRepo(owner, repo string) error {
	if owner == "" {
		return fmt.Errorf("owner cannot be empty")
	}
	if repo == "" {
		return fmt.Errorf("repository cannot be empty")
	}
	if !validName.MatchString(owner) {
		return fmt.Errorf("invalid owner format: %s", owner)
	}
	if len(owner) > 39 {
		return fmt.Errorf("owner too long: maximum 39 characters")
	}
	if !validName.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %s", repo)
	}
	if len(repo) > 100 {
		return fmt.Errorf("repository too long: maximum 100 characters")
	}
	return nil
}

// envBindings lists the environment variables consulted for each key.
// BindEnv checks them in order.
var envBindings = map[string][]string{
	"github_repository":  {"GITHUB_REPOSITORY", "STASH_RELEASE_GITHUB_REPOSITORY"},
	"github_token":       {"GITHUB_TOKEN", "STASH_RELEASE_GITHUB_TOKEN"},
	"api_url":            {"GITHUB_API_URL", "STASH_RELEASE_API_URL"},
	"upload_url":         {"STASH_RELEASE_UPLOAD_URL"},
	"server_url":         {"GITHUB_SERVER_URL", "STASH_RELEASE_SERVER_URL"},
	"main_branch":        {"STASH_RELEASE_MAIN_BRANCH"},
	"max_commits":        {"STASH_RELEASE_MAX_COMMITS"},
	"artifact_path":      {"STASH_RELEASE_ARTIFACT_PATH"},
	"asset_name":         {"STASH_RELEASE_ASSET_NAME"},
	"asset_content_type": {"STASH_RELEASE_ASSET_CONTENT_TYPE"},
	"release_flag_file":  {"STASH_RELEASE_RELEASE_FLAG_FILE"},
	"attach_flag_file":   {"STASH_RELEASE_ATTACH_FLAG_FILE"},
	"log_level":          {"STASH_RELEASE_LOG_LEVEL"},
}

// LoadConfig reads configuration from the environment and an optional
// .stash-release.yaml in the working directory.
func LoadConfig() (*Config, error) {
	return Load(viper.New())
}

// Load reads configuration through the given viper instance.
func Load(v *viper.Viper) (*Config, error) {
	v.SetConfigName(".stash-release")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("STASH_RELEASE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("failed to bind %s env: %w", key, err)
		}
	}
	defaults := DefaultConfig()
	v.SetDefault("api_url", defaults.APIURL)
	v.SetDefault("upload_url", defaults.UploadURL)
	v.SetDefault("server_url", defaults.ServerURL)
	v.SetDefault("main_branch", defaults.MainBranch)
	v.SetDefault("max_commits", defaults.MaxCommits)
	v.SetDefault("artifact_path", defaults.ArtifactPath)
	v.SetDefault("asset_name", defaults.AssetName)
	v.SetDefault("asset_content_type", defaults.AssetContentType)
	v.SetDefault("release_flag_file", defaults.ReleaseFlagFile)
	v.SetDefault("attach_flag_file", defaults.AttachFlagFile)
	v.SetDefault("log_level", defaults.LogLevel)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if err := populateRepositoryDefaults(&config); err != nil {
		return nil, fmt.Errorf("github_repository is not set: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

// populateRepositoryDefaults fills the repository slug from the origin remote
// of the enclosing git checkout when the environment does not provide one.
func populateRepositoryDefaults(cfg *Config) error {
	if cfg.GithubRepository != "" {
		return nil
	}
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return fmt.Errorf("failed to open git repository: %w", err)
	}
	remote, err := repo.Remote("origin")
	if err != nil {
		return fmt.Errorf("failed to read origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return fmt.Errorf("origin remote has no URL")
	}
	owner, name, err := parseGitRemoteURL(urls[0])
	if err != nil {
		return err
	}
	cfg.GithubRepository = owner + "/" + name
	return nil
}

// parseGitRemoteURL extracts owner and repository from https, scp-style ssh
// and plain path remotes.
func parseGitRemoteURL(raw string) (string, string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(raw), ".git")
	var path string
	switch {
	case strings.Contains(trimmed, "://"):
		u, err := url.Parse(trimmed)
		if err != nil {
			return "", "", fmt.Errorf("invalid remote URL %q: %w", raw, err)
		}
		path = u.Path
	case strings.Contains(trimmed, "@") && strings.Contains(trimmed, ":"):
		_, path, _ = strings.Cut(trimmed, ":")
	default:
		path = filepath.ToSlash(trimmed)
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		return "", "", fmt.Errorf("cannot derive owner/name from remote %q", raw)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
