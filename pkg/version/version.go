package version

// Set at build time with -ldflags "-X github.com/jhight/stash-release/pkg/version.Version=...".
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// Summary returns a human-friendly version string for CLI output.
func Summary() string {
	if CommitHash == "" || CommitHash == "unknown" {
		return Version
	}
	return Version + " (" + CommitHash + ")"
}
