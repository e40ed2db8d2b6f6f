package usecase

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/jhight/stash-release/internal/domain"
)

// RenderChangelogUseCase renders the commit list of a release as a
// collapsible HTML block.
type RenderChangelogUseCase struct {
	// ServerURL is the web root of the hosting platform, e.g. https://github.com.
	ServerURL string
	// Repository is the owner/name slug.
	Repository string
}

type changelogEntry struct {
	URL      string
	ShortSHA string
	Author   string
}

// Execute renders commits between previous (may be nil) and latest. Commit
// data is escaped for its HTML context by the template engine.
func (uc *RenderChangelogUseCase) Execute(latest domain.Tag, previous *domain.Tag, commits []domain.Commit) (string, error) {
	base := strings.TrimSuffix(uc.ServerURL, "/") + "/" + uc.Repository
	var headingURL, heading string
	if previous != nil {
		headingURL = fmt.Sprintf("%s/compare/%s...%s", base, url.PathEscape(previous.Name), url.PathEscape(latest.Name))
		heading = "Commits since " + previous.Name
	} else {
		headingURL = fmt.Sprintf("%s/commits/%s", base, url.PathEscape(latest.Name))
		heading = "Commits in " + latest.Name
	}
	entries := make([]changelogEntry, 0, len(commits))
	for _, c := range commits {
		entries = append(entries, changelogEntry{
			URL:      c.HTMLURL,
			ShortSHA: c.ShortSHA(),
			Author:   c.AuthorLogin,
		})
	}
	data := struct {
		HeadingURL string
		Heading    string
		Entries    []changelogEntry
	}{
		HeadingURL: headingURL,
		Heading:    heading,
		Entries:    entries,
	}
	tmpl, err := template.New("changelog").Option("missingkey=error").Parse(changelogTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse changelog template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute changelog template: %w", err)
	}
	return buf.String(), nil
}

const changelogTemplate = `<details><summary><a href="{{.HeadingURL}}">{{.Heading}}</a></summary><ul>` +
	`{{range .Entries}}<li><a href="{{.URL}}"><code>{{.ShortSHA}}</code></a>` +
	`{{if .Author}} by @{{.Author}}{{end}}</li>{{end}}</ul></details>`
