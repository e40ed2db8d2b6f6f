package usecase

import (
	"testing"

	"github.com/jhight/stash-release/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChangelogUseCase_Execute(t *testing.T) {
	uc := &RenderChangelogUseCase{ServerURL: "https://github.com/", Repository: "jhight/stash"}
	latest := domain.Tag{Name: "2.0.0", CommitSHA: "shaA"}
	t.Run("Should link the compare view and list every commit", func(t *testing.T) {
		previous := &domain.Tag{Name: "1.0.0", CommitSHA: "shaB"}
		commits := []domain.Commit{
			{SHA: "aaaaaaa111", AuthorLogin: "octo", HTMLURL: "https://github.com/jhight/stash/commit/aaaaaaa111"},
			{SHA: "bbbbbbb222", AuthorLogin: "cat", HTMLURL: "https://github.com/jhight/stash/commit/bbbbbbb222"},
		}
		body, err := uc.Execute(latest, previous, commits)
		require.NoError(t, err)
		assert.Equal(t,
			`<details><summary><a href="https://github.com/jhight/stash/compare/1.0.0...2.0.0">Commits since 1.0.0</a></summary>`+
				`<ul><li><a href="https://github.com/jhight/stash/commit/aaaaaaa111"><code>aaaaaaa</code></a> by @octo</li>`+
				`<li><a href="https://github.com/jhight/stash/commit/bbbbbbb222"><code>bbbbbbb</code></a> by @cat</li></ul></details>`,
			body)
	})
	t.Run("Should link the tag history without a previous tag", func(t *testing.T) {
		body, err := uc.Execute(latest, nil, nil)
		require.NoError(t, err)
		assert.Equal(t,
			`<details><summary><a href="https://github.com/jhight/stash/commits/2.0.0">Commits in 2.0.0</a></summary>`+
				`<ul></ul></details>`,
			body)
	})
	t.Run("Should omit the author of unlinked commits", func(t *testing.T) {
		body, err := uc.Execute(latest, nil, []domain.Commit{{SHA: "ccccccc333", HTMLURL: "u"}})
		require.NoError(t, err)
		assert.Contains(t, body, `<li><a href="u"><code>ccccccc</code></a></li>`)
		assert.NotContains(t, body, "by @")
	})
	t.Run("Should escape markup in commit data", func(t *testing.T) {
		body, err := uc.Execute(latest, nil, []domain.Commit{{SHA: "d", AuthorLogin: "<b>", HTMLURL: `x"y`}})
		require.NoError(t, err)
		assert.Contains(t, body, "by @&lt;b&gt;")
		assert.Contains(t, body, `href="x%22y"`)
	})
	t.Run("Should neutralise script URLs in commit links", func(t *testing.T) {
		body, err := uc.Execute(latest, nil, []domain.Commit{{SHA: "e", HTMLURL: "javascript:alert(1)"}})
		require.NoError(t, err)
		assert.NotContains(t, body, "javascript:")
		assert.Contains(t, body, `href="#ZgotmplZ"`)
	})
}
