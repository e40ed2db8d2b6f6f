package domain

// Tag is a named pointer to a commit, as listed by the hosting platform.
type Tag struct {
	Name      string
	CommitSHA string
}

// Release holds the parts of a published release the commands care about.
type Release struct {
	ID                int64
	TagName           string
	Name              string
	Body              string
	HTMLURL           string
	UploadURLTemplate string
}

// NewRelease is the payload submitted when creating a release.
type NewRelease struct {
	TagName         string `json:"tag_name"`
	TargetCommitish string `json:"target_commitish"`
	Name            string `json:"name"`
	Body            string `json:"body"`
}

// ShortSHALength is the abbreviated commit hash length used in changelogs.
const ShortSHALength = 7

// Commit is a single entry from a commit listing.
type Commit struct {
	SHA         string
	AuthorLogin string // empty when the commit is not linked to an account
	HTMLURL     string
}

// ShortSHA returns the abbreviated hash.
func (c Commit) ShortSHA() string {
	return ShortenSHA(c.SHA)
}

// ShortenSHA abbreviates a hash to ShortSHALength characters.
func ShortenSHA(sha string) string {
	if len(sha) <= ShortSHALength {
		return sha
	}
	return sha[:ShortSHALength]
}
