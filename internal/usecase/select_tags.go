package usecase

import "github.com/jhight/stash-release/internal/domain"

// SelectVersionTags picks the latest and previous release tags from a
// newest-first tag listing, ignoring anything that is not a strict
// MAJOR.MINOR.PATCH name. Either result may be nil.
func SelectVersionTags(tags []domain.Tag) (latest, previous *domain.Tag) {
	var matches []domain.Tag
	for _, tag := range tags {
		if domain.IsReleaseTag(tag.Name) {
			matches = append(matches, tag)
		}
		if len(matches) == 2 {
			break
		}
	}
	if len(matches) > 0 {
		latest = &matches[0]
	}
	if len(matches) > 1 {
		previous = &matches[1]
	}
	return latest, previous
}
