package catalog

import (
	"context"
	"strings"

	"github.com/tjfontaine/bdfd-catalog/internal/api/bdfd"
)

// resolver turns a partial tag into a full one using the domain's tag list.
type resolver struct {
	api    *bdfd.Client
	domain Domain
}

// resolve fetches a fresh tag list and returns the first entry containing
// partial. The tag list is not cached between calls.
func (r resolver) resolve(ctx context.Context, partial string) (string, error) {
	tags, err := r.api.TagList(ctx, r.domain)
	if err != nil {
		return "", newTransportError(r.domain, OperationTagList, err)
	}
	tag, ok := MatchPartialTag(tags, partial)
	if !ok {
		return "", &NotFoundError{Domain: r.domain, PartialTag: partial}
	}
	return tag, nil
}

// MatchPartialTag returns the first tag, in list order, that contains
// partial as a substring. It is neither a prefix nor a fuzzy match: with
// tags ["ban-user", "unban-user"] the partial "ban" selects "ban-user", and
// "unban" selects "unban-user".
func MatchPartialTag(tags []string, partial string) (string, bool) {
	for _, t := range tags {
		if strings.Contains(t, partial) {
			return t, true
		}
	}
	return "", false
}
