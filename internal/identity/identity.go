// Package identity derives stable keys for fetched records. The API is
// inconsistent about identity: some endpoints return a numeric id, others
// only a hypermedia self-link, so neither can be relied on alone.
package identity

import (
	"regexp"
	"strconv"
	"strings"
)

// trailing /<digits> segment of a self-link, e.g. ".../customers/42".
var trailingID = regexp.MustCompile(`/(\d+)(?:$|/)`)

// Identity is the resolved identity of a record.
type Identity struct {
	// Key is a stable rendering/reconciliation key. Never empty when the
	// record carried any distinguishing information at all.
	Key string

	// MutationURL is the PUT/DELETE target. Empty when the record exposed
	// neither a self-link nor an id; such a record is render-only.
	MutationURL string

	// NumericID is the id extracted from the record or its self-link.
	NumericID int64
	HasID     bool
}

// Mutable reports whether the record can be updated or deleted.
func (id Identity) Mutable() bool { return id.MutationURL != "" }

// Resolve derives an Identity. Policy, in order: the self-link wins as
// both key and mutation target; else a numeric id; else an id extracted
// from a trailing /<digits> self-link segment; else a synthetic key built
// from the fallback fields, usable for rendering only.
//
// Resolve is pure: same inputs, same Identity.
func Resolve(selfLink string, numericID int64, fallback ...string) Identity {
	selfLink = strings.TrimSpace(selfLink)

	if selfLink != "" {
		id := Identity{Key: selfLink, MutationURL: selfLink}
		if numericID > 0 {
			id.NumericID, id.HasID = numericID, true
		} else if m := trailingID.FindStringSubmatch(selfLink); m != nil {
			if n, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				id.NumericID, id.HasID = n, true
			}
		}
		return id
	}

	if numericID > 0 {
		key := strconv.FormatInt(numericID, 10)
		return Identity{Key: key, MutationURL: key, NumericID: numericID, HasID: true}
	}

	parts := make([]string, 0, len(fallback))
	for _, f := range fallback {
		if f = strings.TrimSpace(f); f != "" {
			parts = append(parts, f)
		}
	}
	return Identity{Key: strings.Join(parts, "|")}
}
