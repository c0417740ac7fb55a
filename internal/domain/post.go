// Package domain contains core business entities and rules.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is the blog post aggregate root.
// This is a domain entity - it has no knowledge of external systems.
type Post struct {
	// ID is the unique identifier, assigned by the store at creation.
	ID uuid.UUID

	// Title is the post headline.
	Title string

	// Content is the post body.
	Content string

	// Category is the single fixed category the post belongs to.
	Category Category

	// Tags is the set of tags attached to the post. Membership only,
	// no ordering semantics.
	Tags []Tag

	// CreatedAt is set once by the store and never changes.
	CreatedAt time.Time

	// UpdatedAt is refreshed by the store on every successful mutation.
	UpdatedAt time.Time
}

// Equal reports whether two posts are the same aggregate.
// Identity is the assigned identifier alone, both non-zero.
func (p *Post) Equal(other *Post) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.ID != uuid.Nil && p.ID == other.ID
}

// TagNames returns the names of the post's tags.
func (p *Post) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Name)
	}

	return names
}

// Tag is a free-form label shared across posts.
// For a given name at most one Tag exists system-wide; tags are created
// lazily on first use and never deleted by post-level operations.
type Tag struct {
	// ID is the unique identifier of the tag.
	ID uuid.UUID

	// Name is the unique, case-sensitive tag name.
	Name string
}
