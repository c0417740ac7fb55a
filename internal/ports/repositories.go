// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrNotFound, ErrConflict, etc.)
//   - Keep interfaces small and focused (Interface Segregation Principle)
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/senibo/blog-api/internal/domain"
)

// PostRepository is the narrow contract over the post aggregate store.
// The store owns identifier assignment and both timestamps.
type PostRepository interface {
	// FindAll returns every post. Ordering is unspecified but stable
	// within a single read.
	FindAll(ctx context.Context) ([]domain.Post, error)

	// FindBySearchTerm returns posts whose title or content contains term
	// as a case-insensitive substring. An empty result is not an error.
	FindBySearchTerm(ctx context.Context, term string) ([]domain.Post, error)

	// FindByID retrieves a post by its identifier.
	// Returns domain.ErrNotFound if the post does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// Save persists the post, inserting when it has no identifier and
	// updating in place otherwise. The tag-relationship set is replaced
	// wholesale, updatedAt is refreshed, and the persisted state is
	// written back into post.
	Save(ctx context.Context, post *domain.Post) error

	// Delete removes the post row and its tag-relationship rows.
	// Tag rows are never touched. Returns domain.ErrNotFound if the
	// post no longer exists.
	Delete(ctx context.Context, post *domain.Post) error
}

// TagRepository materializes tags from user-supplied names.
// Tags are append-only from this contract's perspective: no rename,
// no deletion.
type TagRepository interface {
	// ResolveOrCreate returns one persisted Tag per distinct name,
	// reusing existing tags by exact name and creating the rest.
	// Create-or-fetch is effectively atomic for the caller: a concurrent
	// insert of the same name is resolved by re-fetching the winning row.
	ResolveOrCreate(ctx context.Context, names []string) ([]domain.Tag, error)
}
