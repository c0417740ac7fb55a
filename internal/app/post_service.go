// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/senibo/blog-api/internal/domain"
	"github.com/senibo/blog-api/internal/platform/logging"
	"github.com/senibo/blog-api/internal/ports"
)

// PostInput is the decoded, format-independent create/update payload.
// The HTTP adapter hands it over after binding; the service owns all
// business validation.
type PostInput struct {
	Title    string
	Content  string
	Category string
	Tags     []string
}

// PostService orchestrates the post use cases.
// It depends on port interfaces, not concrete implementations,
// following the Dependency Inversion Principle.
type PostService struct {
	posts  ports.PostRepository
	tags   ports.TagRepository
	logger *slog.Logger
}

// PostServiceConfig contains dependencies for the post service.
type PostServiceConfig struct {
	Posts  ports.PostRepository
	Tags   ports.TagRepository
	Logger *slog.Logger
}

// NewPostService creates a new post service with the provided dependencies.
func NewPostService(cfg PostServiceConfig) *PostService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &PostService{
		posts:  cfg.Posts,
		tags:   cfg.Tags,
		logger: logger.With(slog.String("component", "app.PostService")),
	}
}

// ListPosts returns all posts, or only those matching searchTerm when it
// is non-blank.
func (s *PostService) ListPosts(ctx context.Context, searchTerm string) ([]domain.Post, error) {
	logger := logging.FromContext(ctx)

	if strings.TrimSpace(searchTerm) != "" {
		logger.InfoContext(ctx, "searching posts",
			slog.String("search_term", searchTerm),
		)

		return s.posts.FindBySearchTerm(ctx, searchTerm)
	}

	logger.InfoContext(ctx, "no search term provided, returning all posts")

	return s.posts.FindAll(ctx)
}

// GetPost retrieves a single post by its identifier string.
// Fails with domain.ErrMalformedID for an unparsable id and
// domain.ErrNotFound when no such post exists.
func (s *PostService) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	postID, err := parsePostID(id)
	if err != nil {
		return nil, err
	}

	return s.posts.FindByID(ctx, postID)
}

// CreatePost validates the input, resolves category and tags, persists a
// new post and returns it. Identifier and timestamps come from the store.
func (s *PostService) CreatePost(ctx context.Context, in PostInput) (*domain.Post, error) {
	logger := logging.FromContext(ctx)

	category, tagNames, err := s.resolveInput(in)
	if err != nil {
		return nil, err
	}

	tags, err := s.tags.ResolveOrCreate(ctx, tagNames)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Title:    in.Title,
		Content:  in.Content,
		Category: category,
		Tags:     tags,
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "post created",
		slog.String("post_id", post.ID.String()),
		slog.String("category", post.Category.Code()),
		slog.Int("tag_count", len(post.Tags)),
	)

	return post, nil
}

// UpdatePost replaces title, content, category and tags of an existing
// post wholesale. createdAt is preserved; the store refreshes updatedAt.
func (s *PostService) UpdatePost(ctx context.Context, id string, in PostInput) (*domain.Post, error) {
	logger := logging.FromContext(ctx)

	postID, err := parsePostID(id)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	category, tagNames, err := s.resolveInput(in)
	if err != nil {
		return nil, err
	}

	tags, err := s.tags.ResolveOrCreate(ctx, tagNames)
	if err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	post.Category = category
	post.Tags = tags

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "post updated",
		slog.String("post_id", post.ID.String()),
	)

	return post, nil
}

// DeletePost removes an existing post and its tag relationships.
// Deleting an already-deleted id fails with domain.ErrNotFound, matching
// the not-found semantics of get and update.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	logger := logging.FromContext(ctx)

	postID, err := parsePostID(id)
	if err != nil {
		return err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post); err != nil {
		return err
	}

	logger.InfoContext(ctx, "post deleted",
		slog.String("post_id", postID.String()),
	)

	return nil
}

// resolveInput runs collected validation, then resolves the category and
// the distinct trimmed tag names. No persistence happens before this
// succeeds.
func (s *PostService) resolveInput(in PostInput) (domain.Category, []string, error) {
	if err := ValidatePostInput(in); err != nil {
		return domain.CategoryUnknown, nil, err
	}

	// Validation guarantees the category resolves; parse again to get
	// the value.
	category, err := domain.ParseCategory(in.Category)
	if err != nil {
		return domain.CategoryUnknown, nil, err
	}

	return category, distinctTagNames(in.Tags), nil
}

// parsePostID parses an identifier string into a UUID.
func parsePostID(id string) (uuid.UUID, error) {
	postID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.NewMalformedIDError(id)
	}

	return postID, nil
}

// distinctTagNames trims the names and collapses duplicates while
// preserving first-seen order. Names stay case-sensitive.
func distinctTagNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	distinct := make([]string, 0, len(names))

	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}

		if _, ok := seen[trimmed]; ok {
			continue
		}

		seen[trimmed] = struct{}{}
		distinct = append(distinct, trimmed)
	}

	return distinct
}
