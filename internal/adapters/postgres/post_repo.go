package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senibo/blog-api/internal/domain"
	"github.com/senibo/blog-api/internal/ports"
)

// postRepository implements ports.PostRepository on GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates the post repository for the given database handle.
func NewPostRepository(db *gorm.DB) ports.PostRepository {
	return &postRepository{db: db}
}

// FindAll returns every post with its tags, ordered by creation time so a
// single read is stable.
func (r *postRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	var records []postRecord

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("listing posts: %w", err)
	}

	return toDomainPosts(records)
}

// FindBySearchTerm returns posts whose title or content contains term as
// a case-insensitive substring.
func (r *postRepository) FindBySearchTerm(ctx context.Context, term string) ([]domain.Post, error) {
	like := "%" + term + "%"

	var records []postRecord

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Where("title ILIKE ? OR content ILIKE ?", like, like).
		Order("created_at").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("searching posts: %w", err)
	}

	return toDomainPosts(records)
}

// FindByID retrieves one post with its tags.
func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var record postRecord

	err := r.db.WithContext(ctx).
		Preload("Tags").
		First(&record, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Post", id.String())
		}

		return nil, fmt.Errorf("loading post: %w", err)
	}

	post, err := record.toDomainPost()
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// Save inserts a new post or updates an existing one. The tag
// relationship set is replaced wholesale in the same transaction, and
// the persisted identifier and timestamps are written back into post.
func (r *postRepository) Save(ctx context.Context, post *domain.Post) error {
	record := postRecord{
		ID:       post.ID,
		Title:    post.Title,
		Content:  post.Content,
		Category: post.Category.Code(),
	}
	tags := tagRecordsFrom(post.Tags)
	insert := post.ID == uuid.Nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if insert {
			record.ID = uuid.New()

			if err := tx.Omit("Tags").Create(&record).Error; err != nil {
				return fmt.Errorf("inserting post: %w", err)
			}
		} else {
			record.UpdatedAt = time.Now()

			result := tx.Model(&postRecord{ID: record.ID}).Updates(map[string]any{
				"title":      record.Title,
				"content":    record.Content,
				"category":   record.Category,
				"updated_at": record.UpdatedAt,
			})
			if result.Error != nil {
				return fmt.Errorf("updating post: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.NewNotFoundError("Post", record.ID.String())
			}
		}

		// Full replacement: relationships not in tags are removed,
		// new ones are added. Never a partial merge.
		if err := tx.Model(&record).Association("Tags").Replace(&tags); err != nil {
			return fmt.Errorf("replacing post tags: %w", err)
		}

		if insert {
			return nil
		}

		// Reload timestamps so callers observe the persisted state.
		var persisted postRecord
		if err := tx.Select("created_at", "updated_at").First(&persisted, "id = ?", record.ID).Error; err != nil {
			return fmt.Errorf("reloading post timestamps: %w", err)
		}
		record.CreatedAt = persisted.CreatedAt
		record.UpdatedAt = persisted.UpdatedAt

		return nil
	})
	if err != nil {
		return err
	}

	post.ID = record.ID
	post.CreatedAt = record.CreatedAt
	post.UpdatedAt = record.UpdatedAt

	return nil
}

// Delete removes the post row and its tag-relationship rows.
// Tag rows are shared and are never deleted here.
func (r *postRepository) Delete(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		record := postRecord{ID: post.ID}

		if err := tx.Model(&record).Association("Tags").Clear(); err != nil {
			return fmt.Errorf("clearing post tags: %w", err)
		}

		result := tx.Delete(&postRecord{}, "id = ?", post.ID)
		if result.Error != nil {
			return fmt.Errorf("deleting post: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewNotFoundError("Post", post.ID.String())
		}

		return nil
	})
}

// toDomainPosts maps a slice of rows, failing on the first bad record.
func toDomainPosts(records []postRecord) ([]domain.Post, error) {
	posts := make([]domain.Post, 0, len(records))

	for _, record := range records {
		post, err := record.toDomainPost()
		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	return posts, nil
}
