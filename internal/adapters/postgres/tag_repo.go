package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/senibo/blog-api/internal/domain"
	"github.com/senibo/blog-api/internal/ports"
)

// tagRepository implements ports.TagRepository on GORM.
// Tags are append-only: no rename, no deletion.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates the tag repository for the given database handle.
func NewTagRepository(db *gorm.DB) ports.TagRepository {
	return &tagRepository{db: db}
}

// ResolveOrCreate returns one persisted tag per distinct input name,
// reusing existing rows by exact name and inserting the rest.
//
// Two concurrent requests may race to insert the same new name; the
// unique index on tags.name decides the winner, and the loser retries
// as a lookup so the constraint violation never reaches the caller.
func (r *tagRepository) ResolveOrCreate(ctx context.Context, names []string) ([]domain.Tag, error) {
	if len(names) == 0 {
		return nil, domain.NewInvalidTagSetError()
	}

	tags := make([]domain.Tag, 0, len(names))
	seen := make(map[string]struct{}, len(names))

	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			return nil, domain.NewInvalidTagSetError()
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		tag, err := r.resolveOne(ctx, name)
		if err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// resolveOne looks a tag up by name and inserts it when absent.
// A duplicate-key failure on insert means another request won the race;
// the existing row is fetched and returned instead.
func (r *tagRepository) resolveOne(ctx context.Context, name string) (domain.Tag, error) {
	var record tagRecord

	err := r.db.WithContext(ctx).First(&record, "name = ?", name).Error
	if err == nil {
		return record.toDomainTag(), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Tag{}, fmt.Errorf("looking up tag %q: %w", name, err)
	}

	record = tagRecord{ID: uuid.New(), Name: name}

	err = r.db.WithContext(ctx).Create(&record).Error
	if err == nil {
		return record.toDomainTag(), nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Tag{}, fmt.Errorf("creating tag %q: %w", name, err)
	}

	// Lost the insert race; the winner's row is authoritative.
	err = r.db.WithContext(ctx).First(&record, "name = ?", name).Error
	if err != nil {
		return domain.Tag{}, fmt.Errorf("refetching tag %q after conflict: %w", name, err)
	}

	return record.toDomainTag(), nil
}
