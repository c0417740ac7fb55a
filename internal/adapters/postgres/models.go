package postgres

import (
	"time"

	"github.com/google/uuid"

	"github.com/senibo/blog-api/internal/domain"
)

// postRecord is the persistence shape of a post. The category is stored
// as its stable code, not the display name.
type postRecord struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Title     string      `gorm:"not null"`
	Content   string      `gorm:"not null"`
	Category  string      `gorm:"not null"`
	Tags      []tagRecord `gorm:"many2many:post_tags;joinForeignKey:post_id;joinReferences:tag_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName implements the gorm table naming convention.
func (postRecord) TableName() string {
	return "posts"
}

// tagRecord is the persistence shape of a tag. The unique index on the
// name is the authoritative arbiter for concurrent tag creation.
type tagRecord struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex;not null"`
}

// TableName implements the gorm table naming convention.
func (tagRecord) TableName() string {
	return "tags"
}

// toDomainTag maps a tag row to its domain entity.
func (r tagRecord) toDomainTag() domain.Tag {
	return domain.Tag{ID: r.ID, Name: r.Name}
}

// toDomainPost maps a post row to its domain entity. Fails when the
// persisted category code is no longer recognized.
func (r postRecord) toDomainPost() (domain.Post, error) {
	category, err := domain.ParseCategoryCode(r.Category)
	if err != nil {
		return domain.Post{}, err
	}

	tags := make([]domain.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, t.toDomainTag())
	}

	return domain.Post{
		ID:        r.ID,
		Title:     r.Title,
		Content:   r.Content,
		Category:  category,
		Tags:      tags,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

// tagRecordsFrom maps resolved domain tags to their persistence rows.
func tagRecordsFrom(tags []domain.Tag) []tagRecord {
	records := make([]tagRecord, 0, len(tags))
	for _, t := range tags {
		records = append(records, tagRecord{ID: t.ID, Name: t.Name})
	}

	return records
}
