package dto

import (
	"encoding/xml"
	"time"

	"github.com/senibo/blog-api/internal/app"
	"github.com/senibo/blog-api/internal/domain"
)

// PostRequest is the inbound create/update payload. It decodes from
// JSON or XML; the XML form uses a <tags> wrapper around repeated
// <tag> elements.
type PostRequest struct {
	XMLName  xml.Name `json:"-" xml:"postRequest"`
	Title    string   `json:"title" xml:"title"`
	Content  string   `json:"content" xml:"content"`
	Category string   `json:"category" xml:"category"`
	Tags     []string `json:"tags" xml:"tags>tag"`
}

// ToInput maps the wire payload to the application-layer input.
func (r PostRequest) ToInput() app.PostInput {
	return app.PostInput{
		Title:    r.Title,
		Content:  r.Content,
		Category: r.Category,
		Tags:     r.Tags,
	}
}

// PostResponse is the outbound representation of a post. The category
// is rendered as its display name and timestamps as RFC 3339 strings.
type PostResponse struct {
	XMLName   xml.Name `json:"-" xml:"post"`
	ID        string   `json:"id" xml:"id"`
	Title     string   `json:"title" xml:"title"`
	Content   string   `json:"content" xml:"content"`
	Category  string   `json:"category" xml:"category"`
	Tags      []string `json:"tags" xml:"tags>tag"`
	CreatedAt string   `json:"createdAt" xml:"createdAt"`
	UpdatedAt string   `json:"updatedAt" xml:"updatedAt"`
}

// NewPostResponse maps a domain post to its wire representation.
func NewPostResponse(post domain.Post) PostResponse {
	return PostResponse{
		ID:        post.ID.String(),
		Title:     post.Title,
		Content:   post.Content,
		Category:  post.Category.DisplayName(),
		Tags:      post.TagNames(),
		CreatedAt: post.CreatedAt.Format(time.RFC3339),
		UpdatedAt: post.UpdatedAt.Format(time.RFC3339),
	}
}

// NewPostResponses maps a slice of domain posts, preserving order.
func NewPostResponses(posts []domain.Post) []PostResponse {
	responses := make([]PostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, NewPostResponse(post))
	}

	return responses
}
