package app

import (
	"strings"
	"unicode/utf8"

	"github.com/senibo/blog-api/internal/domain"
)

// minContentLength is the minimum number of characters in the post content.
const minContentLength = 8

// inputValidator checks one field of a PostInput and returns a
// human-readable message when the field is invalid, or "" when it is fine.
type inputValidator func(in PostInput) string

// postInputValidators is the ordered list of field validators.
// Every validator runs so a single bad request reports all of its
// problems at once.
var postInputValidators = []inputValidator{
	validateTitle,
	validateContent,
	validateCategory,
	validateTags,
}

// ValidatePostInput runs every field validator and returns a
// domain.ValidationError carrying the collected messages, or nil when the
// input is valid. It is applied before any persistence side effect.
func ValidatePostInput(in PostInput) error {
	var messages []string

	for _, validate := range postInputValidators {
		if msg := validate(in); msg != "" {
			messages = append(messages, msg)
		}
	}

	if len(messages) > 0 {
		return domain.NewValidationError(messages...)
	}

	return nil
}

func validateTitle(in PostInput) string {
	if strings.TrimSpace(in.Title) == "" {
		return "Title is required"
	}

	return ""
}

func validateContent(in PostInput) string {
	if strings.TrimSpace(in.Content) == "" {
		return "Content is required"
	}

	if utf8.RuneCountInString(in.Content) < minContentLength {
		return "Content must have at least 8 characters"
	}

	return ""
}

func validateCategory(in PostInput) string {
	if strings.TrimSpace(in.Category) == "" {
		return "Category is required"
	}

	if _, err := domain.ParseCategory(in.Category); err != nil {
		return err.Error()
	}

	return ""
}

func validateTags(in PostInput) string {
	if len(in.Tags) == 0 {
		return "At least one tag is required and must not contain blank values"
	}

	for _, tag := range in.Tags {
		if strings.TrimSpace(tag) == "" {
			return "At least one tag is required and must not contain blank values"
		}
	}

	return ""
}
