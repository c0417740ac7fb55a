package domain

import "strings"

// Category is the closed set of post categories.
// The zero value is not a valid category; use ParseCategory or
// ParseCategoryCode to obtain one.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryTechnology
	CategoryBusiness
	CategorySports
	CategoryLifestyle
	CategoryHealth
	CategoryTravel
	CategoryFood
	CategoryEducation
	CategoryEntertainment
	CategoryScience
)

// categoryTable is the bidirectional mapping between category values,
// their storage codes and their wire display names. Order is canonical
// and drives CategoryNames.
var categoryTable = []struct {
	value       Category
	code        string
	displayName string
}{
	{CategoryTechnology, "TECHNOLOGY", "Technology"},
	{CategoryBusiness, "BUSINESS", "Business"},
	{CategorySports, "SPORTS", "Sports"},
	{CategoryLifestyle, "LIFESTYLE", "Lifestyle"},
	{CategoryHealth, "HEALTH", "Health"},
	{CategoryTravel, "TRAVEL", "Travel"},
	{CategoryFood, "FOOD", "Food"},
	{CategoryEducation, "EDUCATION", "Education"},
	{CategoryEntertainment, "ENTERTAINMENT", "Entertainment"},
	{CategoryScience, "SCIENCE", "Science"},
}

// DisplayName returns the human-readable name used on the wire.
// Returns an empty string for an unknown category.
func (c Category) DisplayName() string {
	for _, e := range categoryTable {
		if e.value == c {
			return e.displayName
		}
	}

	return ""
}

// Code returns the stable identifier persisted by the store.
func (c Category) Code() string {
	for _, e := range categoryTable {
		if e.value == c {
			return e.code
		}
	}

	return ""
}

// String implements fmt.Stringer using the storage code.
func (c Category) String() string {
	return c.Code()
}

// IsValid reports whether c is one of the ten known categories.
func (c Category) IsValid() bool {
	return c > CategoryUnknown && int(c) <= len(categoryTable)
}

// ParseCategory resolves a display name to a Category.
// Matching is a case-insensitive exact match; no partial or fuzzy matching.
// Returns an InvalidCategoryError listing the allowed names on failure.
func ParseCategory(displayName string) (Category, error) {
	for _, e := range categoryTable {
		if strings.EqualFold(e.displayName, displayName) {
			return e.value, nil
		}
	}

	return CategoryUnknown, NewInvalidCategoryError(displayName)
}

// ParseCategoryCode resolves a persisted storage code to a Category.
// Returns an InvalidCategoryError if the code is unknown.
func ParseCategoryCode(code string) (Category, error) {
	for _, e := range categoryTable {
		if e.code == code {
			return e.value, nil
		}
	}

	return CategoryUnknown, NewInvalidCategoryError(code)
}

// CategoryNames returns the canonical display names in declaration order.
// Used to build error messages listing the valid options.
func CategoryNames() []string {
	names := make([]string, 0, len(categoryTable))
	for _, e := range categoryTable {
		names = append(names, e.displayName)
	}

	return names
}

// AllowedCategoryNames returns the display names joined for error messages.
func AllowedCategoryNames() string {
	return strings.Join(CategoryNames(), ", ")
}
