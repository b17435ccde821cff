package dto

import (
	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// CategoryResponse defines the data returned for one category tree node.
type CategoryResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Type     string `json:"type"`
	Emoji    string `json:"emoji,omitempty"`
	ParentID string `json:"parentID,omitempty"`
	Level    string `json:"level"` // type | general | sub
}

// ToCategoryResponse converts a category tree node to its DTO.
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	level := "sub"
	switch {
	case c.IsTypeCategory():
		level = "type"
	case c.IsGeneralCategory():
		level = "general"
	}
	parentID := ""
	if c.Parent != nil {
		parentID = c.Parent.ID
	}
	return CategoryResponse{
		ID:       c.ID,
		Title:    c.Title,
		Type:     string(c.Type),
		Emoji:    c.ResolveEmoji(),
		ParentID: parentID,
		Level:    level,
	}
}

// ToListCategoryResponse converts the category tree to DTOs.
func ToListCategoryResponse(categories []*domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = ToCategoryResponse(c)
	}
	return res
}
