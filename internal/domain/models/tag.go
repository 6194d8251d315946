package models

// Tag is a coloured marker attached to leads
type Tag struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TagInput is the create/update body for tags
type TagInput struct {
	Name  *string `json:"name" binding:"omitempty,max=50"`
	Color *string `json:"color" binding:"omitempty,rgbhex"`
}
