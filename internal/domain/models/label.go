package models

// Label is a user-owned category for message templates
type Label struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Owner int64  `json:"owner"`
}

// LabelInput is the create/update body for labels
type LabelInput struct {
	Name  *string `json:"name" binding:"omitempty,max=50"`
	Color *string `json:"color" binding:"omitempty,rgbhex"`
}
