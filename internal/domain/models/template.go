package models

import "time"

// Template is a reusable message body owned by a user
type Template struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Label     *int64    `json:"label"`
	Content   string    `json:"content"`
	Owner     int64     `json:"owner"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TemplateInput is the create/update body for templates
type TemplateInput struct {
	Name    *string         `json:"name" binding:"omitempty,max=100"`
	Label   Nullable[int64] `json:"label"`
	Content *string         `json:"content"`
}
