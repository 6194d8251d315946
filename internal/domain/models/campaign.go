package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Campaign groups leads under a marketing effort
type Campaign struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	StartDate Date                `json:"start_date"`
	EndDate   NullDate            `json:"end_date"`
	Budget    decimal.NullDecimal `json:"budget"`
	IsActive  bool                `json:"is_active"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CampaignInput is the create/update body. Nil fields are left unchanged on
// partial updates.
type CampaignInput struct {
	Name      *string                   `json:"name" binding:"omitempty,max=150"`
	StartDate *Date                     `json:"start_date"`
	EndDate   Nullable[Date]            `json:"end_date"`
	Budget    Nullable[decimal.Decimal] `json:"budget"`
	IsActive  *bool                     `json:"is_active"`
}
