package models

import (
	"time"

	"github.com/ldanie38/geniuscrm/pkg/constants"
)

// Lead is a prospective customer tracked through the sales pipeline
type Lead struct {
	ID            int64                `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	ProfileURL    string               `json:"profile_url"`
	Source        string               `json:"source"`
	Status        constants.LeadStatus `json:"status"`
	IsArchived    bool                 `json:"is_archived"`
	Owner         int64                `json:"owner"`
	OwnerUsername string               `json:"owner_username"`
	Campaign      *int64               `json:"campaign"`
	Tags          []int64              `json:"tags"`
	Notes         string               `json:"notes"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

// LeadInput is the create/update body for leads
type LeadInput struct {
	Name       *string         `json:"name" binding:"omitempty,max=200"`
	Email      *string         `json:"email" binding:"omitempty,email,max=254"`
	ProfileURL *string         `json:"profile_url" binding:"omitempty,url,max=200"`
	Source     *string         `json:"source" binding:"omitempty,max=100"`
	Status     *string         `json:"status" binding:"omitempty,leadstatus"`
	IsArchived *bool           `json:"is_archived"`
	Owner      *int64          `json:"owner"`
	Campaign   Nullable[int64] `json:"campaign"`
	Tags       *[]int64        `json:"tags"`
	Notes      *string         `json:"notes"`
}

// LeadFilter narrows GET /leads
type LeadFilter struct {
	Status     string
	CampaignID *int64
	OwnerID    *int64
	Search     string
	Archived   *bool
}
