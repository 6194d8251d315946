package ports

import (
	"context"
	"time"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
)

// UserRepository provides access to user accounts
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ListByEmail(ctx context.Context, email string) ([]*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	SetStaff(ctx context.Context, id int64, staff bool) error
}

// LeadRepository provides access to leads and their tag links
type LeadRepository interface {
	Create(ctx context.Context, l *models.Lead) error
	GetByID(ctx context.Context, id int64) (*models.Lead, error)
	List(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error)
	Update(ctx context.Context, l *models.Lead, replaceTags bool) error
	Delete(ctx context.Context, id int64) error
}

// CampaignRepository provides access to campaigns
type CampaignRepository interface {
	Create(ctx context.Context, c *models.Campaign) error
	GetByID(ctx context.Context, id int64) (*models.Campaign, error)
	List(ctx context.Context) ([]*models.Campaign, error)
	Update(ctx context.Context, c *models.Campaign) error
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// TagRepository provides access to tags
type TagRepository interface {
	Create(ctx context.Context, t *models.Tag) error
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
	GetByName(ctx context.Context, name string) (*models.Tag, error)
	List(ctx context.Context) ([]*models.Tag, error)
	Update(ctx context.Context, t *models.Tag) error
	Delete(ctx context.Context, id int64) error
	CountByIDs(ctx context.Context, ids []int64) (int, error)
}

// LabelRepository provides owner-scoped access to labels
type LabelRepository interface {
	Create(ctx context.Context, l *models.Label) error
	GetForOwner(ctx context.Context, id, ownerID int64) (*models.Label, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Label, error)
	Update(ctx context.Context, l *models.Label) error
	DeleteForOwner(ctx context.Context, id, ownerID int64) error
}

// TemplateRepository provides owner-scoped access to templates
type TemplateRepository interface {
	Create(ctx context.Context, t *models.Template) error
	GetForOwner(ctx context.Context, id, ownerID int64) (*models.Template, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*models.Template, error)
	Update(ctx context.Context, t *models.Template) error
	DeleteForOwner(ctx context.Context, id, ownerID int64) error
}
