package rest

import (
	"context"

	"github.com/ldanie38/geniuscrm/internal/application/services"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/auth"
)

// AuthService is what the auth endpoints and middleware need
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, password string) (*auth.TokenPair, *models.User, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
	ForgotPassword(ctx context.Context, email, baseURL string)
	ResetPassword(ctx context.Context, uid, token, newPassword string) bool
	ChangePassword(ctx context.Context, user *models.User, current, newPassword string) bool
	Logout(ctx context.Context) error
}

type UserService interface {
	List(ctx context.Context) ([]*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
}

type LeadService interface {
	List(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error)
	Get(ctx context.Context, id int64) (*models.Lead, error)
	Create(ctx context.Context, actor *models.User, in models.LeadInput) (*models.Lead, error)
	Update(ctx context.Context, actor *models.User, id int64, in models.LeadInput, partial bool) (*models.Lead, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

type CampaignService interface {
	List(ctx context.Context) ([]*models.Campaign, error)
	Get(ctx context.Context, id int64) (*models.Campaign, error)
	Create(ctx context.Context, actor *models.User, in models.CampaignInput) (*models.Campaign, error)
	Update(ctx context.Context, actor *models.User, id int64, in models.CampaignInput, partial bool) (*models.Campaign, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

type TagService interface {
	List(ctx context.Context) ([]*models.Tag, error)
	Get(ctx context.Context, id int64) (*models.Tag, error)
	Create(ctx context.Context, actor *models.User, in models.TagInput) (*models.Tag, error)
	Update(ctx context.Context, actor *models.User, id int64, in models.TagInput, partial bool) (*models.Tag, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

type LabelService interface {
	List(ctx context.Context, actor *models.User) ([]*models.Label, error)
	Get(ctx context.Context, actor *models.User, id int64) (*models.Label, error)
	Create(ctx context.Context, actor *models.User, in models.LabelInput) (*models.Label, error)
	Update(ctx context.Context, actor *models.User, id int64, in models.LabelInput, partial bool) (*models.Label, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

type TemplateService interface {
	List(ctx context.Context, actor *models.User) ([]*models.Template, error)
	Get(ctx context.Context, actor *models.User, id int64) (*models.Template, error)
	Create(ctx context.Context, actor *models.User, in models.TemplateInput) (*models.Template, error)
	Update(ctx context.Context, actor *models.User, id int64, in models.TemplateInput, partial bool) (*models.Template, error)
	Delete(ctx context.Context, actor *models.User, id int64) error
}

type LogService interface {
	Ingest(entry models.LogEntry)
	Tail(level string) (*models.LogTail, error)
}

// Services groups the dependencies of the HTTP layer
type Services struct {
	Auth      AuthService
	Users     UserService
	Leads     LeadService
	Campaigns CampaignService
	Tags      TagService
	Labels    LabelService
	Templates TemplateService
	Logs      LogService
}

// ServicesFrom adapts a ServiceManager
func ServicesFrom(sm *services.ServiceManager) Services {
	return Services{
		Auth:      sm.Auth,
		Users:     sm.Users,
		Leads:     sm.Leads,
		Campaigns: sm.Campaigns,
		Tags:      sm.Tags,
		Labels:    sm.Labels,
		Templates: sm.Templates,
		Logs:      sm.Logs,
	}
}
