package rest_test

import (
	"context"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/auth"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/stretchr/testify/mock"
)

// MockAuthService implements rest.AuthService
type MockAuthService struct {
	mock.Mock
	users map[string]*models.User
}

func (m *MockAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*auth.TokenPair, *models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*auth.TokenPair), args.Get(1).(*models.User), args.Error(2)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

// Authenticate resolves tokens from the fixed users map so tests do not
// need an expectation per request
func (m *MockAuthService) Authenticate(ctx context.Context, accessToken string) (*models.User, error) {
	if u, ok := m.users[accessToken]; ok {
		return u, nil
	}
	return nil, errors.NewUnauthorizedError("Given token not valid for any token type")
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email, baseURL string) {
	m.Called(ctx, email, baseURL)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, uid, token, newPassword string) bool {
	return m.Called(ctx, uid, token, newPassword).Bool(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, user *models.User, current, newPassword string) bool {
	return m.Called(ctx, user, current, newPassword).Bool(0)
}

func (m *MockAuthService) Logout(ctx context.Context) error {
	return nil
}

// MockLeadService implements rest.LeadService
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) List(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lead), args.Error(1)
}

func (m *MockLeadService) Get(ctx context.Context, id int64) (*models.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadService) Create(ctx context.Context, actor *models.User, in models.LeadInput) (*models.Lead, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadService) Update(ctx context.Context, actor *models.User, id int64, in models.LeadInput, partial bool) (*models.Lead, error) {
	args := m.Called(ctx, actor, id, in, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadService) Delete(ctx context.Context, actor *models.User, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

// MockTagService implements rest.TagService
type MockTagService struct {
	mock.Mock
}

func (m *MockTagService) List(ctx context.Context) ([]*models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tag), args.Error(1)
}

func (m *MockTagService) Get(ctx context.Context, id int64) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Create(ctx context.Context, actor *models.User, in models.TagInput) (*models.Tag, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Update(ctx context.Context, actor *models.User, id int64, in models.TagInput, partial bool) (*models.Tag, error) {
	args := m.Called(ctx, actor, id, in, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagService) Delete(ctx context.Context, actor *models.User, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

// MockLogService implements rest.LogService
type MockLogService struct {
	mock.Mock
}

func (m *MockLogService) Ingest(entry models.LogEntry) {
	m.Called(entry)
}

func (m *MockLogService) Tail(level string) (*models.LogTail, error) {
	args := m.Called(level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LogTail), args.Error(1)
}

// MockUserService implements rest.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockCampaignService implements rest.CampaignService
type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) List(ctx context.Context) ([]*models.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Campaign), args.Error(1)
}

func (m *MockCampaignService) Get(ctx context.Context, id int64) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignService) Create(ctx context.Context, actor *models.User, in models.CampaignInput) (*models.Campaign, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignService) Update(ctx context.Context, actor *models.User, id int64, in models.CampaignInput, partial bool) (*models.Campaign, error) {
	args := m.Called(ctx, actor, id, in, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignService) Delete(ctx context.Context, actor *models.User, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

// MockLabelService implements rest.LabelService
type MockLabelService struct {
	mock.Mock
}

func (m *MockLabelService) List(ctx context.Context, actor *models.User) ([]*models.Label, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Label), args.Error(1)
}

func (m *MockLabelService) Get(ctx context.Context, actor *models.User, id int64) (*models.Label, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelService) Create(ctx context.Context, actor *models.User, in models.LabelInput) (*models.Label, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelService) Update(ctx context.Context, actor *models.User, id int64, in models.LabelInput, partial bool) (*models.Label, error) {
	args := m.Called(ctx, actor, id, in, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelService) Delete(ctx context.Context, actor *models.User, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}

// MockTemplateService implements rest.TemplateService
type MockTemplateService struct {
	mock.Mock
}

func (m *MockTemplateService) List(ctx context.Context, actor *models.User) ([]*models.Template, error) {
	args := m.Called(ctx, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Template), args.Error(1)
}

func (m *MockTemplateService) Get(ctx context.Context, actor *models.User, id int64) (*models.Template, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) Create(ctx context.Context, actor *models.User, in models.TemplateInput) (*models.Template, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) Update(ctx context.Context, actor *models.User, id int64, in models.TemplateInput, partial bool) (*models.Template, error) {
	args := m.Called(ctx, actor, id, in, partial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateService) Delete(ctx context.Context, actor *models.User, id int64) error {
	return m.Called(ctx, actor, id).Error(0)
}
