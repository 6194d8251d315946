package services_test

import (
	"context"
	"time"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository implements ports.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil && u.ID == 0 {
		u.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListByEmail(ctx context.Context, email string) ([]*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *MockUserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *MockUserRepository) SetStaff(ctx context.Context, id int64, staff bool) error {
	return m.Called(ctx, id, staff).Error(0)
}

// MockLeadRepository implements ports.LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *models.Lead) error {
	args := m.Called(ctx, l)
	if args.Error(0) == nil && l.ID == 0 {
		l.ID = 10
	}
	return args.Error(0)
}

func (m *MockLeadRepository) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, l *models.Lead, replaceTags bool) error {
	return m.Called(ctx, l, replaceTags).Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockCampaignRepository implements ports.CampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) Create(ctx context.Context, c *models.Campaign) error {
	args := m.Called(ctx, c)
	if args.Error(0) == nil && c.ID == 0 {
		c.ID = 20
	}
	return args.Error(0)
}

func (m *MockCampaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) List(ctx context.Context) ([]*models.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Update(ctx context.Context, c *models.Campaign) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCampaignRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockTagRepository implements ports.TagRepository
type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) Create(ctx context.Context, t *models.Tag) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil && t.ID == 0 {
		t.ID = 30
	}
	return args.Error(0)
}

func (m *MockTagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Update(ctx context.Context, t *models.Tag) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTagRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockTagRepository) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	args := m.Called(ctx, ids)
	return args.Int(0), args.Error(1)
}

// MockLabelRepository implements ports.LabelRepository
type MockLabelRepository struct {
	mock.Mock
}

func (m *MockLabelRepository) Create(ctx context.Context, l *models.Label) error {
	args := m.Called(ctx, l)
	if args.Error(0) == nil && l.ID == 0 {
		l.ID = 40
	}
	return args.Error(0)
}

func (m *MockLabelRepository) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Label, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Label), args.Error(1)
}

func (m *MockLabelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Label, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Label), args.Error(1)
}

func (m *MockLabelRepository) Update(ctx context.Context, l *models.Label) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLabelRepository) DeleteForOwner(ctx context.Context, id, ownerID int64) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

// MockTemplateRepository implements ports.TemplateRepository
type MockTemplateRepository struct {
	mock.Mock
}

func (m *MockTemplateRepository) Create(ctx context.Context, t *models.Template) error {
	args := m.Called(ctx, t)
	if args.Error(0) == nil && t.ID == 0 {
		t.ID = 50
	}
	return args.Error(0)
}

func (m *MockTemplateRepository) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Template, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Template), args.Error(1)
}

func (m *MockTemplateRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Template, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Template), args.Error(1)
}

func (m *MockTemplateRepository) Update(ctx context.Context, t *models.Template) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTemplateRepository) DeleteForOwner(ctx context.Context, id, ownerID int64) error {
	return m.Called(ctx, id, ownerID).Error(0)
}

// MockMailer implements ports.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg ports.Email) error {
	return m.Called(ctx, msg).Error(0)
}

// MockPagePoster implements ports.PagePoster
type MockPagePoster struct {
	mock.Mock
}

func (m *MockPagePoster) CreatePost(ctx context.Context, pageID, message string) (map[string]interface{}, error) {
	args := m.Called(ctx, pageID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

var (
	staffUser = &models.User{ID: 1, Username: "admin", IsActive: true, IsStaff: true}
	ownerUser = &models.User{ID: 2, Username: "alice", IsActive: true}
	otherUser = &models.User{ID: 3, Username: "bob", IsActive: true}
	strPtr    = func(s string) *string { return &s }
	boolPtr   = func(b bool) *bool { return &b }
	int64Ptr  = func(i int64) *int64 { return &i }
	idsPtr    = func(ids ...int64) *[]int64 { return &ids }
)
