package services

import (
	"context"
	"strings"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Budgets are stored as DECIMAL(12,2)
const (
	budgetPlaces      = 2
	budgetWholeDigits = 10
)

var budgetLimit = decimal.New(1, budgetWholeDigits)

// CampaignService manages campaigns. Writes are restricted to staff.
type CampaignService struct {
	campaigns ports.CampaignRepository
	logger    *zap.Logger
}

func NewCampaignService(campaigns ports.CampaignRepository, logger *zap.Logger) *CampaignService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CampaignService{campaigns: campaigns, logger: logger}
}

func (s *CampaignService) List(ctx context.Context) ([]*models.Campaign, error) {
	return s.campaigns.List(ctx)
}

func (s *CampaignService) Get(ctx context.Context, id int64) (*models.Campaign, error) {
	return s.campaigns.GetByID(ctx, id)
}

func (s *CampaignService) Create(ctx context.Context, actor *models.User, in models.CampaignInput) (*models.Campaign, error) {
	if !actor.IsStaff {
		return nil, errors.NewPermissionError("create", "campaign")
	}
	if in.Name == nil {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	if in.StartDate == nil {
		return nil, errors.NewValidationError("start_date", "This field is required.")
	}

	c := &models.Campaign{IsActive: true}
	if err := applyCampaign(c, in); err != nil {
		return nil, err
	}
	if err := s.campaigns.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info("campaign created", zap.Int64("campaign_id", c.ID))
	return s.campaigns.GetByID(ctx, c.ID)
}

func (s *CampaignService) Update(ctx context.Context, actor *models.User, id int64, in models.CampaignInput, partial bool) (*models.Campaign, error) {
	if !actor.IsStaff {
		return nil, errors.NewPermissionError("update", "campaign")
	}
	c, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !partial {
		if in.Name == nil {
			return nil, errors.NewValidationError("name", "This field is required.")
		}
		if in.StartDate == nil {
			return nil, errors.NewValidationError("start_date", "This field is required.")
		}
	}
	if err := applyCampaign(c, in); err != nil {
		return nil, err
	}
	if err := s.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.campaigns.GetByID(ctx, id)
}

func (s *CampaignService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if !actor.IsStaff {
		return errors.NewPermissionError("delete", "campaign")
	}
	if err := s.campaigns.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("campaign deleted", zap.Int64("campaign_id", id))
	return nil
}

func applyCampaign(c *models.Campaign, in models.CampaignInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return errors.NewValidationError("name", "This field may not be blank.")
		}
		c.Name = name
	}
	if in.StartDate != nil {
		c.StartDate = *in.StartDate
	}
	if in.EndDate.Set {
		if in.EndDate.Valid {
			c.EndDate = models.NullDate{Date: in.EndDate.Value, Valid: true}
		} else {
			c.EndDate = models.NullDate{}
		}
	}
	if in.Budget.Set {
		if in.Budget.Valid {
			if err := validateBudget(in.Budget.Value); err != nil {
				return err
			}
			c.Budget.Decimal = in.Budget.Value
			c.Budget.Valid = true
		} else {
			c.Budget.Valid = false
		}
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	if c.EndDate.Valid && c.EndDate.Date.Before(c.StartDate) {
		return errors.NewValidationError("end_date", "End date must not be before start date.")
	}
	return nil
}

func validateBudget(d decimal.Decimal) error {
	switch {
	case d.IsNegative():
		return errors.NewValidationError("budget", "Ensure this value is greater than or equal to 0.")
	case !d.Equal(d.Round(budgetPlaces)):
		return errors.NewValidationError("budget", "Ensure that there are no more than 2 decimal places.")
	case d.GreaterThanOrEqual(budgetLimit):
		return errors.NewValidationError("budget", "Ensure that there are no more than 10 digits before the decimal point.")
	}
	return nil
}
