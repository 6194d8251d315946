package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/auth"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"go.uber.org/zap"
)

// LeadService manages leads and enforces ownership rules
type LeadService struct {
	leads     ports.LeadRepository
	campaigns ports.CampaignRepository
	tags      ports.TagRepository
	logger    *zap.Logger
}

func NewLeadService(leads ports.LeadRepository, campaigns ports.CampaignRepository, tags ports.TagRepository, logger *zap.Logger) *LeadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadService{leads: leads, campaigns: campaigns, tags: tags, logger: logger}
}

func (s *LeadService) List(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error) {
	if filter.Status != "" && !constants.LeadStatus(filter.Status).IsValid() {
		return nil, errors.NewValidationError(constants.ParamStatus, "Select a valid choice.")
	}
	return s.leads.List(ctx, filter)
}

func (s *LeadService) Get(ctx context.Context, id int64) (*models.Lead, error) {
	return s.leads.GetByID(ctx, id)
}

// Create stores a new lead. The owner defaults to the actor and only staff
// may assign another owner.
func (s *LeadService) Create(ctx context.Context, actor *models.User, in models.LeadInput) (*models.Lead, error) {
	lead := &models.Lead{
		Status: constants.DefaultLeadStatus,
		Owner:  actor.ID,
	}
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	if in.Email == nil || strings.TrimSpace(*in.Email) == "" {
		return nil, errors.NewValidationError("email", "This field is required.")
	}

	if err := s.apply(ctx, actor, lead, in); err != nil {
		return nil, err
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	s.logger.Info("lead created", zap.Int64("lead_id", lead.ID), zap.Int64("owner_id", lead.Owner))
	return s.leads.GetByID(ctx, lead.ID)
}

// Update modifies a lead owned by the actor (or any lead for staff). With
// partial=false every required field must be present.
func (s *LeadService) Update(ctx context.Context, actor *models.User, id int64, in models.LeadInput, partial bool) (*models.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModifyLead(actor, lead) {
		return nil, errors.NewPermissionError("update", "lead")
	}
	if !partial {
		if in.Name == nil {
			return nil, errors.NewValidationError("name", "This field is required.")
		}
		if in.Email == nil {
			return nil, errors.NewValidationError("email", "This field is required.")
		}
	}

	if err := s.apply(ctx, actor, lead, in); err != nil {
		return nil, err
	}
	if err := s.leads.Update(ctx, lead, in.Tags != nil); err != nil {
		return nil, err
	}

	s.logger.Info("lead updated", zap.Int64("lead_id", lead.ID))
	return s.leads.GetByID(ctx, lead.ID)
}

func (s *LeadService) Delete(ctx context.Context, actor *models.User, id int64) error {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !canModifyLead(actor, lead) {
		return errors.NewPermissionError("delete", "lead")
	}
	if err := s.leads.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("lead deleted", zap.Int64("lead_id", id), zap.Int64("actor_id", actor.ID))
	return nil
}

func canModifyLead(actor *models.User, lead *models.Lead) bool {
	return actor.IsStaff || lead.Owner == actor.ID
}

func (s *LeadService) apply(ctx context.Context, actor *models.User, lead *models.Lead, in models.LeadInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return errors.NewValidationError("name", "This field may not be blank.")
		}
		lead.Name = name
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !auth.IsValidEmail(email) {
			return errors.NewValidationError("email", "Enter a valid email address.")
		}
		lead.Email = email
	}
	if in.ProfileURL != nil {
		lead.ProfileURL = strings.TrimSpace(*in.ProfileURL)
	}
	if in.Source != nil {
		lead.Source = *in.Source
	}
	if in.Status != nil {
		status := constants.LeadStatus(*in.Status)
		if !status.IsValid() {
			return errors.NewValidationError("status", "\""+*in.Status+"\" is not a valid choice.")
		}
		lead.Status = status
	}
	if in.IsArchived != nil {
		lead.IsArchived = *in.IsArchived
	}
	if in.Notes != nil {
		lead.Notes = *in.Notes
	}

	if in.Owner != nil && *in.Owner != lead.Owner {
		if !actor.IsStaff {
			return errors.NewPermissionError("assign", "lead to another owner")
		}
		lead.Owner = *in.Owner
	}

	if in.Campaign.Set {
		if !in.Campaign.Valid {
			lead.Campaign = nil
		} else {
			ok, err := s.campaigns.Exists(ctx, in.Campaign.Value)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewValidationError("campaign", "Invalid pk \""+strconv.FormatInt(in.Campaign.Value, 10)+"\" - object does not exist.")
			}
			id := in.Campaign.Value
			lead.Campaign = &id
		}
	}

	if in.Tags != nil {
		ids := uniqueIDs(*in.Tags)
		if len(ids) > 0 {
			n, err := s.tags.CountByIDs(ctx, ids)
			if err != nil {
				return err
			}
			if n != len(ids) {
				return errors.NewValidationError("tags", "One or more tags do not exist.")
			}
		}
		lead.Tags = ids
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
