package services

import (
	"context"
	"strings"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/ldanie38/geniuscrm/pkg/validator"
)

// LabelService manages the requesting user's labels
type LabelService struct {
	labels ports.LabelRepository
}

func NewLabelService(labels ports.LabelRepository) *LabelService {
	return &LabelService{labels: labels}
}

func (s *LabelService) List(ctx context.Context, actor *models.User) ([]*models.Label, error) {
	return s.labels.ListByOwner(ctx, actor.ID)
}

func (s *LabelService) Get(ctx context.Context, actor *models.User, id int64) (*models.Label, error) {
	return s.labels.GetForOwner(ctx, id, actor.ID)
}

func (s *LabelService) Create(ctx context.Context, actor *models.User, in models.LabelInput) (*models.Label, error) {
	if in.Name == nil {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	l := &models.Label{Color: constants.DefaultLabelColor, Owner: actor.ID}
	if err := applyLabel(l, in); err != nil {
		return nil, err
	}
	if err := s.labels.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LabelService) Update(ctx context.Context, actor *models.User, id int64, in models.LabelInput, partial bool) (*models.Label, error) {
	l, err := s.labels.GetForOwner(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !partial && in.Name == nil {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	if err := applyLabel(l, in); err != nil {
		return nil, err
	}
	if err := s.labels.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LabelService) Delete(ctx context.Context, actor *models.User, id int64) error {
	return s.labels.DeleteForOwner(ctx, id, actor.ID)
}

func applyLabel(l *models.Label, in models.LabelInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return errors.NewValidationError("name", "This field may not be blank.")
		}
		l.Name = name
	}
	if in.Color != nil {
		if !validator.IsHexColor(*in.Color) {
			return errors.NewValidationError("color", "Enter a valid hex color, e.g. #1A2B3C")
		}
		l.Color = *in.Color
	}
	return nil
}
