package services

import (
	"context"
	"strings"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/errors"
)

// TemplateService manages the requesting user's message templates
type TemplateService struct {
	templates ports.TemplateRepository
	labels    ports.LabelRepository
}

func NewTemplateService(templates ports.TemplateRepository, labels ports.LabelRepository) *TemplateService {
	return &TemplateService{templates: templates, labels: labels}
}

func (s *TemplateService) List(ctx context.Context, actor *models.User) ([]*models.Template, error) {
	return s.templates.ListByOwner(ctx, actor.ID)
}

func (s *TemplateService) Get(ctx context.Context, actor *models.User, id int64) (*models.Template, error) {
	return s.templates.GetForOwner(ctx, id, actor.ID)
}

func (s *TemplateService) Create(ctx context.Context, actor *models.User, in models.TemplateInput) (*models.Template, error) {
	if in.Name == nil {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	t := &models.Template{Owner: actor.ID}
	if err := s.apply(ctx, actor, t, in); err != nil {
		return nil, err
	}
	if err := s.templates.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.templates.GetForOwner(ctx, t.ID, actor.ID)
}

func (s *TemplateService) Update(ctx context.Context, actor *models.User, id int64, in models.TemplateInput, partial bool) (*models.Template, error) {
	t, err := s.templates.GetForOwner(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if !partial && in.Name == nil {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	if err := s.apply(ctx, actor, t, in); err != nil {
		return nil, err
	}
	if err := s.templates.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.templates.GetForOwner(ctx, id, actor.ID)
}

func (s *TemplateService) Delete(ctx context.Context, actor *models.User, id int64) error {
	return s.templates.DeleteForOwner(ctx, id, actor.ID)
}

func (s *TemplateService) apply(ctx context.Context, actor *models.User, t *models.Template, in models.TemplateInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return errors.NewValidationError("name", "This field may not be blank.")
		}
		t.Name = name
	}
	if in.Content != nil {
		t.Content = *in.Content
	}
	if in.Label.Set {
		if !in.Label.Valid {
			t.Label = nil
			return nil
		}
		if _, err := s.labels.GetForOwner(ctx, in.Label.Value, actor.ID); err != nil {
			if errors.IsNotFound(err) {
				return errors.NewValidationError("label", "Label does not exist.")
			}
			return err
		}
		id := in.Label.Value
		t.Label = &id
	}
	return nil
}
