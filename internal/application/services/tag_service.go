package services

import (
	"context"
	"strings"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/internal/domain/ports"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/ldanie38/geniuscrm/pkg/validator"
	"go.uber.org/zap"
)

// SeedTag is a tag installed by the seed command
type SeedTag struct {
	Name  string
	Color string
}

// DefaultSeedTags are the tags the seed command installs
var DefaultSeedTags = []SeedTag{
	{Name: "VIP", Color: "#FFD700"},
	{Name: "Birthday Soon", Color: "#FF69B4"},
	{Name: "Needs Follow-up", Color: "#1E90FF"},
}

// TagService manages tags. Writes are restricted to staff.
type TagService struct {
	tags   ports.TagRepository
	logger *zap.Logger
}

func NewTagService(tags ports.TagRepository, logger *zap.Logger) *TagService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TagService{tags: tags, logger: logger}
}

func (s *TagService) List(ctx context.Context) ([]*models.Tag, error) {
	return s.tags.List(ctx)
}

func (s *TagService) Get(ctx context.Context, id int64) (*models.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

func (s *TagService) Create(ctx context.Context, actor *models.User, in models.TagInput) (*models.Tag, error) {
	if !actor.IsStaff {
		return nil, errors.NewPermissionError("create", "tag")
	}
	if in.Name == nil {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	t := &models.Tag{Color: constants.DefaultTagColor}
	if err := applyTag(t, in); err != nil {
		return nil, err
	}
	if err := s.tags.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TagService) Update(ctx context.Context, actor *models.User, id int64, in models.TagInput, partial bool) (*models.Tag, error) {
	if !actor.IsStaff {
		return nil, errors.NewPermissionError("update", "tag")
	}
	t, err := s.tags.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !partial && in.Name == nil {
		return nil, errors.NewValidationError("name", "This field is required.")
	}
	if err := applyTag(t, in); err != nil {
		return nil, err
	}
	if err := s.tags.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TagService) Delete(ctx context.Context, actor *models.User, id int64) error {
	if !actor.IsStaff {
		return errors.NewPermissionError("delete", "tag")
	}
	return s.tags.Delete(ctx, id)
}

// Seed creates each tag that does not exist yet, matched by name. It reports
// how many were created.
func (s *TagService) Seed(ctx context.Context, seeds []SeedTag) (int, error) {
	created := 0
	for _, seed := range seeds {
		_, err := s.tags.GetByName(ctx, seed.Name)
		if err == nil {
			continue
		}
		if !errors.IsNotFound(err) {
			return created, err
		}
		if err := s.tags.Create(ctx, &models.Tag{Name: seed.Name, Color: seed.Color}); err != nil {
			return created, err
		}
		s.logger.Info("tag seeded", zap.String("name", seed.Name))
		created++
	}
	return created, nil
}

func applyTag(t *models.Tag, in models.TagInput) error {
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return errors.NewValidationError("name", "This field may not be blank.")
		}
		t.Name = name
	}
	if in.Color != nil {
		if !validator.IsHexColor(*in.Color) {
			return errors.NewValidationError("color", "Enter a valid hex color, e.g. #1A2B3C")
		}
		t.Color = *in.Color
	}
	return nil
}
