package services_test

import (
	"context"
	"testing"

	"github.com/ldanie38/geniuscrm/internal/application/services"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestCampaignService(t *testing.T) {
	ctx := context.Background()

	t.Run("only staff may write", func(t *testing.T) {
		repo := new(MockCampaignRepository)
		svc := services.NewCampaignService(repo, nil)
		_, err := svc.Create(ctx, ownerUser, models.CampaignInput{Name: strPtr("Spring")})
		assert.True(t, errors.IsPermission(err))
		_, err = svc.Update(ctx, ownerUser, 1, models.CampaignInput{}, true)
		assert.True(t, errors.IsPermission(err))
		assert.True(t, errors.IsPermission(svc.Delete(ctx, ownerUser, 1)))
	})

	t.Run("create defaults to active and keeps budget", func(t *testing.T) {
		repo := new(MockCampaignRepository)
		svc := services.NewCampaignService(repo, nil)
		start := mustDate(t, "2024-03-01")

		var stored *models.Campaign
		repo.On("Create", ctx, mock.AnythingOfType("*models.Campaign")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*models.Campaign)
				stored.ID = 20
			}).
			Return(nil)
		repo.On("GetByID", ctx, int64(20)).Return(&models.Campaign{ID: 20}, nil)

		_, err := svc.Create(ctx, staffUser, models.CampaignInput{
			Name:      strPtr("Spring"),
			StartDate: &start,
			Budget:    models.Some(decimal.RequireFromString("1500.5")),
		})
		require.NoError(t, err)
		assert.True(t, stored.IsActive)
		assert.True(t, stored.Budget.Valid)
		assert.Equal(t, "1500.50", stored.Budget.Decimal.StringFixed(2))
		assert.False(t, stored.EndDate.Valid)
	})

	t.Run("rejects end before start and negative budget", func(t *testing.T) {
		svc := services.NewCampaignService(new(MockCampaignRepository), nil)
		start := mustDate(t, "2024-03-01")

		_, err := svc.Create(ctx, staffUser, models.CampaignInput{
			Name: strPtr("Spring"), StartDate: &start, EndDate: models.Some(mustDate(t, "2024-02-01")),
		})
		assert.True(t, errors.IsValidation(err))

		_, err = svc.Create(ctx, staffUser, models.CampaignInput{
			Name: strPtr("Spring"), StartDate: &start, Budget: models.Some(decimal.NewFromInt(-1)),
		})
		assert.True(t, errors.IsValidation(err))

		_, err = svc.Create(ctx, staffUser, models.CampaignInput{Name: strPtr("Spring")})
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("rejects budgets that do not fit decimal(12,2)", func(t *testing.T) {
		repo := new(MockCampaignRepository)
		svc := services.NewCampaignService(repo, nil)
		start := mustDate(t, "2024-03-01")

		for _, budget := range []string{"1500.555", "10000000000", "12345678901.5"} {
			_, err := svc.Create(ctx, staffUser, models.CampaignInput{
				Name: strPtr("Spring"), StartDate: &start, Budget: models.Some(decimal.RequireFromString(budget)),
			})
			var verr *errors.ValidationError
			require.ErrorAs(t, err, &verr, budget)
			assert.Equal(t, "budget", verr.Field)
		}
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

		repo.On("Create", ctx, mock.AnythingOfType("*models.Campaign")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Campaign).ID = 20 }).
			Return(nil)
		repo.On("GetByID", ctx, int64(20)).Return(&models.Campaign{ID: 20}, nil)
		_, err := svc.Create(ctx, staffUser, models.CampaignInput{
			Name: strPtr("Spring"), StartDate: &start, Budget: models.Some(decimal.RequireFromString("9999999999.99")),
		})
		assert.NoError(t, err)
	})

	t.Run("patch clears budget", func(t *testing.T) {
		repo := new(MockCampaignRepository)
		svc := services.NewCampaignService(repo, nil)
		c := &models.Campaign{ID: 20, Name: "Spring", StartDate: mustDate(t, "2024-03-01"),
			Budget: decimal.NullDecimal{Decimal: decimal.NewFromInt(10), Valid: true}}
		repo.On("GetByID", ctx, int64(20)).Return(c, nil)
		repo.On("Update", ctx, c).Return(nil)

		_, err := svc.Update(ctx, staffUser, 20, models.CampaignInput{Budget: models.Null[decimal.Decimal]()}, true)
		require.NoError(t, err)
		assert.False(t, c.Budget.Valid)
	})
}

func TestTagService(t *testing.T) {
	ctx := context.Background()

	t.Run("create uses default colour", func(t *testing.T) {
		repo := new(MockTagRepository)
		svc := services.NewTagService(repo, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Tag")).Return(nil)

		tag, err := svc.Create(ctx, staffUser, models.TagInput{Name: strPtr("VIP")})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultTagColor, tag.Color)
	})

	t.Run("invalid colour and non-staff", func(t *testing.T) {
		svc := services.NewTagService(new(MockTagRepository), nil)
		_, err := svc.Create(ctx, staffUser, models.TagInput{Name: strPtr("VIP"), Color: strPtr("gold")})
		assert.True(t, errors.IsValidation(err))
		_, err = svc.Create(ctx, ownerUser, models.TagInput{Name: strPtr("VIP")})
		assert.True(t, errors.IsPermission(err))
	})

	t.Run("seed only creates missing tags", func(t *testing.T) {
		repo := new(MockTagRepository)
		svc := services.NewTagService(repo, nil)
		repo.On("GetByName", ctx, "VIP").Return(&models.Tag{ID: 1, Name: "VIP"}, nil)
		repo.On("GetByName", ctx, "Birthday Soon").Return(nil, errors.NewNotFoundError("Tag", ""))
		repo.On("GetByName", ctx, "Needs Follow-up").Return(nil, errors.NewNotFoundError("Tag", ""))
		repo.On("Create", ctx, mock.AnythingOfType("*models.Tag")).Return(nil)

		created, err := svc.Seed(ctx, services.DefaultSeedTags)
		require.NoError(t, err)
		assert.Equal(t, 2, created)
		repo.AssertNumberOfCalls(t, "Create", 2)
	})
}

func TestLabelService(t *testing.T) {
	ctx := context.Background()

	t.Run("create belongs to actor", func(t *testing.T) {
		repo := new(MockLabelRepository)
		svc := services.NewLabelService(repo)
		repo.On("Create", ctx, mock.AnythingOfType("*models.Label")).Return(nil)

		label, err := svc.Create(ctx, ownerUser, models.LabelInput{Name: strPtr("Hot"), Color: strPtr("#1A2B3C")})
		require.NoError(t, err)
		assert.Equal(t, ownerUser.ID, label.Owner)
		assert.Equal(t, "#1A2B3C", label.Color)

		label, err = svc.Create(ctx, ownerUser, models.LabelInput{Name: strPtr("Cold")})
		require.NoError(t, err)
		assert.Equal(t, constants.DefaultLabelColor, label.Color)
	})

	t.Run("other user's label is not found", func(t *testing.T) {
		repo := new(MockLabelRepository)
		svc := services.NewLabelService(repo)
		repo.On("GetForOwner", ctx, int64(40), otherUser.ID).Return(nil, errors.NewNotFoundError("Label", "40"))

		_, err := svc.Update(ctx, otherUser, 40, models.LabelInput{Name: strPtr("Mine")}, true)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("rejects bad colour", func(t *testing.T) {
		svc := services.NewLabelService(new(MockLabelRepository))
		_, err := svc.Create(ctx, ownerUser, models.LabelInput{Name: strPtr("Hot"), Color: strPtr("#12345")})
		assert.True(t, errors.IsValidation(err))
	})
}

func TestTemplateService(t *testing.T) {
	ctx := context.Background()

	t.Run("label must belong to actor", func(t *testing.T) {
		templates := new(MockTemplateRepository)
		labels := new(MockLabelRepository)
		svc := services.NewTemplateService(templates, labels)
		labels.On("GetForOwner", ctx, int64(40), ownerUser.ID).Return(nil, errors.NewNotFoundError("Label", "40"))

		_, err := svc.Create(ctx, ownerUser, models.TemplateInput{Name: strPtr("Hello"), Label: models.Some(int64(40))})
		assert.True(t, errors.IsValidation(err))
		templates.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("create with own label", func(t *testing.T) {
		templates := new(MockTemplateRepository)
		labels := new(MockLabelRepository)
		svc := services.NewTemplateService(templates, labels)
		labels.On("GetForOwner", ctx, int64(40), ownerUser.ID).Return(&models.Label{ID: 40, Owner: ownerUser.ID}, nil)
		templates.On("Create", ctx, mock.MatchedBy(func(tpl *models.Template) bool {
			return tpl.Owner == ownerUser.ID && tpl.Label != nil && *tpl.Label == 40
		})).Return(nil)
		templates.On("GetForOwner", ctx, int64(50), ownerUser.ID).Return(&models.Template{ID: 50}, nil)

		tpl, err := svc.Create(ctx, ownerUser, models.TemplateInput{
			Name: strPtr("Hello"), Label: models.Some(int64(40)), Content: strPtr("Hi {{name}}"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(50), tpl.ID)
	})

	t.Run("patch clears label", func(t *testing.T) {
		templates := new(MockTemplateRepository)
		svc := services.NewTemplateService(templates, new(MockLabelRepository))
		l := int64(40)
		tpl := &models.Template{ID: 50, Name: "Hello", Label: &l, Owner: ownerUser.ID}
		templates.On("GetForOwner", ctx, int64(50), ownerUser.ID).Return(tpl, nil)
		templates.On("Update", ctx, tpl).Return(nil)

		_, err := svc.Update(ctx, ownerUser, 50, models.TemplateInput{Label: models.Null[int64]()}, true)
		require.NoError(t, err)
		assert.Nil(t, tpl.Label)
	})
}
