package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
)

const resourceCampaign = "Campaign"

var campaignColumns = []string{
	constants.FieldID, constants.FieldName, constants.FieldStartDate, constants.FieldEndDate,
	constants.FieldBudget, constants.FieldIsActive, constants.FieldCreatedAt, constants.FieldUpdatedAt,
}

type CampaignRepository struct {
	db Querier
}

func NewCampaignRepository(db Querier) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func scanCampaign(s rowScanner) (*models.Campaign, error) {
	var c models.Campaign
	if err := s.Scan(&c.ID, &c.Name, &c.StartDate, &c.EndDate, &c.Budget, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a campaign and fills in its ID and timestamps
func (r *CampaignRepository) Create(ctx context.Context, c *models.Campaign) error {
	now := time.Now().UTC().Truncate(time.Second)
	c.CreatedAt, c.UpdatedAt = now, now

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", constants.TableCampaign,
		columns(campaignColumns[1:]...), placeholders(len(campaignColumns)-1))
	res, err := r.db.ExecContext(ctx, query, c.Name, c.StartDate, c.EndDate, c.Budget, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return dbError("create campaign", resourceCampaign, constants.FieldName, c.Name, err)
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return appErrors.NewDatabaseError("create campaign", err)
	}
	return nil
}

// GetByID retrieves a campaign
func (r *CampaignRepository) GetByID(ctx context.Context, id int64) (*models.Campaign, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", columns(campaignColumns...), constants.TableCampaign, constants.FieldID)
	c, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, rowError("get campaign", resourceCampaign, id, err)
	}
	return c, nil
}

// List returns all campaigns, newest first
func (r *CampaignRepository) List(ctx context.Context) ([]*models.Campaign, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC, %s DESC", columns(campaignColumns...),
		constants.TableCampaign, constants.FieldCreatedAt, constants.FieldID)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list campaigns", err)
	}
	defer rows.Close()

	campaigns := make([]*models.Campaign, 0)
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, appErrors.NewDatabaseError("list campaigns", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list campaigns", err)
	}
	return campaigns, nil
}

// Update writes every mutable column of c
func (r *CampaignRepository) Update(ctx context.Context, c *models.Campaign) error {
	c.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", constants.TableCampaign,
		setClause(constants.FieldName, constants.FieldStartDate, constants.FieldEndDate, constants.FieldBudget,
			constants.FieldIsActive, constants.FieldUpdatedAt),
		constants.FieldID)
	res, err := r.db.ExecContext(ctx, query, c.Name, c.StartDate, c.EndDate, c.Budget, c.IsActive, c.UpdatedAt, c.ID)
	if err != nil {
		return dbError("update campaign", resourceCampaign, constants.FieldName, c.Name, err)
	}
	return affectedOrNotFound(res, "update campaign", resourceCampaign, c.ID)
}

// Delete removes a campaign. Leads referencing it keep existing with a NULL
// campaign (ON DELETE SET NULL).
func (r *CampaignRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableCampaign, constants.FieldID)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return appErrors.NewDatabaseError("delete campaign", err)
	}
	return affectedOrNotFound(res, "delete campaign", resourceCampaign, id)
}

// Exists reports whether a campaign with id exists
func (r *CampaignRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)", constants.TableCampaign, constants.FieldID)
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, appErrors.NewDatabaseError("check campaign", err)
	}
	return exists, nil
}
