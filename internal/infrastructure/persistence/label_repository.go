package persistence

import (
	"context"
	"fmt"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
)

const resourceLabel = "Label"

type LabelRepository struct {
	db Querier
}

func NewLabelRepository(db Querier) *LabelRepository {
	return &LabelRepository{db: db}
}

func labelSelect(where string) string {
	return fmt.Sprintf("SELECT %s FROM %s %s",
		columns(constants.FieldID, constants.FieldName, constants.FieldColor, constants.FieldOwnerID), constants.TableLabel, where)
}

// Create inserts a label
func (r *LabelRepository) Create(ctx context.Context, l *models.Label) error {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?)", constants.TableLabel,
		columns(constants.FieldName, constants.FieldColor, constants.FieldOwnerID))
	res, err := r.db.ExecContext(ctx, query, l.Name, l.Color, l.Owner)
	if err != nil {
		return dbError("create label", resourceLabel, constants.FieldName, l.Name, err)
	}
	if l.ID, err = res.LastInsertId(); err != nil {
		return appErrors.NewDatabaseError("create label", err)
	}
	return nil
}

// GetForOwner retrieves a label owned by ownerID. Labels of other users are
// reported as not found.
func (r *LabelRepository) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Label, error) {
	var l models.Label
	query := labelSelect(fmt.Sprintf("WHERE %s = ? AND %s = ?", constants.FieldID, constants.FieldOwnerID))
	if err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(&l.ID, &l.Name, &l.Color, &l.Owner); err != nil {
		return nil, rowError("get label", resourceLabel, id, err)
	}
	return &l, nil
}

// ListByOwner returns the labels of one user ordered by name
func (r *LabelRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Label, error) {
	query := labelSelect(fmt.Sprintf("WHERE %s = ? ORDER BY %s, %s", constants.FieldOwnerID, constants.FieldName, constants.FieldID))
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list labels", err)
	}
	defer rows.Close()

	labels := make([]*models.Label, 0)
	for rows.Next() {
		var l models.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.Owner); err != nil {
			return nil, appErrors.NewDatabaseError("list labels", err)
		}
		labels = append(labels, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list labels", err)
	}
	return labels, nil
}

// Update writes name and color of a label owned by l.Owner
func (r *LabelRepository) Update(ctx context.Context, l *models.Label) error {
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? AND %s = ?", constants.TableLabel,
		setClause(constants.FieldName, constants.FieldColor), constants.FieldID, constants.FieldOwnerID)
	res, err := r.db.ExecContext(ctx, query, l.Name, l.Color, l.ID, l.Owner)
	if err != nil {
		return dbError("update label", resourceLabel, constants.FieldName, l.Name, err)
	}
	return affectedOrNotFound(res, "update label", resourceLabel, l.ID)
}

// DeleteForOwner removes a label owned by ownerID
func (r *LabelRepository) DeleteForOwner(ctx context.Context, id, ownerID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?", constants.TableLabel, constants.FieldID, constants.FieldOwnerID)
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return appErrors.NewDatabaseError("delete label", err)
	}
	return affectedOrNotFound(res, "delete label", resourceLabel, id)
}
