package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
)

const resourceTag = "Tag"

type TagRepository struct {
	db Querier
}

func NewTagRepository(db Querier) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) selectQuery(where string) string {
	return fmt.Sprintf("SELECT %s FROM %s %s", columns(constants.FieldID, constants.FieldName, constants.FieldColor), constants.TableTag, where)
}

// Create inserts a tag
func (r *TagRepository) Create(ctx context.Context, t *models.Tag) error {
	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)", constants.TableTag, constants.FieldName, constants.FieldColor)
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Color)
	if err != nil {
		return dbError("create tag", resourceTag, constants.FieldName, t.Name, err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return appErrors.NewDatabaseError("create tag", err)
	}
	return nil
}

// GetByID retrieves a tag
func (r *TagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	var t models.Tag
	query := r.selectQuery(fmt.Sprintf("WHERE %s = ?", constants.FieldID))
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.Color); err != nil {
		return nil, rowError("get tag", resourceTag, id, err)
	}
	return &t, nil
}

// GetByName retrieves the first tag with an exact name
func (r *TagRepository) GetByName(ctx context.Context, name string) (*models.Tag, error) {
	var t models.Tag
	query := r.selectQuery(fmt.Sprintf("WHERE %s = ? ORDER BY %s LIMIT 1", constants.FieldName, constants.FieldID))
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&t.ID, &t.Name, &t.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFoundError(resourceTag, name)
		}
		return nil, appErrors.NewDatabaseError("get tag by name", err)
	}
	return &t, nil
}

// List returns all tags ordered by ID
func (r *TagRepository) List(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.QueryContext(ctx, r.selectQuery(fmt.Sprintf("ORDER BY %s", constants.FieldID)))
	if err != nil {
		return nil, appErrors.NewDatabaseError("list tags", err)
	}
	defer rows.Close()

	tags := make([]*models.Tag, 0)
	for rows.Next() {
		var t models.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color); err != nil {
			return nil, appErrors.NewDatabaseError("list tags", err)
		}
		tags = append(tags, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list tags", err)
	}
	return tags, nil
}

// Update writes name and color
func (r *TagRepository) Update(ctx context.Context, t *models.Tag) error {
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", constants.TableTag,
		setClause(constants.FieldName, constants.FieldColor), constants.FieldID)
	res, err := r.db.ExecContext(ctx, query, t.Name, t.Color, t.ID)
	if err != nil {
		return dbError("update tag", resourceTag, constants.FieldName, t.Name, err)
	}
	return affectedOrNotFound(res, "update tag", resourceTag, t.ID)
}

// Delete removes a tag and its lead associations (ON DELETE CASCADE)
func (r *TagRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableTag, constants.FieldID)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return appErrors.NewDatabaseError("delete tag", err)
	}
	return affectedOrNotFound(res, "delete tag", resourceTag, id)
}

// CountByIDs returns how many of ids exist
func (r *TagRepository) CountByIDs(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IN (%s)", constants.TableTag, constants.FieldID, placeholders(len(ids)))
	var n int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, appErrors.NewDatabaseError("count tags", err)
	}
	return n, nil
}
