package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
)

const resourceTemplate = "Template"

var templateColumns = []string{
	constants.FieldID, constants.FieldName, constants.FieldLabelID, constants.FieldContent,
	constants.FieldOwnerID, constants.FieldCreatedAt, constants.FieldUpdatedAt,
}

type TemplateRepository struct {
	db Querier
}

func NewTemplateRepository(db Querier) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func scanTemplate(s rowScanner) (*models.Template, error) {
	var t models.Template
	var label sql.NullInt64
	if err := s.Scan(&t.ID, &t.Name, &label, &t.Content, &t.Owner, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Label = int64Ptr(label)
	return &t, nil
}

// Create inserts a template
func (r *TemplateRepository) Create(ctx context.Context, t *models.Template) error {
	now := time.Now().UTC().Truncate(time.Second)
	t.CreatedAt, t.UpdatedAt = now, now

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", constants.TableTemplate,
		columns(templateColumns[1:]...), placeholders(len(templateColumns)-1))
	res, err := r.db.ExecContext(ctx, query, t.Name, nullInt64(t.Label), t.Content, t.Owner, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return dbError("create template", resourceTemplate, constants.FieldLabelID, "", err)
	}
	if t.ID, err = res.LastInsertId(); err != nil {
		return appErrors.NewDatabaseError("create template", err)
	}
	return nil
}

// GetForOwner retrieves a template owned by ownerID
func (r *TemplateRepository) GetForOwner(ctx context.Context, id, ownerID int64) (*models.Template, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? AND %s = ?", columns(templateColumns...),
		constants.TableTemplate, constants.FieldID, constants.FieldOwnerID)
	t, err := scanTemplate(r.db.QueryRowContext(ctx, query, id, ownerID))
	if err != nil {
		return nil, rowError("get template", resourceTemplate, id, err)
	}
	return t, nil
}

// ListByOwner returns the templates of one user, newest first
func (r *TemplateRepository) ListByOwner(ctx context.Context, ownerID int64) ([]*models.Template, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ? ORDER BY %s DESC, %s DESC", columns(templateColumns...),
		constants.TableTemplate, constants.FieldOwnerID, constants.FieldCreatedAt, constants.FieldID)
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list templates", err)
	}
	defer rows.Close()

	templates := make([]*models.Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, appErrors.NewDatabaseError("list templates", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list templates", err)
	}
	return templates, nil
}

// Update writes name, label and content of a template owned by t.Owner
func (r *TemplateRepository) Update(ctx context.Context, t *models.Template) error {
	t.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ? AND %s = ?", constants.TableTemplate,
		setClause(constants.FieldName, constants.FieldLabelID, constants.FieldContent, constants.FieldUpdatedAt),
		constants.FieldID, constants.FieldOwnerID)
	res, err := r.db.ExecContext(ctx, query, t.Name, nullInt64(t.Label), t.Content, t.UpdatedAt, t.ID, t.Owner)
	if err != nil {
		return dbError("update template", resourceTemplate, constants.FieldLabelID, "", err)
	}
	return affectedOrNotFound(res, "update template", resourceTemplate, t.ID)
}

// DeleteForOwner removes a template owned by ownerID
func (r *TemplateRepository) DeleteForOwner(ctx context.Context, id, ownerID int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?", constants.TableTemplate, constants.FieldID, constants.FieldOwnerID)
	res, err := r.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return appErrors.NewDatabaseError("delete template", err)
	}
	return affectedOrNotFound(res, "delete template", resourceTemplate, id)
}
