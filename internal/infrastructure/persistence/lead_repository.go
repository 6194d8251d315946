package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
)

const resourceLead = "Lead"

// leadWriteColumns are the columns written on insert and update
var leadWriteColumns = []string{
	constants.FieldName, constants.FieldEmail, constants.FieldProfileURL, constants.FieldSource,
	constants.FieldStatus, constants.FieldIsArchived, constants.FieldOwnerID, constants.FieldCampaignID,
	constants.FieldNotes,
}

type LeadRepository struct {
	db *sql.DB
	tx *TransactionManager
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db, tx: NewTransactionManager(db)}
}

func leadSelect() string {
	return fmt.Sprintf(`SELECT l.%s, l.%s, l.%s, l.%s, l.%s, l.%s, l.%s, l.%s, u.%s, l.%s, l.%s, l.%s, l.%s
		FROM %s l JOIN %s u ON u.%s = l.%s`,
		constants.FieldID, constants.FieldName, constants.FieldEmail, constants.FieldProfileURL, constants.FieldSource,
		constants.FieldStatus, constants.FieldIsArchived, constants.FieldOwnerID, constants.FieldUsername,
		constants.FieldCampaignID, constants.FieldNotes, constants.FieldCreatedAt, constants.FieldUpdatedAt,
		constants.TableLead, constants.TableUser, constants.FieldID, constants.FieldOwnerID)
}

func scanLead(s rowScanner) (*models.Lead, error) {
	var l models.Lead
	var campaign sql.NullInt64
	var notes sql.NullString
	if err := s.Scan(&l.ID, &l.Name, &l.Email, &l.ProfileURL, &l.Source, &l.Status, &l.IsArchived,
		&l.Owner, &l.OwnerUsername, &campaign, &notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.Campaign = int64Ptr(campaign)
	l.Notes = notes.String
	l.Tags = []int64{}
	return &l, nil
}

func leadArgs(l *models.Lead) []interface{} {
	return []interface{}{l.Name, l.Email, l.ProfileURL, l.Source, string(l.Status), l.IsArchived, l.Owner,
		nullInt64(l.Campaign), l.Notes}
}

// Create inserts a lead with its tags in one transaction
func (r *LeadRepository) Create(ctx context.Context, l *models.Lead) error {
	now := time.Now().UTC().Truncate(time.Second)
	l.CreatedAt, l.UpdatedAt = now, now

	return r.tx.WithRetry(ctx, func(tx *sql.Tx) error {
		cols := append(append([]string{}, leadWriteColumns...), constants.FieldCreatedAt, constants.FieldUpdatedAt)
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", constants.TableLead, columns(cols...), placeholders(len(cols)))
		args := append(leadArgs(l), l.CreatedAt, l.UpdatedAt)

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return dbError("create lead", resourceLead, constants.FieldEmail, l.Email, err)
		}
		if l.ID, err = res.LastInsertId(); err != nil {
			return appErrors.NewDatabaseError("create lead", err)
		}
		return insertLeadTags(ctx, tx, l.ID, l.Tags)
	}, 3)
}

// GetByID retrieves a lead with its owner username and tag IDs
func (r *LeadRepository) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	query := fmt.Sprintf("%s WHERE l.%s = ?", leadSelect(), constants.FieldID)
	l, err := scanLead(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, rowError("get lead", resourceLead, id, err)
	}
	if err := r.loadTags(ctx, []*models.Lead{l}); err != nil {
		return nil, err
	}
	return l, nil
}

// List returns leads matching filter, newest first
func (r *LeadRepository) List(ctx context.Context, filter models.LeadFilter) ([]*models.Lead, error) {
	var where []string
	var args []interface{}

	if filter.Status != "" {
		where = append(where, fmt.Sprintf("l.%s = ?", constants.FieldStatus))
		args = append(args, filter.Status)
	}
	if filter.CampaignID != nil {
		where = append(where, fmt.Sprintf("l.%s = ?", constants.FieldCampaignID))
		args = append(args, *filter.CampaignID)
	}
	if filter.OwnerID != nil {
		where = append(where, fmt.Sprintf("l.%s = ?", constants.FieldOwnerID))
		args = append(args, *filter.OwnerID)
	}
	if filter.Archived != nil {
		where = append(where, fmt.Sprintf("l.%s = ?", constants.FieldIsArchived))
		args = append(args, *filter.Archived)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		where = append(where, fmt.Sprintf("(l.%s LIKE ? OR l.%s LIKE ? OR l.%s LIKE ?)",
			constants.FieldName, constants.FieldEmail, constants.FieldNotes))
		pattern := "%" + escapeLike(s) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	query := leadSelect()
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY l.%s DESC, l.%s DESC", constants.FieldCreatedAt, constants.FieldID)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, appErrors.NewDatabaseError("list leads", err)
	}
	defer rows.Close()

	leads := make([]*models.Lead, 0)
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, appErrors.NewDatabaseError("list leads", err)
		}
		leads = append(leads, l)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError("list leads", err)
	}

	if err := r.loadTags(ctx, leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// Update writes every mutable column. When replaceTags is set the lead's tag
// set is replaced by l.Tags.
func (r *LeadRepository) Update(ctx context.Context, l *models.Lead, replaceTags bool) error {
	l.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	return r.tx.WithRetry(ctx, func(tx *sql.Tx) error {
		cols := append(append([]string{}, leadWriteColumns...), constants.FieldUpdatedAt)
		query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", constants.TableLead, setClause(cols...), constants.FieldID)
		args := append(leadArgs(l), l.UpdatedAt, l.ID)

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return dbError("update lead", resourceLead, constants.FieldEmail, l.Email, err)
		}
		if err := affectedOrNotFound(res, "update lead", resourceLead, l.ID); err != nil {
			return err
		}
		if !replaceTags {
			return nil
		}

		del := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableLeadTag, constants.FieldLeadID)
		if _, err := tx.ExecContext(ctx, del, l.ID); err != nil {
			return appErrors.NewDatabaseError("replace lead tags", err)
		}
		return insertLeadTags(ctx, tx, l.ID, l.Tags)
	}, 3)
}

// Delete removes a lead; its tag links cascade
func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", constants.TableLead, constants.FieldID)
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return appErrors.NewDatabaseError("delete lead", err)
	}
	return affectedOrNotFound(res, "delete lead", resourceLead, id)
}

func insertLeadTags(ctx context.Context, tx *sql.Tx, leadID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}
	values := make([]string, len(tagIDs))
	args := make([]interface{}, 0, len(tagIDs)*2)
	for i, tagID := range tagIDs {
		values[i] = "(?, ?)"
		args = append(args, leadID, tagID)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES %s", constants.TableLeadTag,
		constants.FieldLeadID, constants.FieldTagID, strings.Join(values, ", "))
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return dbError("link lead tags", resourceTag, "tags", "", err)
	}
	return nil
}

func (r *LeadRepository) loadTags(ctx context.Context, leads []*models.Lead) error {
	if len(leads) == 0 {
		return nil
	}
	byID := make(map[int64]*models.Lead, len(leads))
	args := make([]interface{}, len(leads))
	for i, l := range leads {
		byID[l.ID] = l
		args[i] = l.ID
	}

	query := fmt.Sprintf("SELECT %s, %s FROM %s WHERE %s IN (%s) ORDER BY %s, %s",
		constants.FieldLeadID, constants.FieldTagID, constants.TableLeadTag, constants.FieldLeadID,
		placeholders(len(leads)), constants.FieldLeadID, constants.FieldTagID)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return appErrors.NewDatabaseError("load lead tags", err)
	}
	defer rows.Close()

	for rows.Next() {
		var leadID, tagID int64
		if err := rows.Scan(&leadID, &tagID); err != nil {
			return appErrors.NewDatabaseError("load lead tags", err)
		}
		if l, ok := byID[leadID]; ok {
			l.Tags = append(l.Tags, tagID)
		}
	}
	if err := rows.Err(); err != nil {
		return appErrors.NewDatabaseError("load lead tags", err)
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
