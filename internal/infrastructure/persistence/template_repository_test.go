package persistence

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRepository_CreateAndGet(t *testing.T) {
	db, mock := newMock(t)
	repo := NewTemplateRepository(db)

	label := int64(3)
	tpl := &models.Template{Name: "Welcome", Label: &label, Content: "Hi {name}", Owner: 1}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO templates (name, label_id, content, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)")).
		WithArgs("Welcome", int64(3), "Hi {name}", int64(1), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))
	require.NoError(t, repo.Create(context.Background(), tpl))
	assert.Equal(t, int64(12), tpl.ID)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM templates WHERE id = ? AND owner_id = ?")).WithArgs(int64(12), int64(1)).
		WillReturnRows(sqlmock.NewRows(templateColumns).AddRow(12, "Welcome", nil, "Hi {name}", 1, now, now))
	got, err := repo.GetForOwner(context.Background(), 12, 1)
	require.NoError(t, err)
	assert.Nil(t, got.Label)
	assert.Equal(t, "Hi {name}", got.Content)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTemplateRepository_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewTemplateRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE templates SET name = ?, label_id = ?, content = ?, updated_at = ? WHERE id = ? AND owner_id = ?")).
		WithArgs("Follow up", nil, "Body", sqlmock.AnyArg(), int64(5), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), &models.Template{ID: 5, Name: "Follow up", Content: "Body", Owner: 2}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
