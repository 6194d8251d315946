package persistence

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelRepository_OwnerScoped(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLabelRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, color, owner_id FROM labels WHERE id = ? AND owner_id = ?")).
		WithArgs(int64(4), int64(2)).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetForOwner(context.Background(), 4, 2)
	assert.True(t, appErrors.IsNotFound(err))

	mock.ExpectQuery(regexp.QuoteMeta("WHERE owner_id = ? ORDER BY name, id")).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "color", "owner_id"}).AddRow(4, "Hot", "#ff0000", 1))
	labels, err := repo.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Equal(t, int64(1), labels[0].Owner)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLabelRepository_CreateDuplicateName(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLabelRepository(db)

	mock.ExpectExec("INSERT INTO labels").WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Hot'"})

	err := repo.Create(context.Background(), &models.Label{Name: "Hot", Color: "#ffffff", Owner: 1})
	require.Error(t, err)
	assert.True(t, appErrors.IsConflict(err))
	assert.Contains(t, err.Error(), "name='Hot'")
}

func TestLabelRepository_DeleteForOwner(t *testing.T) {
	db, mock := newMock(t)
	repo := NewLabelRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM labels WHERE id = ? AND owner_id = ?")).
		WithArgs(int64(4), int64(9)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, appErrors.IsNotFound(repo.DeleteForOwner(context.Background(), 4, 9)))
}
