package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userRow(id int64, username, email string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, username, email, "$2a$10$hash", "First", "Last", true, false, time.Now(), nil)
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)", constants.TableUser, constants.FieldUsername)

	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("alice").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	assert.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta(query)).WithArgs("nobody").WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	exists, err = repo.ExistsByUsername(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (username, email, password, first_name, last_name, is_active, is_staff, date_joined)")).
		WithArgs("alice", "alice@example.com", "hash", "", "", true, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	u := &models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hash", IsActive: true}
	require.NoError(t, repo.Create(context.Background(), u))
	assert.Equal(t, int64(11), u.ID)
	assert.False(t, u.DateJoined.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'uq_users_username'"})

	err := repo.Create(context.Background(), &models.User{Username: "alice"})
	assert.True(t, appErrors.IsConflict(err))
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).WithArgs(int64(3)).
		WillReturnRows(userRow(3, "carol", "carol@example.com"))

	u, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "carol", u.Username)
	assert.Equal(t, "$2a$10$hash", u.PasswordHash)
	assert.Nil(t, u.LastLogin)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByID(context.Background(), 99)
	assert.True(t, appErrors.IsNotFound(err))

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = ?")).WithArgs(int64(5)).
		WillReturnError(sql.ErrConnDone)
	_, err = repo.GetByID(context.Background(), 5)
	assert.True(t, appErrors.IsDatabase(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListByEmail(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, "a", "Shared@Example.com", "h", "", "", true, false, time.Now(), time.Now()).
		AddRow(2, "b", "shared@example.com", "", "", "", true, false, time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE LOWER(email) = LOWER(?)")).WithArgs("SHARED@example.com").WillReturnRows(rows)

	users, err := repo.ListByEmail(context.Background(), "SHARED@example.com")
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.NotNil(t, users[0].LastLogin)
	assert.False(t, users[1].HasUsablePassword())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", constants.TableUser, constants.FieldPassword, constants.FieldID)
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("newhash", int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.UpdatePassword(context.Background(), 4, "newhash"))

	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs("newhash", int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdatePassword(context.Background(), 404, "newhash")
	assert.True(t, appErrors.IsNotFound(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_SetStaff(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", constants.TableUser, constants.FieldIsStaff, constants.FieldID)
	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(true, int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.SetStaff(context.Background(), 2, true))

	mock.ExpectExec(regexp.QuoteMeta(query)).WithArgs(false, int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.True(t, appErrors.IsNotFound(repo.SetStaff(context.Background(), 404, false)))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_TouchLastLogin(t *testing.T) {
	db, mock := newMock(t)
	repo := NewUserRepository(db)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET last_login = ? WHERE id = ?")).
		WithArgs(at, int64(2)).WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.TouchLastLogin(context.Background(), 2, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
