package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/ldanie38/geniuscrm/pkg/constants"
	appErrors "github.com/ldanie38/geniuscrm/pkg/errors"
)

const resourceUser = "User"

var userColumns = []string{
	constants.FieldID, constants.FieldUsername, constants.FieldEmail, constants.FieldPassword,
	constants.FieldFirstName, constants.FieldLastName, constants.FieldIsActive, constants.FieldIsStaff,
	constants.FieldDateJoined, constants.FieldLastLogin,
}

type UserRepository struct {
	db Querier
}

func NewUserRepository(db Querier) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(s rowScanner) (*models.User, error) {
	var u models.User
	var lastLogin sql.NullTime
	if err := s.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName,
		&u.IsActive, &u.IsStaff, &u.DateJoined, &lastLogin); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return &u, nil
}

// Create inserts a user and sets its ID and DateJoined
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.DateJoined.IsZero() {
		u.DateJoined = time.Now().UTC().Truncate(time.Second)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", constants.TableUser,
		columns(constants.FieldUsername, constants.FieldEmail, constants.FieldPassword, constants.FieldFirstName,
			constants.FieldLastName, constants.FieldIsActive, constants.FieldIsStaff, constants.FieldDateJoined),
		placeholders(8))

	res, err := r.db.ExecContext(ctx, query, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName,
		u.IsActive, u.IsStaff, u.DateJoined)
	if err != nil {
		return dbError("create user", resourceUser, constants.FieldUsername, u.Username, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return appErrors.NewDatabaseError("create user", err)
	}
	u.ID = id
	return nil
}

// GetByID retrieves a user by primary key
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", columns(userColumns...), constants.TableUser, constants.FieldID)
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, rowError("get user", resourceUser, id, err)
	}
	return u, nil
}

// GetByUsername retrieves a user by exact username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?", columns(userColumns...), constants.TableUser, constants.FieldUsername)
	u, err := scanUser(r.db.QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewNotFoundError(resourceUser, username)
		}
		return nil, appErrors.NewDatabaseError("get user by username", err)
	}
	return u, nil
}

// ListByEmail returns every user whose email matches case-insensitively
func (r *UserRepository) ListByEmail(ctx context.Context, email string) ([]*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE LOWER(%s) = LOWER(?) ORDER BY %s",
		columns(userColumns...), constants.TableUser, constants.FieldEmail, constants.FieldID)
	return r.list(ctx, "list users by email", query, email)
}

// List returns all users ordered by ID
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", columns(userColumns...), constants.TableUser, constants.FieldID)
	return r.list(ctx, "list users", query)
}

func (r *UserRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]*models.User, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, appErrors.NewDatabaseError(op, err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, appErrors.NewDatabaseError(op, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.NewDatabaseError(op, err)
	}
	return users, nil
}

// ExistsByUsername reports whether the username is taken
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE %s = ?)", constants.TableUser, constants.FieldUsername)
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, appErrors.NewDatabaseError("check username", err)
	}
	return exists, nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", constants.TableUser, constants.FieldPassword, constants.FieldID)
	res, err := r.db.ExecContext(ctx, query, hash, id)
	if err != nil {
		return appErrors.NewDatabaseError("update password", err)
	}
	return affectedOrNotFound(res, "update password", resourceUser, id)
}

// TouchLastLogin records a successful login
func (r *UserRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", constants.TableUser, constants.FieldLastLogin, constants.FieldID)
	if _, err := r.db.ExecContext(ctx, query, at, id); err != nil {
		return appErrors.NewDatabaseError("update last login", err)
	}
	return nil
}

// SetStaff grants or revokes staff status
func (r *UserRepository) SetStaff(ctx context.Context, id int64, staff bool) error {
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", constants.TableUser, constants.FieldIsStaff, constants.FieldID)
	res, err := r.db.ExecContext(ctx, query, staff, id)
	if err != nil {
		return appErrors.NewDatabaseError("update staff flag", err)
	}
	return affectedOrNotFound(res, "update staff flag", resourceUser, id)
}
