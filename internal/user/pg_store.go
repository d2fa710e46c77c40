package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserStore defines the persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string, role Role) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// PgStore implements UserStore using PostgreSQL.
type PgStore struct {
	db *pgxpool.Pool
}

func NewPgStore(dbp *pgxpool.Pool) *PgStore {
	return &PgStore{db: dbp}
}

const userColumns = `id, email, password_hash, role::text, created_at, updated_at`

// Create inserts a user. Returns ErrUserAlreadyExists if the email is taken and ErrInvalidUser
// if a column constraint rejects the values.
func (p *PgStore) Create(ctx context.Context, email, passwordHash string, role Role) (*User, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO "user" (email, password_hash, role) VALUES ($1, $2, $3::user_role) RETURNING `+userColumns,
		email, passwordHash, string(role))
	u, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return nil, ErrUserAlreadyExists
			case pgerrcode.CheckViolation, pgerrcode.StringDataRightTruncationDataException:
				return nil, fmt.Errorf("%w: %s", ErrInvalidUser, pgErr.Message)
			}
		}
		return nil, fmt.Errorf("%w: failed to create user: %v", ErrUnavailable, err)
	}
	return u, nil
}

// FindByEmail returns ErrUserNotFound if no user has the given email.
func (p *PgStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := p.db.QueryRow(ctx, `SELECT `+userColumns+` FROM "user" WHERE email = $1`, email)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: failed to find user by email: %v", ErrUnavailable, err)
	}
	return u, nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	var role string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	u.Role = Role(role)
	return &u, nil
}
