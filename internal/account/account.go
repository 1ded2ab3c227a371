package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vezisop/velocity-v1-backend/internal/db"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrResolutionConflict is returned when a placeholder account cannot be
// created because its synthesized handle or email collides with an existing
// account.
var ErrResolutionConflict = errors.New("account resolution conflict")

type Account struct {
	ID           int64     `json:"id"`
	Handle       string    `json:"handle"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

const uniqueViolation = "23505"

// Resolve returns the id of the account with the given id, creating a
// placeholder account on first reference. The no-op DO UPDATE makes the
// insert return a row whether or not the account existed, so concurrent
// first-time submissions for the same id cannot create two accounts.
func Resolve(ctx context.Context, q db.Querier, id int64) (int64, error) {
	var resolved int64
	err := q.QueryRow(ctx, `
		INSERT INTO accounts (id, handle, email, display_name)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (id) DO UPDATE SET id = accounts.id
		RETURNING id
	`, id, fmt.Sprintf("user_%d", id), fmt.Sprintf("user%d@velocity.app", id), "Velocity Runner").Scan(&resolved)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, ErrResolutionConflict
		}
		return 0, err
	}
	return resolved, nil
}

// Get loads an account by id.
func Get(ctx context.Context, q db.Querier, id int64) (Account, error) {
	row := q.QueryRow(ctx, `
		SELECT id, handle, email, COALESCE(display_name,''), created_at
		FROM accounts WHERE id=$1
	`, id)
	var a Account
	if err := row.Scan(&a.ID, &a.Handle, &a.Email, &a.DisplayName, &a.CreatedAt); err != nil {
		return Account{}, err
	}
	return a, nil
}
