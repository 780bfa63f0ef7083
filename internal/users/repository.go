package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/JaimeStill/chargepoint/pkg/repository"
)

const projection = `id, email, display_name, password_hash, created_at`

// dummyHash is compared against when an email is unknown so both branches
// of Authenticate cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("chargepoint-timing-pad"), bcrypt.DefaultCost)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
	cost   int
}

// New creates a PostgreSQL-backed users System hashing with bcrypt at cost.
// A cost of zero uses bcrypt.DefaultCost.
func New(db *sql.DB, logger *slog.Logger, cost int) System {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &repo{
		db:     db,
		logger: logger.With("system", "users"),
		cost:   cost,
	}
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
	cmd.Normalize()
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := HashPassword(cmd.Password, r.cost)
	if err != nil {
		return nil, err
	}

	q := `
		INSERT INTO users (email, display_name, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + projection

	u, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		return repository.QueryOne(ctx, tx, q, []any{cmd.Email, cmd.DisplayName, hash}, scanUser)
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", u.ID)
	return &u, nil
}

func (r *repo) Authenticate(ctx context.Context, email, password string) (*User, error) {
	q := `SELECT ` + projection + ` FROM users WHERE email = $1`

	u, err := repository.QueryOne(ctx, r.db, q, []any{NormalizeEmail(email)}, scanUser)
	if errors.Is(err, sql.ErrNoRows) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}

	if err := CheckPassword(u.PasswordHash, password); err != nil {
		r.logger.Warn("authentication failed", "id", u.ID)
		return nil, err
	}
	return &u, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	q := `SELECT ` + projection + ` FROM users WHERE id = $1`

	u, err := repository.QueryOne(ctx, r.db, q, []any{id}, scanUser)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &u, nil
}

func scanUser(s repository.Scanner) (User, error) {
	var u User
	err := s.Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
