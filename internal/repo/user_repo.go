package repo

import (
	"context"

	dom "Bookmarker/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserPatch is a sparse update: nil fields keep their stored value.
type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, email, hash string) (dom.User, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	UpdateByID(ctx context.Context, id int64, patch UserPatch) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, email, hash string) (dom.User, error) {
	query := `
		INSERT INTO users (email, hash)
		VALUES ($1, $2)
		RETURNING id, email, hash, first_name, last_name, created_at, updated_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, email, hash).Scan(
		&u.ID, &u.Email, &u.Hash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// GetByEmail returns the user by email. Emails compare case-sensitively.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, hash, first_name, last_name, created_at, updated_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Hash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID returns the user by ID.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, email, hash, first_name, last_name, created_at, updated_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Hash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UpdateByID applies the patch in a single statement; omitted fields stay as
// stored, so concurrent edits never see a half-applied merge. pgx.ErrNoRows
// means the id does not exist.
func (r *PGUserRepo) UpdateByID(ctx context.Context, id int64, patch UserPatch) (dom.User, error) {
	query := `
		UPDATE users SET
			email = COALESCE($2, email),
			first_name = COALESCE($3, first_name),
			last_name = COALESCE($4, last_name),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, email, hash, first_name, last_name, created_at, updated_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, id, patch.Email, patch.FirstName, patch.LastName).Scan(
		&u.ID, &u.Email, &u.Hash, &u.FirstName, &u.LastName, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}
