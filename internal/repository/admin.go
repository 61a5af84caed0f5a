package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	ByID(ctx context.Context, id string) (*model.Admin, error)
	ByEmail(ctx context.Context, email string) (*model.Admin, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, admin *model.Admin) error
}

type adminRepository struct {
	db *sqlx.DB
}

const adminColumns = `id, email, password_hash, name, created_at, updated_at`

func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	stamp(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)

	query := `INSERT INTO admins (` + adminColumns + `) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query, admin.ID, admin.Email, admin.PasswordHash, admin.Name, admin.CreatedAt, admin.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *adminRepository) ByID(ctx context.Context, id string) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.GetContext(ctx, admin, `SELECT `+adminColumns+` FROM admins WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	return admin, err
}

func (r *adminRepository) ByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin := &model.Admin{}
	err := r.db.GetContext(ctx, admin, `SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	return admin, err
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM admins`)
	return n, err
}

func (r *adminRepository) Update(ctx context.Context, admin *model.Admin) error {
	admin.UpdatedAt = now()
	result, err := r.db.ExecContext(ctx, `
		UPDATE admins
		SET email = $1, password_hash = $2, name = $3, updated_at = $4
		WHERE id = $5
	`, admin.Email, admin.PasswordHash, admin.Name, admin.UpdatedAt, admin.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return expectRow(result, ErrAdminNotFound)
}

// expectRow maps a statement that touched nothing to notFound.
func expectRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
