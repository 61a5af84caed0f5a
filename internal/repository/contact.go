package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	ByID(ctx context.Context, id string) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
	SetRead(ctx context.Context, id string, read bool) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	db *sqlx.DB
}

const contactColumns = `id, name, email, subject, message, is_read, created_at, updated_at`

func (r *contactRepository) Create(ctx context.Context, c *model.Contact) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	query := `INSERT INTO contacts (` + contactColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Email, c.Subject, c.Message, c.IsRead, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *contactRepository) ByID(ctx context.Context, id string) (*model.Contact, error) {
	c := &model.Contact{}
	err := r.db.GetContext(ctx, c, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrContactNotFound
	}
	return c, err
}

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	contacts := []*model.Contact{}
	err := r.db.SelectContext(ctx, &contacts, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC`)
	return contacts, err
}

func (r *contactRepository) SetRead(ctx context.Context, id string, read bool) (*model.Contact, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE contacts SET is_read = $1, updated_at = $2 WHERE id = $3`, read, now(), id)
	if err != nil {
		return nil, err
	}
	err = expectRow(result, ErrContactNotFound)
	if err != nil {
		return nil, err
	}
	return r.ByID(ctx, id)
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrContactNotFound)
}
