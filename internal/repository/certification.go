package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
)

type CertificationRepository interface {
	Create(ctx context.Context, certification *model.Certification) error
	ByID(ctx context.Context, id string) (*model.Certification, error)
	List(ctx context.Context) ([]*model.Certification, error)
	Update(ctx context.Context, certification *model.Certification) error
	Delete(ctx context.Context, id string) error
}

type certificationRepository struct {
	db *sqlx.DB
}

const certificationColumns = `id, title, issuer, date, description, file_path, cover_image, tags, created_at, updated_at`

func (r *certificationRepository) Create(ctx context.Context, c *model.Certification) error {
	stamp(&c.ID, &c.CreatedAt, &c.UpdatedAt)

	query := `INSERT INTO certifications (` + certificationColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Title,
		c.Issuer,
		c.Date,
		c.Description,
		c.FilePath,
		c.CoverImage,
		c.Tags,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

func (r *certificationRepository) ByID(ctx context.Context, id string) (*model.Certification, error) {
	c := &model.Certification{}
	err := r.db.GetContext(ctx, c, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCertificationNotFound
	}
	return c, err
}

func (r *certificationRepository) List(ctx context.Context) ([]*model.Certification, error) {
	certifications := []*model.Certification{}
	err := r.db.SelectContext(ctx, &certifications, `SELECT `+certificationColumns+` FROM certifications ORDER BY created_at DESC`)
	return certifications, err
}

func (r *certificationRepository) Update(ctx context.Context, c *model.Certification) error {
	c.UpdatedAt = now()
	result, err := r.db.ExecContext(ctx, `
		UPDATE certifications
		SET title = $1, issuer = $2, date = $3, description = $4, file_path = $5,
		    cover_image = $6, tags = $7, updated_at = $8
		WHERE id = $9
	`, c.Title, c.Issuer, c.Date, c.Description, c.FilePath, c.CoverImage, c.Tags, c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	return expectRow(result, ErrCertificationNotFound)
}

func (r *certificationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrCertificationNotFound)
}
