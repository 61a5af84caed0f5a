package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
)

type ExperienceRepository interface {
	Create(ctx context.Context, experience *model.Experience) error
	ByID(ctx context.Context, id string) (*model.Experience, error)
	// List returns experiences by order, then creation time. visibleOnly
	// drops hidden entries.
	List(ctx context.Context, visibleOnly bool) ([]*model.Experience, error)
	Update(ctx context.Context, experience *model.Experience) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type experienceRepository struct {
	db *sqlx.DB
}

const experienceColumns = `id, title, company, year, description, responsibilities, tags, sort_order, is_visible, created_at, updated_at`

func (r *experienceRepository) Create(ctx context.Context, e *model.Experience) error {
	stamp(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	query := `INSERT INTO experiences (` + experienceColumns + `)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.Company,
		e.Year,
		e.Description,
		e.Responsibilities,
		e.Tags,
		e.Order,
		e.IsVisible,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

func (r *experienceRepository) ByID(ctx context.Context, id string) (*model.Experience, error) {
	e := &model.Experience{}
	err := r.db.GetContext(ctx, e, `SELECT `+experienceColumns+` FROM experiences WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExperienceNotFound
	}
	return e, err
}

func (r *experienceRepository) List(ctx context.Context, visibleOnly bool) ([]*model.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences`
	var args []any
	if visibleOnly {
		query += ` WHERE is_visible = $1`
		args = append(args, true)
	}
	query += ` ORDER BY sort_order ASC, created_at ASC`

	experiences := []*model.Experience{}
	err := r.db.SelectContext(ctx, &experiences, query, args...)
	return experiences, err
}

func (r *experienceRepository) Update(ctx context.Context, e *model.Experience) error {
	e.UpdatedAt = now()
	result, err := r.db.ExecContext(ctx, `
		UPDATE experiences
		SET title = $1, company = $2, year = $3, description = $4, responsibilities = $5,
		    tags = $6, sort_order = $7, is_visible = $8, updated_at = $9
		WHERE id = $10
	`, e.Title, e.Company, e.Year, e.Description, e.Responsibilities, e.Tags, e.Order, e.IsVisible, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	return expectRow(result, ErrExperienceNotFound)
}

func (r *experienceRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM experiences WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrExperienceNotFound)
}

func (r *experienceRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM experiences`)
	return err
}
