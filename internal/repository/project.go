package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	ByID(ctx context.Context, id string) (*model.Project, error)
	List(ctx context.Context) ([]*model.Project, error)
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type projectRepository struct {
	db *sqlx.DB
}

const projectColumns = `id, title, description, tech, cover_url, project_url, created_at, updated_at`

func (r *projectRepository) Create(ctx context.Context, p *model.Project) error {
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	query := `INSERT INTO projects (` + projectColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.Title, p.Description, p.Tech, p.CoverURL, p.ProjectURL, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *projectRepository) ByID(ctx context.Context, id string) (*model.Project, error) {
	p := &model.Project{}
	err := r.db.GetContext(ctx, p, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	return p, err
}

func (r *projectRepository) List(ctx context.Context) ([]*model.Project, error) {
	projects := []*model.Project{}
	err := r.db.SelectContext(ctx, &projects, `SELECT `+projectColumns+` FROM projects ORDER BY created_at DESC`)
	return projects, err
}

func (r *projectRepository) Update(ctx context.Context, p *model.Project) error {
	p.UpdatedAt = now()
	result, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET title = $1, description = $2, tech = $3, cover_url = $4, project_url = $5, updated_at = $6
		WHERE id = $7
	`, p.Title, p.Description, p.Tech, p.CoverURL, p.ProjectURL, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return expectRow(result, ErrProjectNotFound)
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectRow(result, ErrProjectNotFound)
}

func (r *projectRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM projects`)
	return err
}
