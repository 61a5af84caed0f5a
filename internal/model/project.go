package model

import (
	"time"

	"github.com/cheickthiam/portfolio/internal/validation"
)

type Project struct {
	ID          string     `db:"id" bson:"_id" json:"_id"`
	Title       string     `db:"title" bson:"title" json:"title"`
	Description string     `db:"description" bson:"description" json:"description"`
	Tech        StringList `db:"tech" bson:"tech" json:"tech"`
	CoverURL    string     `db:"cover_url" bson:"cover_url" json:"cover_url"`
	ProjectURL  string     `db:"project_url" bson:"project_url" json:"project_url"`
	CreatedAt   time.Time  `db:"created_at" bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `db:"updated_at" bson:"updatedAt" json:"updatedAt"`
}

type ProjectPatch struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Tech        *StringList `json:"tech"`
	CoverURL    *string     `json:"cover_url"`
	ProjectURL  *string     `json:"project_url"`
}

func (p ProjectPatch) Apply(pr *Project) {
	setString(&pr.Title, p.Title)
	setString(&pr.Description, p.Description)
	setList(&pr.Tech, p.Tech)
	setString(&pr.CoverURL, p.CoverURL)
	setString(&pr.ProjectURL, p.ProjectURL)
}

func (pr *Project) Validate() error {
	err := validation.Required("title", pr.Title)
	if err != nil {
		return err
	}
	return validation.MaxLength("title", pr.Title, 200)
}
