package model

import (
	"time"

	"github.com/cheickthiam/portfolio/internal/validation"
)

type Experience struct {
	ID               string     `db:"id" bson:"_id" json:"_id"`
	Title            string     `db:"title" bson:"title" json:"title"`
	Company          string     `db:"company" bson:"company" json:"company"`
	Year             string     `db:"year" bson:"year" json:"year"`
	Description      string     `db:"description" bson:"description" json:"description"`
	Responsibilities StringList `db:"responsibilities" bson:"responsibilities" json:"responsibilities"`
	Tags             StringList `db:"tags" bson:"tags" json:"tags"`
	Order            int        `db:"sort_order" bson:"order" json:"order"`
	IsVisible        bool       `db:"is_visible" bson:"isVisible" json:"isVisible"`
	CreatedAt        time.Time  `db:"created_at" bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time  `db:"updated_at" bson:"updatedAt" json:"updatedAt"`
}

// NewExperience returns an experience with schema defaults applied.
func NewExperience() *Experience {
	return &Experience{IsVisible: true}
}

type ExperiencePatch struct {
	Title            *string     `json:"title"`
	Company          *string     `json:"company"`
	Year             *string     `json:"year"`
	Description      *string     `json:"description"`
	Responsibilities *StringList `json:"responsibilities"`
	Tags             *StringList `json:"tags"`
	Order            *int        `json:"order"`
	IsVisible        *bool       `json:"isVisible"`
}

func (p ExperiencePatch) Apply(e *Experience) {
	setString(&e.Title, p.Title)
	setString(&e.Company, p.Company)
	setString(&e.Year, p.Year)
	setString(&e.Description, p.Description)
	setList(&e.Responsibilities, p.Responsibilities)
	setList(&e.Tags, p.Tags)
	if p.Order != nil {
		e.Order = *p.Order
	}
	if p.IsVisible != nil {
		e.IsVisible = *p.IsVisible
	}
}

func (e *Experience) Validate() error {
	err := validation.Required(
		"title", e.Title,
		"company", e.Company,
		"year", e.Year,
		"description", e.Description,
	)
	if err != nil {
		return err
	}
	return validation.MaxLength("title", e.Title, 200)
}
