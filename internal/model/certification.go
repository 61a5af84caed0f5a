package model

import (
	"time"

	"github.com/cheickthiam/portfolio/internal/validation"
)

type Certification struct {
	ID          string `db:"id" bson:"_id" json:"_id"`
	Title       string `db:"title" bson:"title" json:"title"`
	Issuer      string `db:"issuer" bson:"issuer" json:"issuer"`
	Date        string `db:"date" bson:"date" json:"date"`
	Description string `db:"description" bson:"description" json:"description"`
	// FilePath is the object key in the private bucket, never a URL.
	FilePath   string     `db:"file_path" bson:"file_path" json:"file_path"`
	CoverImage string     `db:"cover_image" bson:"cover_image" json:"cover_image"`
	Tags       StringList `db:"tags" bson:"tags" json:"tags"`
	CreatedAt  time.Time  `db:"created_at" bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time  `db:"updated_at" bson:"updatedAt" json:"updatedAt"`
}

// CertificationPatch has no FilePath: the document reference is only
// ever set by an upload.
type CertificationPatch struct {
	Title       *string     `json:"title"`
	Issuer      *string     `json:"issuer"`
	Date        *string     `json:"date"`
	Description *string     `json:"description"`
	CoverImage  *string     `json:"cover_image"`
	Tags        *StringList `json:"tags"`
}

func (p CertificationPatch) Apply(c *Certification) {
	setString(&c.Title, p.Title)
	setString(&c.Issuer, p.Issuer)
	setString(&c.Date, p.Date)
	setString(&c.Description, p.Description)
	setString(&c.CoverImage, p.CoverImage)
	setList(&c.Tags, p.Tags)
}

func (c *Certification) Validate() error {
	err := validation.Required("title", c.Title)
	if err != nil {
		return err
	}
	return validation.MaxLength("title", c.Title, 200)
}
