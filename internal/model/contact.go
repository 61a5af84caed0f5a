package model

import (
	"time"

	"github.com/cheickthiam/portfolio/internal/validation"
)

type Contact struct {
	ID        string    `db:"id" bson:"_id" json:"_id"`
	Name      string    `db:"name" bson:"name" json:"name"`
	Email     string    `db:"email" bson:"email" json:"email"`
	Subject   string    `db:"subject" bson:"subject" json:"subject"`
	Message   string    `db:"message" bson:"message" json:"message"`
	IsRead    bool      `db:"is_read" bson:"isRead" json:"isRead"`
	CreatedAt time.Time `db:"created_at" bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" bson:"updatedAt" json:"updatedAt"`
}

// ContactSubmission is the public contact form.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (s *ContactSubmission) Normalize() {
	s.Name = trim(s.Name)
	s.Email = validation.NormalizeEmail(s.Email)
	s.Subject = trim(s.Subject)
	s.Message = trim(s.Message)
}

func (s *ContactSubmission) Validate() error {
	err := validation.Required(
		"name", s.Name,
		"email", s.Email,
		"subject", s.Subject,
		"message", s.Message,
	)
	if err != nil {
		return err
	}
	err = validation.ValidateEmail(s.Email)
	if err != nil {
		return err
	}
	return validation.MaxLength("message", s.Message, 5000)
}
