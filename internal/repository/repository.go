package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	ErrAdminNotFound         = errors.New("admin not found")
	ErrDuplicateEmail        = errors.New("email already exists")
	ErrExperienceNotFound    = errors.New("experience not found")
	ErrProjectNotFound       = errors.New("project not found")
	ErrCertificationNotFound = errors.New("certification not found")
	ErrContactNotFound       = errors.New("contact not found")
	ErrProfileNotFound       = errors.New("profile not found")
)

// Set bundles one repository per entity. Both backends satisfy it.
type Set struct {
	Admins         AdminRepository
	Experiences    ExperienceRepository
	Projects       ProjectRepository
	Certifications CertificationRepository
	Contacts       ContactRepository
	Profiles       ProfileRepository
}

// NewSQL returns repositories backed by SQLite or PostgreSQL.
func NewSQL(db *sqlx.DB) *Set {
	return &Set{
		Admins:         &adminRepository{db: db},
		Experiences:    &experienceRepository{db: db},
		Projects:       &projectRepository{db: db},
		Certifications: &certificationRepository{db: db},
		Contacts:       &contactRepository{db: db},
		Profiles:       &profileRepository{db: db},
	}
}

// NewMongo returns repositories backed by MongoDB collections.
func NewMongo(db *mongo.Database) *Set {
	return &Set{
		Admins:         &adminStore{coll: db.Collection("admins")},
		Experiences:    &experienceStore{coll: db.Collection("experiences")},
		Projects:       &projectStore{coll: db.Collection("projects")},
		Certifications: &certificationStore{coll: db.Collection("certifications")},
		Contacts:       &contactStore{coll: db.Collection("contacts")},
		Profiles:       &profileStore{coll: db.Collection("profiles")},
	}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// stamp fills the id and timestamps of a record about to be inserted.
func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.New().String()
	}
	t := now()
	if createdAt.IsZero() {
		*createdAt = t
	}
	if updatedAt.IsZero() {
		*updatedAt = *createdAt
	}
}

// isUniqueViolation works for both SQLite and PostgreSQL.
func isUniqueViolation(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value")
}
