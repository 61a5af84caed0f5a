package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/jmoiron/sqlx"
)

// ProfileRepository stores the single site profile.
type ProfileRepository interface {
	Get(ctx context.Context) (*model.Profile, error)
	// GetOrCreate returns the stored profile, inserting defaults first when
	// none exists. Concurrent callers all observe the same record.
	GetOrCreate(ctx context.Context, defaults *model.Profile) (*model.Profile, error)
	// Update writes the text fields, typing texts and social links. Asset
	// URLs are left untouched.
	Update(ctx context.Context, profile *model.Profile) error
	// SetAsset writes a single asset URL and returns the updated profile.
	SetAsset(ctx context.Context, asset model.ProfileAsset, url string) (*model.Profile, error)
}

type profileRepository struct {
	db *sqlx.DB
}

const profileColumns = `id, name, title, bio, email, phone, location, profile_image_url, cv_url, typing_texts, social_links, created_at, updated_at`

func (r *profileRepository) Get(ctx context.Context) (*model.Profile, error) {
	profile := &model.Profile{}
	err := r.db.GetContext(ctx, profile, `SELECT `+profileColumns+` FROM profiles WHERE singleton = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	return profile, err
}

func (r *profileRepository) GetOrCreate(ctx context.Context, defaults *model.Profile) (*model.Profile, error) {
	profile, err := r.Get(ctx)
	if !errors.Is(err, ErrProfileNotFound) {
		return profile, err
	}

	p := *defaults
	p.ID = ""
	stamp(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (`+profileColumns+`, singleton)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 1)
		ON CONFLICT (singleton) DO NOTHING
	`, p.ID, p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.ProfileImageURL, p.CVURL, p.TypingTexts, p.SocialLinks, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func (r *profileRepository) Update(ctx context.Context, p *model.Profile) error {
	p.UpdatedAt = now()
	result, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET name = $1, title = $2, bio = $3, email = $4, phone = $5, location = $6,
		    typing_texts = $7, social_links = $8, updated_at = $9
		WHERE id = $10
	`, p.Name, p.Title, p.Bio, p.Email, p.Phone, p.Location, p.TypingTexts, p.SocialLinks, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return expectRow(result, ErrProfileNotFound)
}

func (r *profileRepository) SetAsset(ctx context.Context, asset model.ProfileAsset, url string) (*model.Profile, error) {
	var column string
	switch asset {
	case model.ProfileImage:
		column = "profile_image_url"
	case model.ProfileCV:
		column = "cv_url"
	default:
		return nil, fmt.Errorf("unknown profile asset %q", asset)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE profiles SET `+column+` = $1, updated_at = $2 WHERE singleton = 1`,
		url, now(),
	)
	if err != nil {
		return nil, err
	}
	err = expectRow(result, ErrProfileNotFound)
	if err != nil {
		return nil, err
	}
	return r.Get(ctx)
}
