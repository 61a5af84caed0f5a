package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/validation"
)

type ProfileService struct {
	profiles repository.ProfileRepository
	files    *FileService
}

func NewProfileService(profiles repository.ProfileRepository, files *FileService) *ProfileService {
	return &ProfileService{profiles: profiles, files: files}
}

// Get returns the profile, creating it with defaults on first access.
func (s *ProfileService) Get(ctx context.Context) (*model.Profile, error) {
	return s.profiles.GetOrCreate(ctx, model.DefaultProfile())
}

// Update merges patch into the stored profile. Fields absent from patch
// keep their values.
func (s *ProfileService) Update(ctx context.Context, patch model.ProfilePatch) (*model.Profile, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	err = validateProfile(p)
	if err != nil {
		return nil, err
	}

	err = s.profiles.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if patch.ProfileImageURL != nil {
		p, err = s.profiles.SetAsset(ctx, model.ProfileImage, p.ProfileImageURL)
		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	if patch.CVURL != nil {
		p, err = s.profiles.SetAsset(ctx, model.ProfileCV, p.CVURL)
		if err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}
	return p, nil
}

// UploadImage replaces the profile photo.
func (s *ProfileService) UploadImage(ctx context.Context, image *multipart.FileHeader) (*model.Profile, error) {
	if !s.files.Configured() {
		return nil, ErrStorageNotConfigured
	}
	err := validation.ValidateFile(image, validation.ImageConstraints)
	if err != nil {
		return nil, err
	}

	return s.replaceAsset(ctx, FolderProfile, image, model.ProfileImage)
}

// UploadCV replaces the downloadable CV. Only PDFs are accepted.
func (s *ProfileService) UploadCV(ctx context.Context, cv *multipart.FileHeader) (*model.Profile, error) {
	if !s.files.Configured() {
		return nil, ErrStorageNotConfigured
	}
	err := validation.ValidatePDF(cv)
	if err != nil {
		return nil, err
	}

	return s.replaceAsset(ctx, FolderCV, cv, model.ProfileCV)
}

func (s *ProfileService) replaceAsset(ctx context.Context, folder string, header *multipart.FileHeader, asset model.ProfileAsset) (*model.Profile, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	previous := p.ProfileImageURL
	if asset == model.ProfileCV {
		previous = p.CVURL
	}

	url, err := s.files.UploadPublic(ctx, folder, header)
	if err != nil {
		return nil, err
	}

	p, err = s.profiles.SetAsset(ctx, asset, url)
	if err != nil {
		s.files.DeletePublic(ctx, url)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.files.DeletePublic(ctx, previous)
	slog.Info("profile asset updated", "folder", folder, "url", url)
	return p, nil
}

// Repair creates the profile if needed and restores empty required
// fields from the defaults. It reports whether anything changed.
func (s *ProfileService) Repair(ctx context.Context) (*model.Profile, bool, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, false, err
	}

	defaults := model.DefaultProfile()
	changed := false
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
			changed = true
		}
	}
	fill(&p.Name, defaults.Name)
	fill(&p.Title, defaults.Title)
	fill(&p.Bio, defaults.Bio)
	if len(p.TypingTexts) == 0 {
		p.TypingTexts = defaults.TypingTexts
		changed = true
	}

	if changed {
		err = s.profiles.Update(ctx, p)
		if err != nil {
			return nil, false, fmt.Errorf("failed to repair profile: %w", err)
		}
	}

	if p.ProfileImageURL == "" {
		p, err = s.profiles.SetAsset(ctx, model.ProfileImage, defaults.ProfileImageURL)
		if err != nil {
			return nil, false, fmt.Errorf("failed to repair profile: %w", err)
		}
		changed = true
	}
	return p, changed, nil
}

func validateProfile(p *model.Profile) error {
	err := validation.Required("name", p.Name)
	if err != nil {
		return err
	}
	if p.Email != "" {
		err = validation.ValidateEmail(p.Email)
		if err != nil {
			return err
		}
	}
	return validation.MaxLength("bio", p.Bio, 5000)
}
