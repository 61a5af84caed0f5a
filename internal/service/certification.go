package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"time"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/validation"
)

type CertificationService struct {
	certifications repository.CertificationRepository
	files          *FileService
}

func NewCertificationService(certifications repository.CertificationRepository, files *FileService) *CertificationService {
	return &CertificationService{certifications: certifications, files: files}
}

// CertificationUpload carries the optional multipart parts of a request.
type CertificationUpload struct {
	File  *multipart.FileHeader
	Cover *multipart.FileHeader
}

func (s *CertificationService) List(ctx context.Context) ([]*model.Certification, error) {
	return s.certifications.List(ctx)
}

func (s *CertificationService) ByID(ctx context.Context, id string) (*model.Certification, error) {
	return s.certifications.ByID(ctx, id)
}

// Create stores the document privately, the optional cover publicly, then
// the record. Any failure rolls back the uploads that already happened.
func (s *CertificationService) Create(ctx context.Context, patch model.CertificationPatch, upload CertificationUpload) (*model.Certification, error) {
	if !s.files.Configured() {
		return nil, ErrStorageNotConfigured
	}
	if upload.File == nil {
		return nil, validation.Errorf("file", "certification file is required")
	}

	c := &model.Certification{}
	patch.Apply(c)
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	err = validateUpload(upload)
	if err != nil {
		return nil, err
	}

	c.FilePath, err = s.files.UploadPrivate(ctx, upload.File)
	if err != nil {
		return nil, err
	}

	if upload.Cover != nil {
		c.CoverImage, err = s.files.UploadPublic(ctx, FolderCertificationCover, upload.Cover)
		if err != nil {
			s.files.DeletePrivate(ctx, c.FilePath)
			return nil, err
		}
	}

	err = s.certifications.Create(ctx, c)
	if err != nil {
		s.files.DeletePrivate(ctx, c.FilePath)
		if upload.Cover != nil {
			s.files.DeletePublic(ctx, c.CoverImage)
		}
		return nil, fmt.Errorf("failed to create certification: %w", err)
	}

	slog.Info("certification created", "id", c.ID, "file", c.FilePath)
	return c, nil
}

// Update merges patch and swaps any uploaded document or cover. Replaced
// blobs are deleted once the record is saved.
func (s *CertificationService) Update(ctx context.Context, id string, patch model.CertificationPatch, upload CertificationUpload) (*model.Certification, error) {
	hasUpload := upload.File != nil || upload.Cover != nil
	if hasUpload && !s.files.Configured() {
		return nil, ErrStorageNotConfigured
	}

	c, err := s.certifications.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousFile, previousCover := c.FilePath, c.CoverImage

	patch.Apply(c)
	err = c.Validate()
	if err != nil {
		return nil, err
	}

	err = validateUpload(upload)
	if err != nil {
		return nil, err
	}

	if upload.File != nil {
		c.FilePath, err = s.files.UploadPrivate(ctx, upload.File)
		if err != nil {
			return nil, err
		}
	}
	if upload.Cover != nil {
		c.CoverImage, err = s.files.UploadPublic(ctx, FolderCertificationCover, upload.Cover)
		if err != nil {
			if upload.File != nil {
				s.files.DeletePrivate(ctx, c.FilePath)
			}
			return nil, err
		}
	}

	err = s.certifications.Update(ctx, c)
	if err != nil {
		if upload.File != nil {
			s.files.DeletePrivate(ctx, c.FilePath)
		}
		if upload.Cover != nil {
			s.files.DeletePublic(ctx, c.CoverImage)
		}
		return nil, err
	}

	if upload.File != nil && previousFile != c.FilePath {
		s.files.DeletePrivate(ctx, previousFile)
	}
	if previousCover != c.CoverImage {
		s.files.DeletePublic(ctx, previousCover)
	}
	return c, nil
}

// Delete removes the record first. Blob cleanup cannot fail the call.
func (s *CertificationService) Delete(ctx context.Context, id string) error {
	c, err := s.certifications.ByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.certifications.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.files.DeletePrivate(ctx, c.FilePath)
	s.files.DeletePublic(ctx, c.CoverImage)
	slog.Info("certification deleted", "id", id)
	return nil
}

// DownloadURL mints a short-lived URL for the certification document.
func (s *CertificationService) DownloadURL(ctx context.Context, id string) (string, time.Duration, error) {
	if !s.files.Configured() {
		return "", 0, ErrStorageNotConfigured
	}

	c, err := s.certifications.ByID(ctx, id)
	if err != nil {
		return "", 0, err
	}
	if c.FilePath == "" {
		return "", 0, repository.ErrCertificationNotFound
	}

	url, expiry, err := s.files.SignedURL(ctx, c.FilePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign download URL: %w", err)
	}
	return url, expiry, nil
}

func validateUpload(upload CertificationUpload) error {
	if upload.File != nil {
		err := validation.ValidateFile(upload.File, validation.DocumentConstraints, validation.ImageConstraints)
		if err != nil {
			return err
		}
	}
	if upload.Cover != nil {
		err := validation.ValidateFile(upload.Cover, validation.ImageConstraints)
		if err != nil {
			return validation.Errorf("cover_image", "%v", err)
		}
	}
	return nil
}
