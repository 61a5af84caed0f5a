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

type ProjectService struct {
	projects repository.ProjectRepository
	files    *FileService
}

func NewProjectService(projects repository.ProjectRepository, files *FileService) *ProjectService {
	return &ProjectService{projects: projects, files: files}
}

func (s *ProjectService) List(ctx context.Context) ([]*model.Project, error) {
	return s.projects.List(ctx)
}

func (s *ProjectService) ByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projects.ByID(ctx, id)
}

// Create stores a project. An optional image becomes the cover.
func (s *ProjectService) Create(ctx context.Context, patch model.ProjectPatch, image *multipart.FileHeader) (*model.Project, error) {
	p := &model.Project{}
	patch.Apply(p)

	err := p.Validate()
	if err != nil {
		return nil, err
	}

	if image != nil {
		p.CoverURL, err = s.uploadCover(ctx, image)
		if err != nil {
			return nil, err
		}
	}

	err = s.projects.Create(ctx, p)
	if err != nil {
		if image != nil {
			s.files.DeletePublic(ctx, p.CoverURL)
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	slog.Info("project created", "id", p.ID)
	return p, nil
}

// Update merges patch into the project. A new image replaces the cover and
// the previous blob is removed.
func (s *ProjectService) Update(ctx context.Context, id string, patch model.ProjectPatch, image *multipart.FileHeader) (*model.Project, error) {
	p, err := s.projects.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousCover := p.CoverURL

	patch.Apply(p)
	err = p.Validate()
	if err != nil {
		return nil, err
	}

	if image != nil {
		p.CoverURL, err = s.uploadCover(ctx, image)
		if err != nil {
			return nil, err
		}
	}

	err = s.projects.Update(ctx, p)
	if err != nil {
		if image != nil {
			s.files.DeletePublic(ctx, p.CoverURL)
		}
		return nil, err
	}

	if previousCover != p.CoverURL {
		s.files.DeletePublic(ctx, previousCover)
	}
	return p, nil
}

// Delete removes the project, then its cover blob on a best-effort basis.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	p, err := s.projects.ByID(ctx, id)
	if err != nil {
		return err
	}

	err = s.projects.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.files.DeletePublic(ctx, p.CoverURL)
	slog.Info("project deleted", "id", id)
	return nil
}

func (s *ProjectService) uploadCover(ctx context.Context, image *multipart.FileHeader) (string, error) {
	if !s.files.Configured() {
		return "", ErrStorageNotConfigured
	}
	err := validation.ValidateFile(image, validation.ImageConstraints)
	if err != nil {
		return "", err
	}
	return s.files.UploadPublic(ctx, FolderProjects, image)
}
