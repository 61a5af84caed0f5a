package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
)

type ExperienceService struct {
	experiences repository.ExperienceRepository
}

func NewExperienceService(experiences repository.ExperienceRepository) *ExperienceService {
	return &ExperienceService{experiences: experiences}
}

// List returns the timeline. Hidden entries are only included for the admin.
func (s *ExperienceService) List(ctx context.Context, includeHidden bool) ([]*model.Experience, error) {
	return s.experiences.List(ctx, !includeHidden)
}

func (s *ExperienceService) ByID(ctx context.Context, id string) (*model.Experience, error) {
	return s.experiences.ByID(ctx, id)
}

func (s *ExperienceService) Create(ctx context.Context, patch model.ExperiencePatch) (*model.Experience, error) {
	e := model.NewExperience()
	patch.Apply(e)

	err := e.Validate()
	if err != nil {
		return nil, err
	}

	err = s.experiences.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}

	slog.Info("experience created", "id", e.ID)
	return e, nil
}

func (s *ExperienceService) Update(ctx context.Context, id string, patch model.ExperiencePatch) (*model.Experience, error) {
	e, err := s.experiences.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(e)
	err = e.Validate()
	if err != nil {
		return nil, err
	}

	err = s.experiences.Update(ctx, e)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	err := s.experiences.Delete(ctx, id)
	if err != nil {
		return err
	}
	slog.Info("experience deleted", "id", id)
	return nil
}
