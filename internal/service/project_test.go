package service

import (
	"testing"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/storage"
	"github.com/cheickthiam/portfolio/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_Lifecycle(t *testing.T) {
	repos := newTestRepos(t)
	files, mem := newTestFiles(t)
	projects := NewProjectService(repos.Projects, files)

	var verr *validation.Error
	_, err := projects.Create(ctx, model.ProjectPatch{Description: strPtr("no title")}, nil)
	assert.ErrorAs(t, err, &verr)

	p, err := projects.Create(ctx, model.ProjectPatch{
		Title: strPtr("CRM"),
		Tech:  &model.StringList{"Go", "SQL"},
	}, fileHeader(t, "image", "crm.png", "image/png", pngBytes))
	require.NoError(t, err)
	assert.Contains(t, p.CoverURL, "/projects/")
	firstCover := p.CoverURL

	p, err = projects.Update(ctx, p.ID, model.ProjectPatch{ProjectURL: strPtr("https://crm.example.com")},
		fileHeader(t, "image", "crm-v2.png", "image/png", pngBytes))
	require.NoError(t, err)
	assert.NotEqual(t, firstCover, p.CoverURL)
	assert.Equal(t, "CRM", p.Title)
	assert.Equal(t, 1, mem.Len(storage.Public))

	require.NoError(t, projects.Delete(ctx, p.ID))
	assert.Zero(t, mem.Len(storage.Public))
	assert.ErrorIs(t, projects.Delete(ctx, p.ID), repository.ErrProjectNotFound)
}

func TestProjectService_ExternalCoverWithoutStorage(t *testing.T) {
	repos := newTestRepos(t)
	projects := NewProjectService(repos.Projects, NewFileService(nil, 0))

	p, err := projects.Create(ctx, model.ProjectPatch{
		Title:    strPtr("Dashboard"),
		CoverURL: strPtr("https://cdn.pixabay.com/photo/dashboard.png"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.pixabay.com/photo/dashboard.png", p.CoverURL)

	_, err = projects.Update(ctx, p.ID, model.ProjectPatch{}, fileHeader(t, "image", "x.png", "image/png", pngBytes))
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	require.NoError(t, projects.Delete(ctx, p.ID))
}
