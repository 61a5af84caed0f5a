package service

import (
	"testing"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceService(t *testing.T) {
	repos := newTestRepos(t)
	experiences := NewExperienceService(repos.Experiences)

	var verr *validation.Error
	_, err := experiences.Create(ctx, model.ExperiencePatch{Title: strPtr("Dev")})
	assert.ErrorAs(t, err, &verr)

	e, err := experiences.Create(ctx, model.ExperiencePatch{
		Title:       strPtr("Dev"),
		Company:     strPtr("ACME"),
		Year:        strPtr("2024"),
		Description: strPtr("Backend"),
	})
	require.NoError(t, err)
	assert.True(t, e.IsVisible)

	hidden := false
	e, err = experiences.Update(ctx, e.ID, model.ExperiencePatch{IsVisible: &hidden})
	require.NoError(t, err)
	assert.Equal(t, "ACME", e.Company)

	public, err := experiences.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, public)

	all, err := experiences.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = experiences.Update(ctx, e.ID, model.ExperiencePatch{Company: strPtr(" ")})
	assert.ErrorAs(t, err, &verr)

	require.NoError(t, experiences.Delete(ctx, e.ID))
	_, err = experiences.ByID(ctx, e.ID)
	assert.ErrorIs(t, err, repository.ErrExperienceNotFound)
}

func TestSeedService(t *testing.T) {
	repos := newTestRepos(t)
	seed := NewSeedService(repos.Experiences, repos.Projects)

	e, p, err := seed.Seed(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 4, e)
	assert.Equal(t, 3, p)

	_, _, err = seed.Seed(ctx, true)
	require.NoError(t, err)

	list, err := repos.Experiences.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Agent de Recensement Biométrique", list[0].Title)
}
