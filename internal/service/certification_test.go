package service

import (
	"errors"
	"testing"
	"time"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
	"github.com/cheickthiam/portfolio/internal/storage"
	"github.com/cheickthiam/portfolio/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCertifications(t *testing.T) (*CertificationService, *storage.Memory) {
	t.Helper()
	repos := newTestRepos(t)
	files, mem := newTestFiles(t)
	return NewCertificationService(repos.Certifications, files), mem
}

func TestCertificationService_CreateRequiresFile(t *testing.T) {
	certs, mem := newTestCertifications(t)

	_, err := certs.Create(ctx, model.CertificationPatch{Title: strPtr("AWS")}, CertificationUpload{})
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)

	list, err := certs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Zero(t, mem.Len(storage.Private))
}

func TestCertificationService_CreateWithoutStorage(t *testing.T) {
	repos := newTestRepos(t)
	certs := NewCertificationService(repos.Certifications, NewFileService(nil, time.Hour))

	_, err := certs.Create(ctx, model.CertificationPatch{Title: strPtr("AWS")}, CertificationUpload{
		File: fileHeader(t, "file", "cert.pdf", "application/pdf", pdfBytes),
	})
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	_, _, err = certs.DownloadURL(ctx, "any")
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}

func TestCertificationService_CreateAndDownload(t *testing.T) {
	certs, mem := newTestCertifications(t)

	c, err := certs.Create(ctx, model.CertificationPatch{
		Title:  strPtr("Gestion de Projet"),
		Issuer: strPtr("PMI"),
		Tags:   &model.StringList{"PM", " ", "Agile"},
	}, CertificationUpload{
		File:  fileHeader(t, "file", "Certificat PMI.pdf", "application/pdf", pdfBytes),
		Cover: fileHeader(t, "cover_image", "cover.png", "image/png", pngBytes),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^\d+-CertificatPMI\.pdf$`, c.FilePath)
	assert.True(t, mem.Has(storage.Private, c.FilePath))
	assert.Contains(t, c.CoverImage, "/certifications/covers/")
	assert.Equal(t, model.StringList{"PM", "Agile"}, c.Tags)

	url, expiry, err := certs.DownloadURL(ctx, c.ID)
	require.NoError(t, err)
	assert.Contains(t, url, c.FilePath)
	assert.Equal(t, time.Hour, expiry)

	_, _, err = certs.DownloadURL(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrCertificationNotFound)
}

func TestCertificationService_CoverFailureRollsBack(t *testing.T) {
	certs, mem := newTestCertifications(t)
	mem.PublicSaveErr = errors.New("bucket unavailable")

	_, err := certs.Create(ctx, model.CertificationPatch{Title: strPtr("AWS")}, CertificationUpload{
		File:  fileHeader(t, "file", "cert.pdf", "application/pdf", pdfBytes),
		Cover: fileHeader(t, "cover_image", "cover.png", "image/png", pngBytes),
	})
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Zero(t, mem.Len(storage.Private))

	list, err := certs.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCertificationService_UpdateReplacesDocument(t *testing.T) {
	certs, mem := newTestCertifications(t)

	c, err := certs.Create(ctx, model.CertificationPatch{Title: strPtr("AWS")}, CertificationUpload{
		File: fileHeader(t, "file", "old.pdf", "application/pdf", pdfBytes),
	})
	require.NoError(t, err)
	oldKey := c.FilePath

	updated, err := certs.Update(ctx, c.ID, model.CertificationPatch{Issuer: strPtr("Amazon")}, CertificationUpload{
		File: fileHeader(t, "file", "new.pdf", "application/pdf", pdfBytes),
	})
	require.NoError(t, err)
	assert.Equal(t, "AWS", updated.Title)
	assert.Equal(t, "Amazon", updated.Issuer)
	assert.NotEqual(t, oldKey, updated.FilePath)
	assert.False(t, mem.Has(storage.Private, oldKey))
	assert.True(t, mem.Has(storage.Private, updated.FilePath))
}

func TestCertificationService_DeleteSurvivesBlobFailure(t *testing.T) {
	certs, mem := newTestCertifications(t)

	c, err := certs.Create(ctx, model.CertificationPatch{Title: strPtr("AWS")}, CertificationUpload{
		File: fileHeader(t, "file", "cert.pdf", "application/pdf", pdfBytes),
	})
	require.NoError(t, err)

	mem.DeleteErr = errors.New("storage down")
	require.NoError(t, certs.Delete(ctx, c.ID))
	assert.ErrorIs(t, certs.Delete(ctx, c.ID), repository.ErrCertificationNotFound)
}

func TestCertificationService_RejectsUnsupportedDocument(t *testing.T) {
	certs, mem := newTestCertifications(t)

	_, err := certs.Create(ctx, model.CertificationPatch{Title: strPtr("AWS")}, CertificationUpload{
		File: fileHeader(t, "file", "notes.txt", "text/plain", []byte("plain text")),
	})
	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
	assert.Zero(t, mem.Len(storage.Private))
}
