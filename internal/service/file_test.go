package service

import (
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/cheickthiam/portfolio/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	at := time.UnixMilli(1700000000123)

	tests := []struct {
		filename string
		want     string
	}{
		{"Certificat Gestion de Projet.pdf", "1700000000123-CertificatGestiondeProjet.pdf"},
		{"résumé-été.pdf", "1700000000123-resumeete.pdf"},
		{"../../etc/passwd", "1700000000123-passwd"},
		{"日本語", "1700000000123-file"},
		{"", "1700000000123-file"},
	}

	safe := regexp.MustCompile(`^\d+-[A-Za-z0-9.]+$`)
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := ObjectKey(tt.filename, at)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, safe, got)
		})
	}
}

func TestObjectKey_Concurrent(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	want := "1700000000123-ResumeETEaccentuedocument.pdf"

	var wg sync.WaitGroup
	results := make(chan string, 50*100)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				results <- ObjectKey("Résumé-ÉTÉ-àçcentué-document.pdf", at)
			}
		}()
	}
	wg.Wait()
	close(results)

	for got := range results {
		require.Equal(t, want, got)
	}
}

func TestFileService_PublicRoundTrip(t *testing.T) {
	files, mem := newTestFiles(t)

	url, err := files.UploadPublic(ctx, FolderProjects, fileHeader(t, "image", "cover.png", "image/png", pngBytes))
	require.NoError(t, err)
	assert.Contains(t, url, mem.BaseURL+"/projects/")
	assert.Equal(t, 1, mem.Len(storage.Public))

	files.DeletePublic(ctx, "https://cdn.pixabay.com/photo/external.png")
	assert.Equal(t, 1, mem.Len(storage.Public))

	files.DeletePublic(ctx, url)
	assert.Zero(t, mem.Len(storage.Public))
}

func TestFileService_NotConfigured(t *testing.T) {
	files := NewFileService(nil, time.Hour)
	assert.False(t, files.Configured())

	_, err := files.UploadPrivate(ctx, fileHeader(t, "file", "cert.pdf", "application/pdf", pdfBytes))
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	_, _, err = files.SignedURL(ctx, "key")
	assert.ErrorIs(t, err, ErrStorageNotConfigured)

	files.DeletePrivate(ctx, "key")
	files.DeletePublic(ctx, "url")
}
