package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cheickthiam/portfolio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/images",
		PublicBaseURL(S3Config{PublicURL: "https://cdn.example.com/images/", Endpoint: "http://minio:9000", PublicBucket: "images"}))
	assert.Equal(t, "http://minio:9000/images",
		PublicBaseURL(S3Config{Endpoint: "http://minio:9000/", PublicBucket: "images"}))
	assert.Equal(t, "https://images.s3.eu-west-3.amazonaws.com",
		PublicBaseURL(S3Config{PublicBucket: "images", Region: "eu-west-3"}))
}

func TestNew_NotConfigured(t *testing.T) {
	s, err := New(context.Background(), &config.Config{})
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	require.NoError(t, m.Save(ctx, Private, "123-cert.pdf", strings.NewReader("%PDF"), "application/pdf"))
	assert.True(t, m.Has(Private, "123-cert.pdf"))
	assert.False(t, m.Has(Public, "123-cert.pdf"))

	url, err := m.SignedURL(ctx, "123-cert.pdf", time.Hour)
	require.NoError(t, err)
	assert.Contains(t, url, "expires=3600")

	_, err = m.SignedURL(ctx, "missing.pdf", time.Hour)
	assert.Error(t, err)

	m.DeleteErr = errors.New("boom")
	assert.Error(t, m.Delete(ctx, Private, "123-cert.pdf"))
	m.DeleteErr = nil
	require.NoError(t, m.Delete(ctx, Private, "123-cert.pdf"))
	assert.Zero(t, m.Len(Private))
}
