package service

import (
	"testing"
	"time"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactNotificationTemplate_EscapesInput(t *testing.T) {
	c := &model.Contact{
		Name:      "<script>alert(1)</script>",
		Email:     "visitor@example.com",
		Subject:   "Projet",
		Message:   "Bonjour <b>",
		CreatedAt: time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	subject, html, text, err := contactNotificationTemplate(c)
	require.NoError(t, err)
	assert.Equal(t, "Nouveau contact: Projet", subject)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, text, "Date: 14/03/2025 09:30")
}

func TestAutoReplyTemplate(t *testing.T) {
	subject, html, text, err := autoReplyTemplate(&model.Contact{Name: "Awa"})
	require.NoError(t, err)
	assert.Contains(t, subject, "Cheick Ahmed Thiam")
	assert.Contains(t, html, "Bonjour Awa")
	assert.Contains(t, text, "24 heures")
}

func TestEmailService_Modes(t *testing.T) {
	c := &model.Contact{Name: "N", Email: "n@example.com", Subject: "S", Message: "M"}

	dev := NewEmailService("", "from@example.com", "admin@example.com", 2, true)
	assert.NoError(t, dev.NotifyAdmin(ctx, c))
	assert.NoError(t, dev.AutoReply(ctx, c))

	unconfigured := NewEmailService("", "from@example.com", "admin@example.com", 2, false)
	assert.ErrorIs(t, unconfigured.NotifyAdmin(ctx, c), ErrEmailNotConfigured)
}
