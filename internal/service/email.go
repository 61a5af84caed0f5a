package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/resend/resend-go/v2"
	"golang.org/x/time/rate"
)

var ErrEmailNotConfigured = errors.New("email service not configured (missing RESEND_API_KEY)")

// EmailService sends transactional mail through Resend. In development
// messages are logged instead of sent.
type EmailService struct {
	client     *resend.Client
	limiter    *rate.Limiter
	fromEmail  string
	adminEmail string
	isDev      bool
}

func NewEmailService(apiKey, fromEmail, adminEmail string, ratePerSecond float64, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}
	if ratePerSecond <= 0 {
		ratePerSecond = 2
	}

	return &EmailService{
		client:     client,
		limiter:    rate.NewLimiter(rate.Limit(ratePerSecond), 1),
		fromEmail:  fromEmail,
		adminEmail: adminEmail,
		isDev:      isDev,
	}
}

// NotifyAdmin forwards a contact message to the site owner. Replies go
// straight to the visitor.
func (s *EmailService) NotifyAdmin(ctx context.Context, contact *model.Contact) error {
	subject, html, text, err := contactNotificationTemplate(contact)
	if err != nil {
		return err
	}

	return s.send(ctx, "contact_notification", &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.adminEmail},
		ReplyTo: contact.Email,
		Subject: subject,
		Html:    html,
		Text:    text,
	})
}

// AutoReply acknowledges a contact message to its sender.
func (s *EmailService) AutoReply(ctx context.Context, contact *model.Contact) error {
	subject, html, text, err := autoReplyTemplate(contact)
	if err != nil {
		return err
	}

	return s.send(ctx, "contact_auto_reply", &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{contact.Email},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
}

func (s *EmailService) send(ctx context.Context, kind string, params *resend.SendEmailRequest) error {
	if s.isDev {
		slog.Info("email sent (dev mode)", "type", kind, "to", params.To, "subject", params.Subject)
		return nil
	}

	if s.client == nil {
		return ErrEmailNotConfigured
	}

	// Resend rejects bursts above its per-second API limit.
	err := s.limiter.Wait(ctx)
	if err != nil {
		return fmt.Errorf("email rate limiter: %w", err)
	}

	_, err = s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send %s email: %w", kind, err)
	}

	slog.Info("email sent", "type", kind, "to", params.To)
	return nil
}
