package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cheickthiam/portfolio/internal/model"
	"github.com/cheickthiam/portfolio/internal/repository"
)

// ContactNotifier delivers the two mails sent for every contact message.
type ContactNotifier interface {
	NotifyAdmin(ctx context.Context, contact *model.Contact) error
	AutoReply(ctx context.Context, contact *model.Contact) error
}

const notifyTimeout = 30 * time.Second

type ContactService struct {
	contacts repository.ContactRepository
	notifier ContactNotifier
	pending  sync.WaitGroup
}

func NewContactService(contacts repository.ContactRepository, notifier ContactNotifier) *ContactService {
	return &ContactService{contacts: contacts, notifier: notifier}
}

// Submit persists a contact message and sends the notifications in the
// background. The caller does not wait for mail delivery.
func (s *ContactService) Submit(ctx context.Context, submission model.ContactSubmission) (*model.Contact, error) {
	submission.Normalize()
	err := submission.Validate()
	if err != nil {
		return nil, err
	}

	contact := &model.Contact{
		Name:    submission.Name,
		Email:   submission.Email,
		Subject: submission.Subject,
		Message: submission.Message,
	}
	err = s.contacts.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	slog.Info("contact message received", "id", contact.ID)

	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		s.notify(context.WithoutCancel(ctx), contact)
	}()

	return contact, nil
}

// notify reports whether both notifications went out.
func (s *ContactService) notify(ctx context.Context, contact *model.Contact) bool {
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()

	ok := true
	err := s.notifier.NotifyAdmin(ctx, contact)
	if err != nil {
		slog.Error("failed to send contact notification", "error", err, "contact_id", contact.ID)
		ok = false
	}
	err = s.notifier.AutoReply(ctx, contact)
	if err != nil {
		slog.Error("failed to send contact auto-reply", "error", err, "contact_id", contact.ID)
		ok = false
	}
	return ok
}

// Wait blocks until in-flight notifications have finished.
func (s *ContactService) Wait() {
	s.pending.Wait()
}

func (s *ContactService) List(ctx context.Context) ([]*model.Contact, error) {
	return s.contacts.List(ctx)
}

func (s *ContactService) ByID(ctx context.Context, id string) (*model.Contact, error) {
	return s.contacts.ByID(ctx, id)
}

func (s *ContactService) SetRead(ctx context.Context, id string, read bool) (*model.Contact, error) {
	return s.contacts.SetRead(ctx, id, read)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}
