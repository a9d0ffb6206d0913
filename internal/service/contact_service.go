package service

import (
	"context"
	"log/slog"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/psaswat/testyourmodels/internal/repository"
	"github.com/psaswat/testyourmodels/internal/transfer"
)

type ContactService interface {
	Submit(ctx context.Context, cs *transfer.ContactSubmission) transfer.Result
	List(ctx context.Context) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) transfer.Result
	UnreadCount(ctx context.Context) (int, error)
}

type contactService struct {
	cr repository.ContactRepository
}

func NewContactService(cr repository.ContactRepository) ContactService {
	return &contactService{cr: cr}
}

// Submit validates every field before touching the store: an incomplete
// submission never performs a write.
func (s *contactService) Submit(ctx context.Context, cs *transfer.ContactSubmission) transfer.Result {
	if cs == nil || cs.Name == "" || cs.Email == "" || cs.Subject == "" || cs.Message == "" {
		return transfer.Fail("all fields are required")
	}

	msg := models.ContactMessage{
		Name:    cs.Name,
		Email:   cs.Email,
		Subject: cs.Subject,
		Message: cs.Message,
		Status:  models.ContactStatusNew,
	}

	id, err := s.cr.Create(ctx, &msg)
	if err != nil {
		return transfer.Fail("unable to submit message")
	}
	return transfer.Ok(id)
}

func (s *contactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.cr.List(ctx)
}

// MarkRead advances a message from new to read. Status never regresses and
// the read->replied step belongs to a human process, so any other current
// status makes this a no-op success rather than an error.
func (s *contactService) MarkRead(ctx context.Context, id string) transfer.Result {
	if id == "" {
		return transfer.Fail("message id is not valid")
	}

	msg, err := s.cr.GetByID(ctx, id)
	if err != nil {
		slog.Info(err.Error())
		return transfer.Fail("message not found")
	}

	if msg.Status != models.ContactStatusNew {
		return transfer.Ok(id)
	}

	if err := s.cr.UpdateStatus(ctx, id, models.ContactStatusRead); err != nil {
		slog.Info(err.Error())
		return transfer.Fail("unable to update message")
	}
	return transfer.Ok(id)
}

// UnreadCount is recomputed from the listing on every call, not cached.
func (s *contactService) UnreadCount(ctx context.Context) (int, error) {
	messages, err := s.cr.List(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, msg := range messages {
		if msg.Status == models.ContactStatusNew {
			count++
		}
	}
	return count, nil
}
