package repository

import (
	"context"
	"log/slog"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/psaswat/testyourmodels/internal/store"
)

const ContactCollection = "contactMessages"

type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) (string, error)
	List(ctx context.Context) ([]models.ContactMessage, error)
	GetByID(ctx context.Context, id string) (*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type contactRepository struct {
	store store.Adapter
}

func NewContactRepository(adapter store.Adapter) ContactRepository {
	return &contactRepository{store: adapter}
}

func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) (string, error) {
	id, err := r.store.Create(ctx, ContactCollection, store.Record{
		"name":    msg.Name,
		"email":   msg.Email,
		"subject": msg.Subject,
		"message": msg.Message,
		"status":  msg.Status,
	})
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	return id, nil
}

func (r *contactRepository) List(ctx context.Context) ([]models.ContactMessage, error) {
	records, err := r.store.List(ctx, ContactCollection, store.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	messages := make([]models.ContactMessage, 0, len(records))
	for _, rec := range records {
		messages = append(messages, contactFromRecord(rec))
	}
	return messages, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	rec, err := r.store.Get(ctx, ContactCollection, id)
	if err != nil {
		return nil, err
	}
	msg := contactFromRecord(rec)
	return &msg, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.store.Update(ctx, ContactCollection, id, store.Record{"status": status})
}
