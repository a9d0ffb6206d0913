package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/psaswat/testyourmodels/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContactRepo struct {
	msgs    []models.ContactMessage
	creates int
	nextID  int
	listErr error
}

func (f *fakeContactRepo) Create(ctx context.Context, msg *models.ContactMessage) (string, error) {
	f.creates++
	f.nextID++
	id := fmt.Sprintf("msg-%d", f.nextID)

	stored := *msg
	stored.ID = id
	f.msgs = append(f.msgs, stored)
	return id, nil
}

func (f *fakeContactRepo) List(ctx context.Context) ([]models.ContactMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.ContactMessage, len(f.msgs))
	copy(out, f.msgs)
	return out, nil
}

func (f *fakeContactRepo) GetByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	for i := range f.msgs {
		if f.msgs[i].ID == id {
			msg := f.msgs[i]
			return &msg, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range f.msgs {
		if f.msgs[i].ID == id {
			f.msgs[i].Status = status
			return nil
		}
	}
	return errors.New("not found")
}

func validSubmission() *transfer.ContactSubmission {
	return &transfer.ContactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Question about benchmarks",
		Message: "How were the video runs scored?",
	}
}

func TestSubmitStoresNewMessage(t *testing.T) {
	repo := &fakeContactRepo{}
	s := NewContactService(repo)

	result := s.Submit(context.Background(), validSubmission())
	require.True(t, result.Success)
	assert.NotEmpty(t, result.ID)

	require.Len(t, repo.msgs, 1)
	assert.Equal(t, models.ContactStatusNew, repo.msgs[0].Status)
}

// Incomplete submissions are rejected before the store is touched.
func TestSubmitValidationWritesNothing(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*transfer.ContactSubmission)
	}{
		{name: "missing name", mutate: func(cs *transfer.ContactSubmission) { cs.Name = "" }},
		{name: "missing email", mutate: func(cs *transfer.ContactSubmission) { cs.Email = "" }},
		{name: "missing subject", mutate: func(cs *transfer.ContactSubmission) { cs.Subject = "" }},
		{name: "missing message", mutate: func(cs *transfer.ContactSubmission) { cs.Message = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeContactRepo{}
			s := NewContactService(repo)

			cs := validSubmission()
			tt.mutate(cs)

			result := s.Submit(context.Background(), cs)
			assert.False(t, result.Success)
			assert.NotEmpty(t, result.Error)
			assert.Zero(t, repo.creates, "validation failure must not write")
		})
	}
}

func TestSubmitNilSubmission(t *testing.T) {
	repo := &fakeContactRepo{}
	s := NewContactService(repo)

	result := s.Submit(context.Background(), nil)
	assert.False(t, result.Success)
	assert.Zero(t, repo.creates)
}

func TestMarkReadDecrementsUnreadOnce(t *testing.T) {
	repo := &fakeContactRepo{}
	s := NewContactService(repo)

	first := s.Submit(context.Background(), validSubmission())
	second := s.Submit(context.Background(), validSubmission())
	require.True(t, first.Success)
	require.True(t, second.Success)

	count, err := s.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	result := s.MarkRead(context.Background(), first.ID)
	require.True(t, result.Success)

	count, err = s.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Second call is a no-op transition, not an error.
	result = s.MarkRead(context.Background(), first.ID)
	assert.True(t, result.Success)

	count, err = s.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

// Status never regresses: a replied message stays replied.
func TestMarkReadDoesNotRegressReplied(t *testing.T) {
	repo := &fakeContactRepo{}
	s := NewContactService(repo)

	res := s.Submit(context.Background(), validSubmission())
	require.True(t, res.Success)
	require.NoError(t, repo.UpdateStatus(context.Background(), res.ID, models.ContactStatusReplied))

	result := s.MarkRead(context.Background(), res.ID)
	assert.True(t, result.Success)

	msg, err := repo.GetByID(context.Background(), res.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactStatusReplied, msg.Status)
}

func TestMarkReadUnknownID(t *testing.T) {
	s := NewContactService(&fakeContactRepo{})

	result := s.MarkRead(context.Background(), "ghost")
	assert.False(t, result.Success)

	result = s.MarkRead(context.Background(), "")
	assert.False(t, result.Success)
}

func TestUnreadCountSurfacesListError(t *testing.T) {
	repo := &fakeContactRepo{listErr: errors.New("store unavailable")}
	s := NewContactService(repo)

	_, err := s.UnreadCount(context.Background())
	assert.Error(t, err)
}
