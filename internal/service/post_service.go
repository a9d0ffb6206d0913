package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/psaswat/testyourmodels/internal/repository"
	"github.com/psaswat/testyourmodels/internal/store"
	"github.com/psaswat/testyourmodels/internal/transfer"
)

type PostService interface {
	List(ctx context.Context) []models.Post
	Featured(ctx context.Context) []models.Post
	Historical(ctx context.Context) []models.Post
	Search(ctx context.Context, query string) []models.Post
	PostInfo(ctx context.Context, id string) (*models.Post, error)
	DisplayPost(ctx context.Context) (*models.Post, bool)
	Create(ctx context.Context, pc *transfer.PostCreation) transfer.Result
	Update(ctx context.Context, id string, pu *transfer.PostUpdate) transfer.Result
	SetActive(ctx context.Context, id string, active bool) transfer.Result
	Remove(ctx context.Context, id string) transfer.Result
}

type postService struct {
	pr repository.PostRepository
}

func NewPostService(pr repository.PostRepository) PostService {
	return &postService{pr: pr}
}

func (s *postService) List(ctx context.Context) []models.Post {
	return s.pr.GetAll(ctx)
}

func (s *postService) Featured(ctx context.Context) []models.Post {
	return s.pr.GetFeatured(ctx)
}

func (s *postService) Historical(ctx context.Context) []models.Post {
	return s.pr.GetHistorical(ctx)
}

func (s *postService) Search(ctx context.Context, query string) []models.Post {
	return s.pr.Search(ctx, query)
}

func (s *postService) PostInfo(ctx context.Context, id string) (*models.Post, error) {
	if id == "" {
		err := errors.New("post id is not valid")
		slog.Info(err.Error())
		return nil, err
	}
	return s.pr.GetByID(ctx, id)
}

// DisplayPost resolves the post shown on page load: the first featured active
// post, else the first active historical post, else nothing. Never errors; an
// empty site renders the welcome state.
func (s *postService) DisplayPost(ctx context.Context) (*models.Post, bool) {
	if featured := s.pr.GetFeatured(ctx); len(featured) > 0 {
		return &featured[0], true
	}
	if historical := s.pr.GetHistorical(ctx); len(historical) > 0 {
		return &historical[0], true
	}
	return nil, false
}

func (s *postService) Create(ctx context.Context, pc *transfer.PostCreation) transfer.Result {
	if pc == nil {
		return transfer.Fail("post data is missing")
	}
	if pc.Title == "" || pc.Summary == "" || pc.Content == "" {
		return transfer.Fail("title, summary and content are required")
	}
	if !models.IsValidCategory(pc.Category) {
		return transfer.Fail("unknown category: " + pc.Category)
	}

	date := time.Now().UTC()
	if pc.Date != "" {
		parsed, err := time.Parse(time.RFC3339, pc.Date)
		if err != nil {
			return transfer.Fail("invalid date format, expected RFC3339")
		}
		date = parsed
	}

	active := true
	if pc.IsActive != nil {
		active = *pc.IsActive
	}

	post := models.Post{
		Title:         pc.Title,
		Summary:       pc.Summary,
		Content:       pc.Content,
		Category:      pc.Category,
		Image:         pc.Image,
		MediaVersions: pc.MediaVersions,
		Date:          date,
		IsFeatured:    pc.IsFeatured,
		IsActive:      active,
		Tags:          pc.Tags,
	}

	id, err := s.pr.Create(ctx, &post)
	if err != nil {
		slog.Info(err.Error())
		return transfer.Fail("unable to create post")
	}
	return transfer.Ok(id)
}

func (s *postService) Update(ctx context.Context, id string, pu *transfer.PostUpdate) transfer.Result {
	if id == "" {
		return transfer.Fail("post id is not valid")
	}
	if pu == nil {
		return transfer.Fail("update data is missing")
	}

	partial := store.Record{}
	if pu.Title != nil {
		partial["title"] = *pu.Title
	}
	if pu.Summary != nil {
		partial["summary"] = *pu.Summary
	}
	if pu.Content != nil {
		partial["content"] = *pu.Content
	}
	if pu.Category != nil {
		if !models.IsValidCategory(*pu.Category) {
			return transfer.Fail("unknown category: " + *pu.Category)
		}
		partial["category"] = *pu.Category
	}
	if pu.Image != nil {
		partial["image"] = *pu.Image
	}
	if pu.MediaVersions != nil {
		versions := make([]any, 0, len(*pu.MediaVersions))
		for _, v := range *pu.MediaVersions {
			versions = append(versions, map[string]any{
				"id":       v.ID,
				"label":    v.Label,
				"url":      v.URL,
				"type":     v.Type,
				"content":  v.Content,
				"isPrompt": v.IsPrompt,
			})
		}
		partial["mediaVersions"] = versions
	}
	if pu.IsFeatured != nil {
		partial["isFeatured"] = *pu.IsFeatured
	}
	if pu.IsActive != nil {
		partial["isActive"] = *pu.IsActive
	}
	if pu.Tags != nil {
		partial["tags"] = *pu.Tags
	}

	if len(partial) == 0 {
		return transfer.Fail("nothing to update")
	}

	if err := s.pr.Update(ctx, id, partial); err != nil {
		slog.Info(err.Error())
		return transfer.Fail("unable to update post")
	}
	return transfer.Ok(id)
}

// SetActive toggles visibility without deleting; inactive posts are hidden
// everywhere except direct admin edit.
func (s *postService) SetActive(ctx context.Context, id string, active bool) transfer.Result {
	if id == "" {
		return transfer.Fail("post id is not valid")
	}
	if err := s.pr.Update(ctx, id, store.Record{"isActive": active}); err != nil {
		slog.Info(err.Error())
		return transfer.Fail("unable to update post")
	}
	return transfer.Ok(id)
}

func (s *postService) Remove(ctx context.Context, id string) transfer.Result {
	if id == "" {
		return transfer.Fail("post id is not valid")
	}
	if err := s.pr.Delete(ctx, id); err != nil {
		slog.Info(err.Error())
		return transfer.Fail("unable to remove post")
	}
	return transfer.Ok(id)
}
