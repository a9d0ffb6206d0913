package repository

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/psaswat/testyourmodels/internal/search"
	"github.com/psaswat/testyourmodels/internal/staticposts"
	"github.com/psaswat/testyourmodels/internal/store"
)

const PostsCollection = "posts"

// FeaturedLimit bounds the featured set at query time.
const FeaturedLimit = 3

type PostRepository interface {
	GetAll(ctx context.Context) []models.Post
	ListRemote(ctx context.Context) ([]models.Post, error)
	GetFeatured(ctx context.Context) []models.Post
	GetHistorical(ctx context.Context) []models.Post
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Search(ctx context.Context, query string) []models.Post
	Create(ctx context.Context, post *models.Post) (string, error)
	Update(ctx context.Context, id string, partial store.Record) error
	Delete(ctx context.Context, id string) error
}

type postRepository struct {
	store    store.Adapter
	fallback staticposts.Source
}

// NewPostRepository wires the remote store with the injected fallback dataset
// served when the store is unreachable.
func NewPostRepository(adapter store.Adapter, fallback staticposts.Source) PostRepository {
	return &postRepository{store: adapter, fallback: fallback}
}

// ListRemote returns every post from the store, newest first. Unlike GetAll
// it surfaces the store error, so the snapshot warm job can tell a failed
// listing from an empty one.
func (r *postRepository) ListRemote(ctx context.Context) ([]models.Post, error) {
	records, err := r.store.List(ctx, PostsCollection, store.Query{
		OrderBy:    "createdAt",
		Descending: true,
	})
	if err != nil {
		return nil, err
	}

	posts := make([]models.Post, 0, len(records))
	for _, rec := range records {
		posts = append(posts, postFromRecord(rec))
	}
	return posts, nil
}

// GetAll never fails: on a store error the fallback dataset is returned
// instead, with the failure logged for diagnostics.
func (r *postRepository) GetAll(ctx context.Context) []models.Post {
	posts, err := r.ListRemote(ctx)
	if err != nil {
		slog.Info(err.Error())
		return r.fallback.Posts()
	}
	return posts
}

// GetFeatured returns up to FeaturedLimit active featured posts by recency.
// The compound-filtered query may be rejected by the store (missing index);
// that failure triggers a transparent full-scan fallback which must produce
// the same result set.
func (r *postRepository) GetFeatured(ctx context.Context) []models.Post {
	records, err := r.store.List(ctx, PostsCollection, store.Query{
		Filters:    map[string]any{"isActive": true, "isFeatured": true},
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      FeaturedLimit,
	})
	if err != nil {
		slog.Info(err.Error())
		return filterFeatured(r.GetAll(ctx))
	}

	posts := make([]models.Post, 0, len(records))
	for _, rec := range records {
		posts = append(posts, postFromRecord(rec))
	}
	return posts
}

// GetHistorical returns every active non-featured post by recency. The
// featured flag is filtered in memory because older documents omit it
// entirely and an equality filter would skip them.
func (r *postRepository) GetHistorical(ctx context.Context) []models.Post {
	posts := []models.Post{}
	for _, post := range r.GetAll(ctx) {
		if !post.IsFeatured && post.IsActive {
			posts = append(posts, post)
		}
	}
	sortByRecency(posts)
	return posts
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	rec, err := r.store.Get(ctx, PostsCollection, id)
	if err == nil {
		post := postFromRecord(rec)
		return &post, nil
	}
	if err != store.ErrNotFound {
		slog.Info(err.Error())
	}

	// The fallback dataset is served in listings, so its ids must resolve
	// on the detail path too.
	for _, post := range r.fallback.Posts() {
		if post.ID == id {
			return &post, nil
		}
	}
	return nil, store.ErrNotFound
}

// Search runs the shared matching contract against the full corpus.
func (r *postRepository) Search(ctx context.Context, query string) []models.Post {
	return search.Filter(query, r.GetAll(ctx))
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) (string, error) {
	id, err := r.store.Create(ctx, PostsCollection, recordFromPost(post))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *postRepository) Update(ctx context.Context, id string, partial store.Record) error {
	return r.store.Update(ctx, PostsCollection, id, partial)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, PostsCollection, id)
}

// filterFeatured is the in-memory equivalent of the compound featured query.
func filterFeatured(posts []models.Post) []models.Post {
	featured := []models.Post{}
	for _, post := range posts {
		if post.IsActive && post.IsFeatured {
			featured = append(featured, post)
		}
	}
	sortByRecency(featured)
	if len(featured) > FeaturedLimit {
		featured = featured[:FeaturedLimit]
	}
	return featured
}

// recency orders by the server creation stamp, falling back to the authored
// date for seed posts that never touched the store.
func recency(post models.Post) time.Time {
	if !post.CreatedAt.IsZero() {
		return post.CreatedAt
	}
	return post.Date
}

func sortByRecency(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return recency(posts[i]).After(recency(posts[j]))
	})
}
