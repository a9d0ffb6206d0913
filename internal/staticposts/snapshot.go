package staticposts

import (
	"sync"

	"github.com/psaswat/testyourmodels/internal/models"
)

// Snapshot is a Source whose dataset can be swapped atomically. It starts out
// seeded with the static dataset and is refreshed by the warm job with the
// latest successful full listing, so an outage serves the freshest data seen.
type Snapshot struct {
	mu    sync.RWMutex
	posts []models.Post
}

func NewSnapshot() *Snapshot {
	return &Snapshot{posts: Seed()}
}

func (s *Snapshot) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()

	posts := make([]models.Post, len(s.posts))
	copy(posts, s.posts)
	return posts
}

func (s *Snapshot) Set(posts []models.Post) {
	copied := make([]models.Post, len(posts))
	copy(copied, posts)

	s.mu.Lock()
	s.posts = copied
	s.mu.Unlock()
}
