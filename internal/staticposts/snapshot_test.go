package staticposts

import (
	"testing"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedReturnsFreshCopies(t *testing.T) {
	first := Seed()
	require.NotEmpty(t, first)

	first[0].Title = "mutated"
	assert.NotEqual(t, "mutated", Seed()[0].Title)
}

func TestSeedShapes(t *testing.T) {
	featured := 0
	for _, post := range Seed() {
		assert.NotEmpty(t, post.ID)
		assert.NotEmpty(t, post.Title)
		assert.True(t, models.IsValidCategory(post.Category), post.Category)
		assert.True(t, post.IsActive)
		if post.IsFeatured {
			featured++
		}
	}
	assert.LessOrEqual(t, featured, 3)
}

func TestSnapshotStartsSeeded(t *testing.T) {
	s := NewSnapshot()
	assert.Equal(t, Seed(), s.Posts())
}

func TestSnapshotSetReplacesDataset(t *testing.T) {
	s := NewSnapshot()

	fresh := []models.Post{{ID: "remote-1", Title: "from the store", IsActive: true}}
	s.Set(fresh)

	got := s.Posts()
	require.Len(t, got, 1)
	assert.Equal(t, "remote-1", got[0].ID)

	// Callers get copies, not the backing slice.
	got[0].Title = "mutated"
	assert.Equal(t, "from the store", s.Posts()[0].Title)

	// And later mutation of the input must not leak in.
	fresh[0].Title = "mutated input"
	assert.Equal(t, "from the store", s.Posts()[0].Title)
}
