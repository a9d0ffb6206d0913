package staticposts

import (
	"time"

	"github.com/psaswat/testyourmodels/internal/models"
)

// Source supplies the dataset served when the backing store is unreachable.
// It sits behind the same repository interface as the remote store so tests
// can substitute their own.
type Source interface {
	Posts() []models.Post
}

// Static is the compiled-in seed dataset, newest first.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

func (s *Static) Posts() []models.Post {
	return Seed()
}

// Seed returns a fresh copy on every call so callers can filter in place.
func Seed() []models.Post {
	posts := make([]models.Post, len(seed))
	copy(posts, seed)
	return posts
}

var seed = []models.Post{
	{
		ID:       "static-1",
		Title:    "Comparing Video Generation Models on a Single Prompt",
		Summary:  "Five video models, one prompt. Side-by-side renders with the exact prompt text so you can reproduce every run.",
		Content:  "We fed the same cinematic prompt to five current video generation models and collected the raw, uncut output. The differences in motion coherence and prompt adherence are larger than the demo reels suggest. Each tab below holds one model's render; the first tab is the prompt itself, ready to copy.",
		Category: models.CategoryVideo,
		Image:    "https://images.unsplash.com/photo-1536240478700-b869070f9279?w=800&h=600&fit=crop",
		MediaVersions: []models.MediaVersion{
			{
				ID:       "Prompt",
				Label:    "Prompt",
				IsPrompt: true,
				Content:  "A slow dolly shot through a rain-soaked neon alley at night, puddles reflecting pink and cyan signage, a stray cat crossing the frame, shallow depth of field, 35mm film grain.",
			},
			{
				ID:      "A",
				Label:   "Model A",
				URL:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Type:    models.MediaTypeVideo,
				Content: "Model A keeps the dolly motion stable but loses the cat after six frames.",
			},
			{
				ID:      "B",
				Label:   "Model B",
				URL:     "https://images.unsplash.com/photo-1519681393784-d120267933ba?w=800&h=600&fit=crop",
				Type:    models.MediaTypeImage,
				Content: "Model B produced a single keyframe render; motion generation failed on this prompt.",
			},
		},
		Date:       mustDate("2024-03-02T09:00:00Z"),
		IsFeatured: true,
		IsActive:   true,
		Tags:       []string{"video", "benchmark"},
	},
	{
		ID:       "static-2",
		Title:    "How Well Do Music Models Follow Key Changes?",
		Summary:  "Testing melody continuation across a forced modulation from A minor to C major.",
		Content:  "Key changes are where music models fall apart. We wrote an eight-bar phrase with a modulation in bar five and asked three models to continue it. Only one resolved the cadence convincingly; the others drifted back to the original key within two bars.",
		Category: models.CategoryMusic,
		Image:    "https://images.unsplash.com/photo-1511379938547-c1f69419868d?w=800&h=600&fit=crop",
		Date:     mustDate("2024-02-18T14:30:00Z"),
		IsActive: true,
		Tags:     []string{"music", "benchmark"},
	},
	{
		ID:       "static-3",
		Title:    "Image Models and Hands: A 2024 Check-In",
		Summary:  "The hands problem is mostly solved. The text-in-image problem is not.",
		Content:  "A year ago every image model mangled fingers. Today the frontier models get hands right in roughly nine out of ten generations, but legible signage and typography remain unreliable. We show twenty generations per model for both tasks.",
		Category: models.CategoryImage,
		Image:    "https://images.unsplash.com/photo-1547891654-e66ed7ebb968?w=800&h=600&fit=crop",
		Date:     mustDate("2024-02-05T11:00:00Z"),
		IsActive: true,
	},
	{
		ID:       "static-4",
		Title:    "Deep Research Agents vs. a Reference Librarian",
		Summary:  "We gave the same five research questions to three agent products and a human professional.",
		Content:  "The agents were faster on every question and wrong on two of them. The librarian was slower and right on all five, but could not produce the forty-source bibliographies the agents emitted in minutes. The interesting result is how differently they fail: agents fabricate citations that look plausible; the human simply says the source does not exist.",
		Category: models.CategoryDeepResearch,
		Image:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=800&h=600&fit=crop",
		Date:     mustDate("2024-01-22T16:45:00Z"),
		IsActive: true,
		Tags:     []string{"agents", "evaluation"},
	},
	{
		ID:       "static-5",
		Title:    "Chain-of-Thought Length and Reasoning Accuracy",
		Summary:  "Longer reasoning traces help, until they don't. We measured where the curve bends.",
		Content:  "Across 400 logic puzzles we varied the reasoning budget given to each model and plotted accuracy against trace length. Accuracy climbs steeply up to a model-specific knee and then flattens or degrades as the model begins to second-guess correct intermediate results.",
		Category: models.CategoryReasoning,
		Image:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Date:     mustDate("2024-01-10T08:15:00Z"),
		IsActive: true,
	},
}

func mustDate(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
