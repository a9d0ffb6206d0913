package media

import (
	"testing"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsVideoURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{name: "mp4 file", url: "https://cdn.example.com/clip.mp4", want: true},
		{name: "mov file uppercase", url: "https://cdn.example.com/CLIP.MOV", want: true},
		{name: "youtube watch", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: true},
		{name: "youtu.be short", url: "https://youtu.be/dQw4w9WgXcQ", want: true},
		{name: "vimeo", url: "https://vimeo.com/123456", want: true},
		{name: "dailymotion", url: "https://www.dailymotion.com/video/x2to0dw", want: true},
		{name: "plain image", url: "https://cdn.example.com/photo.jpg", want: false},
		{name: "empty", url: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsVideoURL(tt.url))
		})
	}
}

func TestYouTubeThumbnail(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "watch url with v param",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name: "v param with trailing params",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name: "short url",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name: "short url with query",
			url:  "https://youtu.be/dQw4w9WgXcQ?si=abc",
			want: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		},
		{
			name: "no id",
			url:  "https://www.youtube.com/feed/subscriptions",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, YouTubeThumbnail(tt.url))
		})
	}
}

func TestVimeoThumbnail(t *testing.T) {
	assert.Equal(t, "https://vumbnail.com/123456.jpg", VimeoThumbnail("https://vimeo.com/123456"))
	assert.Equal(t, "https://vumbnail.com/123456.jpg", VimeoThumbnail("https://vimeo.com/123456?autoplay=1"))
	assert.Equal(t, PlaceholderImage, VimeoThumbnail("https://vimeo.com/channels/staffpicks"))
	assert.Equal(t, PlaceholderImage, VimeoThumbnail("https://vimeo.com/"))
}

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		name    string
		version models.MediaVersion
		want    RenderKind
	}{
		{
			name:    "prompt wins regardless of url",
			version: models.MediaVersion{IsPrompt: true, URL: "https://youtu.be/dQw4w9WgXcQ", Content: "the prompt"},
			want:    KindPrompt,
		},
		{
			name:    "video by host",
			version: models.MediaVersion{URL: "https://youtu.be/dQw4w9WgXcQ"},
			want:    KindVideo,
		},
		{
			name:    "video by extension",
			version: models.MediaVersion{URL: "https://cdn.example.com/clip.webm"},
			want:    KindVideo,
		},
		{
			name:    "image otherwise",
			version: models.MediaVersion{URL: "https://cdn.example.com/photo.jpg"},
			want:    KindImage,
		},
		{
			name:    "empty url is placeholder",
			version: models.MediaVersion{},
			want:    KindPlaceholder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.version).Kind)
		})
	}
}

func TestDisplaySingleImageNoTabs(t *testing.T) {
	d := NewDisplay(nil, "https://x/y.jpg", nil)

	assert.False(t, d.HasTabs())
	rendering := d.Current()
	assert.Equal(t, KindImage, rendering.Kind)
	assert.Equal(t, "https://x/y.jpg", rendering.URL)
}

func TestDisplaySingleVersionPrefersVersionURL(t *testing.T) {
	versions := []models.MediaVersion{{ID: "A", URL: "https://cdn.example.com/only.png"}}
	d := NewDisplay(versions, "https://x/fallback.jpg", nil)

	assert.False(t, d.HasTabs())
	assert.Equal(t, "https://cdn.example.com/only.png", d.Current().URL)
}

func TestDisplayNoMediaAtAll(t *testing.T) {
	d := NewDisplay(nil, "", nil)
	assert.Equal(t, KindPlaceholder, d.Current().Kind)
}

func TestDisplayTabSelection(t *testing.T) {
	versions := []models.MediaVersion{
		{ID: "Prompt", Label: "Prompt", IsPrompt: true, Content: "copy me"},
		{ID: "A", Label: "Model A", URL: "https://youtu.be/dQw4w9WgXcQ", Content: "render notes"},
	}

	var contents []string
	d := NewDisplay(versions, "", func(content string) {
		contents = append(contents, content)
	})

	require.True(t, d.HasTabs())
	assert.Equal(t, 0, d.ActiveTab())
	assert.Equal(t, KindPrompt, d.Current().Kind)
	assert.Equal(t, []string{"copy me"}, contents)

	require.NoError(t, d.Select(1))
	assert.Equal(t, 1, d.ActiveTab())

	rendering := d.Current()
	assert.Equal(t, KindVideo, rendering.Kind)
	assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", rendering.Thumbnail)
	assert.Equal(t, []string{"copy me", "render notes"}, contents)
}

func TestDisplaySelectOutOfRange(t *testing.T) {
	versions := []models.MediaVersion{
		{ID: "Prompt", IsPrompt: true},
		{ID: "A", URL: "https://x/a.jpg"},
	}
	d := NewDisplay(versions, "", nil)

	assert.ErrorIs(t, d.Select(2), ErrTabOutOfRange)
	assert.ErrorIs(t, d.Select(-1), ErrTabOutOfRange)
	assert.Equal(t, 0, d.ActiveTab())
}
