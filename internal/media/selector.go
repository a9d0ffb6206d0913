// Package media resolves a post's display media from its versions: which tab
// is active, whether the selected version renders as a prompt block, a video
// or an image, and where video thumbnails come from. All computations are
// pure and re-entrant over already-fetched data.
package media

import (
	"errors"
	"strings"

	"github.com/psaswat/testyourmodels/internal/models"
)

type RenderKind string

const (
	KindPrompt      RenderKind = "prompt"
	KindVideo       RenderKind = "video"
	KindImage       RenderKind = "image"
	KindPlaceholder RenderKind = "placeholder"
)

// PlaceholderImage is shown whenever a media URL is absent or a thumbnail
// cannot be derived.
const PlaceholderImage = "https://images.unsplash.com/photo-1499750310107-5fef28a66643?w=800&h=600&fit=crop"

var ErrTabOutOfRange = errors.New("tab index out of range")

var videoExtensions = []string{".mp4", ".webm", ".ogg", ".avi", ".mov", ".wmv", ".flv"}

var videoHosts = []string{"youtube.com", "youtu.be", "vimeo.com", "dailymotion.com"}

// Rendering tells the caller how to display one resolved media version.
type Rendering struct {
	Kind      RenderKind `json:"kind"`
	URL       string     `json:"url,omitempty"`
	Thumbnail string     `json:"thumbnail,omitempty"`
	Content   string     `json:"content,omitempty"`
}

// Resolve maps a single version to its rendering. Evaluation order: prompt
// flag first (independent of URL), then video detection, then image; an empty
// URL yields the placeholder state rather than an error.
func Resolve(v models.MediaVersion) Rendering {
	if v.IsPrompt {
		return Rendering{Kind: KindPrompt, Content: v.Content}
	}

	if v.URL == "" {
		return Rendering{Kind: KindPlaceholder, Content: v.Content}
	}

	if IsVideoURL(v.URL) {
		return Rendering{
			Kind:      KindVideo,
			URL:       v.URL,
			Thumbnail: VideoThumbnail(v.URL),
			Content:   v.Content,
		}
	}

	return Rendering{Kind: KindImage, URL: v.URL, Content: v.Content}
}

// IsVideoURL reports whether the URL points at a video file or a known video
// host.
func IsVideoURL(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range videoExtensions {
		if strings.Contains(lower, ext) {
			return true
		}
	}
	for _, host := range videoHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// VideoThumbnail derives a poster image for a video URL. Direct video files
// get the placeholder; hosted videos get a host-specific thumbnail when the
// video id can be extracted.
func VideoThumbnail(url string) string {
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		if thumb := YouTubeThumbnail(url); thumb != "" {
			return thumb
		}
		return PlaceholderImage
	}
	if strings.Contains(url, "vimeo.com") {
		return VimeoThumbnail(url)
	}
	return PlaceholderImage
}

// YouTubeThumbnail extracts the video id from either the v= query parameter
// or the youtu.be path segment and returns the maxresdefault thumbnail URL,
// or "" when no id is present.
func YouTubeThumbnail(url string) string {
	id := youTubeID(url)
	if id == "" {
		return ""
	}
	return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
}

func youTubeID(url string) string {
	if strings.Contains(url, "youtu.be") {
		_, rest, found := strings.Cut(url, "youtu.be/")
		if !found {
			return ""
		}
		id, _, _ := strings.Cut(rest, "?")
		return id
	}

	_, rest, found := strings.Cut(url, "v=")
	if !found {
		return ""
	}
	id, _, _ := strings.Cut(rest, "&")
	return id
}

// VimeoThumbnail builds a thumbnail for a numeric Vimeo id via the vumbnail
// service, falling back to the placeholder when extraction fails.
func VimeoThumbnail(url string) string {
	_, rest, found := strings.Cut(url, "vimeo.com/")
	if !found {
		return PlaceholderImage
	}
	id, _, _ := strings.Cut(rest, "?")
	id, _, _ = strings.Cut(id, "/")
	if id == "" || !isDigits(id) {
		return PlaceholderImage
	}
	return "https://vumbnail.com/" + id + ".jpg"
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Display holds the tab-selection state for one post's media versions.
type Display struct {
	versions  []models.MediaVersion
	fallback  string
	active    int
	onContent func(string)
}

// NewDisplay builds the selection state. onContent may be nil; when set it is
// notified with the initial tab's content and again on every selection, so
// the page can render the accompanying text below the media.
func NewDisplay(versions []models.MediaVersion, fallbackImage string, onContent func(string)) *Display {
	d := &Display{
		versions:  versions,
		fallback:  fallbackImage,
		onContent: onContent,
	}
	if d.HasTabs() && onContent != nil {
		onContent(versions[0].Content)
	}
	return d
}

// HasTabs reports whether a tab control is shown. Zero or one version renders
// as a single media element without tabs.
func (d *Display) HasTabs() bool {
	return len(d.versions) > 1
}

func (d *Display) ActiveTab() int {
	return d.active
}

// Select switches the active tab and surfaces the selected version's content
// to the caller.
func (d *Display) Select(index int) error {
	if index < 0 || index >= len(d.versions) {
		return ErrTabOutOfRange
	}
	d.active = index
	if d.onContent != nil {
		d.onContent(d.versions[index].Content)
	}
	return nil
}

// Current resolves the rendering for the active tab. Without tabs the single
// resolved URL (the lone version's URL, or the fallback image) is rendered
// directly; an absent URL yields the placeholder state.
func (d *Display) Current() Rendering {
	if !d.HasTabs() {
		url := d.fallback
		if len(d.versions) == 1 {
			if d.versions[0].IsPrompt {
				return Resolve(d.versions[0])
			}
			if d.versions[0].URL != "" {
				url = d.versions[0].URL
			}
		}
		if url == "" {
			return Rendering{Kind: KindPlaceholder}
		}
		return Resolve(models.MediaVersion{URL: url})
	}
	return Resolve(d.versions[d.active])
}
