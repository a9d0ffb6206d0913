package transfer

import "github.com/psaswat/testyourmodels/internal/models"

// Result is the uniform shape every mutating boundary resolves to, so callers
// can render inline error state without a try/catch at each call site.
type Result struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
}

func Ok(id string) Result {
	return Result{Success: true, ID: id}
}

func Fail(err string) Result {
	return Result{Success: false, Error: err}
}

type PostCreation struct {
	Title         string                `json:"title"`
	Summary       string                `json:"summary"`
	Content       string                `json:"content"`
	Category      string                `json:"category"`
	Image         string                `json:"image"`
	MediaVersions []models.MediaVersion `json:"mediaVersions"`
	Date          string                `json:"date"`
	IsFeatured    bool                  `json:"isFeatured"`
	IsActive      *bool                 `json:"isActive"` // defaults to true when omitted
	Tags          []string              `json:"tags"`
}

// PostUpdate carries a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title         *string                `json:"title"`
	Summary       *string                `json:"summary"`
	Content       *string                `json:"content"`
	Category      *string                `json:"category"`
	Image         *string                `json:"image"`
	MediaVersions *[]models.MediaVersion `json:"mediaVersions"`
	IsFeatured    *bool                  `json:"isFeatured"`
	IsActive      *bool                  `json:"isActive"`
	Tags          *[]string              `json:"tags"`
}

type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type UploadResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Path     string `json:"path,omitempty"`
	Error    string `json:"error,omitempty"`
}
