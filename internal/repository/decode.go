package repository

import (
	"time"

	"github.com/psaswat/testyourmodels/internal/models"
	"github.com/psaswat/testyourmodels/internal/store"
)

// Documents written by earlier clients are duck-typed: optional fields may be
// absent and dates may be stored as strings. Decoding happens once here, at
// the repository boundary, with the documented defaults (isActive true,
// isFeatured false) instead of being re-checked at every render site.

func postFromRecord(rec store.Record) models.Post {
	return models.Post{
		ID:            asString(rec["id"]),
		Title:         asString(rec["title"]),
		Summary:       asString(rec["summary"]),
		Content:       asString(rec["content"]),
		Category:      asString(rec["category"]),
		Image:         asString(rec["image"]),
		MediaVersions: mediaVersionsFrom(rec["mediaVersions"]),
		Date:          asTime(rec["date"]),
		IsFeatured:    asBool(rec["isFeatured"], false),
		IsActive:      asBool(rec["isActive"], true),
		Tags:          asStringSlice(rec["tags"]),
		CreatedAt:     asTime(rec["createdAt"]),
		UpdatedAt:     asTime(rec["updatedAt"]),
	}
}

func recordFromPost(post *models.Post) store.Record {
	rec := store.Record{
		"title":      post.Title,
		"summary":    post.Summary,
		"content":    post.Content,
		"category":   post.Category,
		"image":      post.Image,
		"date":       post.Date,
		"isFeatured": post.IsFeatured,
		"isActive":   post.IsActive,
	}
	if len(post.Tags) > 0 {
		rec["tags"] = post.Tags
	}
	if len(post.MediaVersions) > 0 {
		versions := make([]any, 0, len(post.MediaVersions))
		for _, v := range post.MediaVersions {
			versions = append(versions, map[string]any{
				"id":       v.ID,
				"label":    v.Label,
				"url":      v.URL,
				"type":     v.Type,
				"content":  v.Content,
				"isPrompt": v.IsPrompt,
			})
		}
		rec["mediaVersions"] = versions
	}
	return rec
}

func contactFromRecord(rec store.Record) models.ContactMessage {
	status := asString(rec["status"])
	if status == "" {
		status = models.ContactStatusNew
	}
	return models.ContactMessage{
		ID:        asString(rec["id"]),
		Name:      asString(rec["name"]),
		Email:     asString(rec["email"]),
		Subject:   asString(rec["subject"]),
		Message:   asString(rec["message"]),
		Status:    status,
		CreatedAt: asTime(rec["createdAt"]),
		UpdatedAt: asTime(rec["updatedAt"]),
	}
}

func mediaVersionsFrom(v any) []models.MediaVersion {
	items, ok := v.([]any)
	if !ok {
		return nil
	}

	versions := make([]models.MediaVersion, 0, len(items))
	for _, item := range items {
		doc, ok := item.(map[string]any)
		if !ok {
			continue
		}
		versions = append(versions, models.MediaVersion{
			ID:       asString(doc["id"]),
			Label:    asString(doc["label"]),
			URL:      asString(doc["url"]),
			Type:     asString(doc["type"]),
			Content:  asString(doc["content"]),
			IsPrompt: asBool(doc["isPrompt"], false),
		})
	}
	return versions
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any, defaultValue bool) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}

func asTime(v any) time.Time {
	switch val := v.(type) {
	case time.Time:
		return val
	case string:
		if t, err := time.Parse(time.RFC3339, val); err == nil {
			return t
		}
	}
	return time.Time{}
}

func asStringSlice(v any) []string {
	if strs, ok := v.([]string); ok {
		out := make([]string, len(strs))
		copy(out, strs)
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
