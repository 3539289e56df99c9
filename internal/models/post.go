package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publication state of a blog post
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

// ValidStatuses defines allowed post statuses
var ValidStatuses = map[PostStatus]bool{
	StatusDraft:     true,
	StatusPublished: true,
}

// DateFormat is the calendar-date layout used for CreatedAt
const DateFormat = "2006-01-02"

// Post represents a blog post record. Besides the known fields, authors may
// supply arbitrary extra fields which are preserved verbatim across store
// round trips in Extra.
type Post struct {
	ID        string
	Title     string
	Excerpt   string
	Body      string
	Status    PostStatus
	CreatedAt string
	Extra     map[string]json.RawMessage
}

// NewPost creates a post with a fresh identifier and today's date, applies
// the author-supplied fields, and defaults status to draft if unset.
func NewPost(fields map[string]any) Post {
	p := Post{
		ID:        uuid.New().String(),
		CreatedAt: time.Now().Format(DateFormat),
	}
	p.Apply(fields)
	if p.Status == "" {
		p.Status = StatusDraft
	}
	return p
}

// Apply shallow-merges the given fields over the post. The identifier and
// creation date are server-owned and cannot be overwritten.
func (p *Post) Apply(fields map[string]any) {
	for key, value := range fields {
		switch key {
		case "id", "created_at":
			// server-assigned
		case "title":
			p.Title = asString(value)
		case "excerpt":
			p.Excerpt = asString(value)
		case "body":
			p.Body = asString(value)
		case "status":
			p.Status = PostStatus(asString(value))
		default:
			raw, err := json.Marshal(value)
			if err != nil {
				continue
			}
			if p.Extra == nil {
				p.Extra = make(map[string]json.RawMessage)
			}
			p.Extra[key] = raw
		}
	}
}

// MarshalJSON flattens known fields and extra fields into one object
func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(p.Extra)+6)
	for key, value := range p.Extra {
		out[key] = value
	}
	for key, value := range map[string]string{
		"id":         p.ID,
		"title":      p.Title,
		"excerpt":    p.Excerpt,
		"body":       p.Body,
		"status":     string(p.Status),
		"created_at": p.CreatedAt,
	} {
		raw, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		out[key] = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON splits known fields out of the object and keeps the rest in Extra
func (p *Post) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	takeString := func(key string) string {
		value, ok := raw[key]
		if !ok {
			return ""
		}
		delete(raw, key)
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return ""
		}
		return s
	}

	p.ID = takeString("id")
	p.Title = takeString("title")
	p.Excerpt = takeString("excerpt")
	p.Body = takeString("body")
	p.Status = PostStatus(takeString("status"))
	p.CreatedAt = takeString("created_at")
	if len(raw) > 0 {
		p.Extra = raw
	} else {
		p.Extra = nil
	}
	return nil
}

func asString(value any) string {
	s, _ := value.(string)
	return s
}
