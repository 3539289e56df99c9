package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/marketing-site-api/internal/models"
)

func TestNewPost_Defaults(t *testing.T) {
	post := models.NewPost(map[string]any{"title": "Hello"})

	if post.ID == "" {
		t.Error("Expected a generated ID")
	}
	if post.Status != models.StatusDraft {
		t.Errorf("Expected default status draft, got %q", post.Status)
	}
	if post.CreatedAt != time.Now().Format(models.DateFormat) {
		t.Errorf("Expected today's date, got %q", post.CreatedAt)
	}
}

func TestNewPost_UniqueIDs(t *testing.T) {
	a := models.NewPost(nil)
	b := models.NewPost(nil)
	if a.ID == b.ID {
		t.Errorf("Expected unique IDs, both were %q", a.ID)
	}
}

func TestPost_ApplyProtectsServerFields(t *testing.T) {
	post := models.NewPost(map[string]any{"title": "Original"})
	id, created := post.ID, post.CreatedAt

	post.Apply(map[string]any{
		"id":         "forged-id",
		"created_at": "1999-01-01",
		"title":      "Changed",
	})

	if post.ID != id {
		t.Errorf("ID must not be overwritable, got %q", post.ID)
	}
	if post.CreatedAt != created {
		t.Errorf("CreatedAt must not be overwritable, got %q", post.CreatedAt)
	}
	if post.Title != "Changed" {
		t.Errorf("Expected title 'Changed', got %q", post.Title)
	}
}

func TestPost_ArbitraryFieldsRoundTrip(t *testing.T) {
	post := models.NewPost(map[string]any{
		"title":      "With Extras",
		"status":     "published",
		"tags":       []string{"go", "web"},
		"hero_image": "/img/hero.png",
	})

	data, err := json.Marshal(post)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Extra fields appear flattened at the top level
	var flat map[string]any
	if err := json.Unmarshal(data, &flat); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if flat["hero_image"] != "/img/hero.png" {
		t.Errorf("Expected flattened extra field, got %v", flat["hero_image"])
	}
	if flat["status"] != "published" {
		t.Errorf("Expected status published, got %v", flat["status"])
	}

	var decoded models.Post
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal into Post failed: %v", err)
	}
	if decoded.ID != post.ID || decoded.Title != post.Title || decoded.Status != post.Status {
		t.Error("Known fields lost in round trip")
	}
	var tags []string
	if err := json.Unmarshal(decoded.Extra["tags"], &tags); err != nil || len(tags) != 2 {
		t.Errorf("Extra field 'tags' lost in round trip: %v %v", tags, err)
	}
}
