package store

import (
	"sync"

	"github.com/marketing-site-api/internal/models"
)

// PostStore persists blog posts as a flat JSON array
type PostStore struct {
	path string
	mu   sync.Mutex
}

// NewPostStore creates a post store backed by the given file
func NewPostStore(path string) *PostStore {
	return &PostStore{path: path}
}

// All returns every post in stored order
func (s *PostStore) All() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Published returns only published posts, preserving stored order
func (s *PostStore) Published() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.load()
	if err != nil {
		return nil, err
	}
	published := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status == models.StatusPublished {
			published = append(published, p)
		}
	}
	return published, nil
}

// Insert appends a post and persists the whole store
func (s *PostStore) Insert(post models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.load()
	if err != nil {
		return err
	}
	posts = append(posts, post)
	return s.save(posts)
}

// Update locates the post by id, applies the mutation, and persists. The
// store file is left untouched when the id is unknown.
func (s *PostStore) Update(id string, mutate func(*models.Post)) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.load()
	if err != nil {
		return models.Post{}, err
	}
	for i := range posts {
		if posts[i].ID == id {
			mutate(&posts[i])
			if err := s.save(posts); err != nil {
				return models.Post{}, err
			}
			return posts[i], nil
		}
	}
	return models.Post{}, ErrNotFound
}

// Delete removes the post by id and persists
func (s *PostStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts, err := s.load()
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			return s.save(posts)
		}
	}
	return ErrNotFound
}

func (s *PostStore) load() ([]models.Post, error) {
	posts := []models.Post{}
	if err := readFile(s.path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostStore) save(posts []models.Post) error {
	return writeFile(s.path, posts)
}
