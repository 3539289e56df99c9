package store

import "sync"

// SubscriberStore persists subscriber email addresses as a flat JSON array
// of strings
type SubscriberStore struct {
	path string
	mu   sync.Mutex
}

// NewSubscriberStore creates a subscriber store backed by the given file
func NewSubscriberStore(path string) *SubscriberStore {
	return &SubscriberStore{path: path}
}

// All returns every subscriber email in stored order
func (s *SubscriberStore) All() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Add appends the email if absent; a duplicate yields ErrConflict
func (s *SubscriberStore) Add(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emails, err := s.load()
	if err != nil {
		return err
	}
	for _, existing := range emails {
		if existing == email {
			return ErrConflict
		}
	}
	emails = append(emails, email)
	return writeFile(s.path, emails)
}

func (s *SubscriberStore) load() ([]string, error) {
	emails := []string{}
	if err := readFile(s.path, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}
