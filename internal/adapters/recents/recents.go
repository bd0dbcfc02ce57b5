// Package recents persists the short list of recent free-text searches
// to local storage: most-recent-first, deduplicated on insert, capped
package recents

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// MaxEntries is the cap on stored search terms
const MaxEntries = 5

// Store is a file-backed recent-search list. Writes are atomic
// (temp file then rename) so a crash never leaves a torn file
type Store struct {
	path string

	mu    sync.Mutex
	terms []string
}

// Open loads the store at path, creating parent directories as needed.
// A missing or unreadable file starts empty rather than failing; recents
// are a convenience, not data worth erroring over
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	s := &Store{path: path}
	b, err := os.ReadFile(path)
	if err == nil {
		var terms []string
		if json.Unmarshal(b, &terms) == nil {
			if len(terms) > MaxEntries {
				terms = terms[:MaxEntries]
			}
			s.terms = terms
		}
	}
	return s, nil
}

// List returns the stored terms, most recent first
func (s *Store) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.terms)
}

// Add records a search term at the front, removing any earlier duplicate
// and trimming to MaxEntries, then persists. Blank terms are ignored
func (s *Store) Add(term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, MaxEntries)
	out = append(out, term)
	for _, t := range s.terms {
		if t == term {
			continue
		}
		out = append(out, t)
		if len(out) == MaxEntries {
			break
		}
	}
	s.terms = out
	return s.save()
}

// Clear empties the list and persists
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms = nil
	return s.save()
}

// save writes the list atomically; callers hold the lock
func (s *Store) save() error {
	b, err := json.Marshal(s.terms)
	if err != nil {
		return err
	}
	tmp := s.path + ".part"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
