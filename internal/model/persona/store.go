package persona

import "strings"

// Store exposes persona retrieval for the chat surfaces.
type Store interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
}

// MemoryStore keeps personas in declaration order with an ID index.
type MemoryStore struct {
	items []Persona
	index map[string]int
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas.
// Later duplicates of an ID are ignored.
func NewMemoryStore(items []Persona) *MemoryStore {
	s := &MemoryStore{
		items: make([]Persona, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, item := range items {
		key := strings.ToLower(item.ID)
		if _, dup := s.index[key]; dup {
			continue
		}
		s.index[key] = len(s.items)
		s.items = append(s.items, item)
	}
	return s
}

// List returns a copy of the persona list.
func (s *MemoryStore) List() []Persona {
	return append([]Persona(nil), s.items...)
}

// FindByID looks up a persona by identifier, ignoring case.
func (s *MemoryStore) FindByID(id string) (Persona, bool) {
	idx, ok := s.index[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Persona{}, false
	}
	return s.items[idx], true
}
