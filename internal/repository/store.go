package repository

import "github.com/samber/lo"

// store is an insertion-ordered registry keyed by id. It is the single
// owner of the values it holds; everything else refers to them by key.
type store[T any] struct {
	order []string
	items map[string]*T
}

func newStore[T any]() *store[T] {
	return &store[T]{items: make(map[string]*T)}
}

func (s *store[T]) insert(key string, v *T) bool {
	if _, ok := s.items[key]; ok {
		return false
	}
	s.items[key] = v
	s.order = append(s.order, key)
	return true
}

func (s *store[T]) get(key string) (*T, bool) {
	v, ok := s.items[key]
	return v, ok
}

func (s *store[T]) remove(key string) bool {
	if _, ok := s.items[key]; !ok {
		return false
	}
	delete(s.items, key)
	s.order = lo.Without(s.order, key)
	return true
}

func (s *store[T]) list() []*T {
	out := make([]*T, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.items[key])
	}
	return out
}
