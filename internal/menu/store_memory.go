package menu

import (
	"context"
	"errors"
	"sync"
)

type memoryStore struct {
	mu      sync.RWMutex
	catalog Catalog
}

// NewInMemoryStore keeps the catalog in process memory. Useful for tests and
// for running without a database.
func NewInMemoryStore() Store {
	return &memoryStore{}
}

func (m *memoryStore) PutCatalog(_ context.Context, c Catalog) error {
	items := make([]MenuItem, 0, len(c.Items))
	for _, it := range c.Items {
		if !it.Valid() {
			continue // fail-soft: one bad record must not sink the catalog
		}
		items = append(items, it)
	}
	c.Items = items

	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = c
	return nil
}

func (m *memoryStore) GetCatalog(_ context.Context) (Catalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	c := Catalog{
		Categories: append([]Category(nil), m.catalog.Categories...),
		Items:      append([]MenuItem(nil), m.catalog.Items...),
	}
	return c, nil
}

func (m *memoryStore) ListItems(_ context.Context, opts ListOpts) ([]MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]MenuItem, 0, len(m.catalog.Items))
	for _, it := range m.catalog.Items {
		if opts.Category != "" && it.Category != opts.Category {
			continue
		}
		out = append(out, it)
	}
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return []MenuItem{}, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && opts.Limit < len(out) {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *memoryStore) GetItem(_ context.Context, id string) (MenuItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, it := range m.catalog.Items {
		if it.ID == id {
			return it, nil
		}
	}
	return MenuItem{}, errors.New("item not found")
}
