package catalog

import (
	"context"

	"github.com/arjunalabs/pos-backend/internal/apierr"
)

type memoryRepository struct {
	items      []Item
	categories []Category
}

// NewMemoryRepository creates a repository over the fixture collections.
func NewMemoryRepository(items []Item, categories []Category) Repository {
	return &memoryRepository{items: items, categories: categories}
}

func (r *memoryRepository) ListItems(ctx context.Context) ([]Item, error) {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepository) ListCategories(ctx context.Context) ([]Category, error) {
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memoryRepository) GetItem(ctx context.Context, id int) (*Item, error) {
	for _, it := range r.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, apierr.NotFound("no item with id %d", id)
}
