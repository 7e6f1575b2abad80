package catalog

import (
	"context"
	"strings"

	"github.com/arjunalabs/pos-backend/internal/modules/user"
)

// Filter narrows a catalog listing: store context gates category visibility,
// Search matches item names case-insensitively, CategoryID pins one category
// (zero means all visible ones).
type Filter struct {
	Store      user.StoreContext
	Search     string
	CategoryID int
}

// Service defines catalog business logic.
type Service interface {
	ListItems(ctx context.Context, f Filter) ([]Item, error)
	ListCategories(ctx context.Context, store user.StoreContext) ([]Category, error)
	GetItem(ctx context.Context, id int) (*Item, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) ListItems(ctx context.Context, f Filter) ([]Item, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(f.Search)
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !categoryVisible(f.Store, it.CategoryID) {
			continue
		}
		if f.CategoryID != 0 && it.CategoryID != f.CategoryID {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(it.Name), search) {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

func (s *service) ListCategories(ctx context.Context, store user.StoreContext) ([]Category, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(cats))
	for _, c := range cats {
		if categoryVisible(store, c.ID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *service) GetItem(ctx context.Context, id int) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func categoryVisible(store user.StoreContext, categoryID int) bool {
	switch store {
	case user.StorePrinting:
		return categoryID == CategoryPrinting || categoryID == CategoryShared
	case user.StoreRetail:
		return categoryID == CategoryRetail || categoryID == CategoryShared
	default:
		return true
	}
}
