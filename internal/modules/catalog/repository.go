package catalog

import "context"

// Repository defines data access for the product catalog.
type Repository interface {
	ListItems(ctx context.Context) ([]Item, error)
	ListCategories(ctx context.Context) ([]Category, error)
	GetItem(ctx context.Context, id int) (*Item, error)
}
