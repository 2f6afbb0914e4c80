package menu

import "context"

type ListOpts struct {
	Category string
	Limit    int
	Offset   int
}

// Store owns the catalog. Implementations must preserve item order: the
// recommendation engine's tie-break is catalog position.
type Store interface {
	PutCatalog(ctx context.Context, c Catalog) error
	GetCatalog(ctx context.Context) (Catalog, error)
	ListItems(ctx context.Context, opts ListOpts) ([]MenuItem, error)
	GetItem(ctx context.Context, id string) (MenuItem, error)
}
