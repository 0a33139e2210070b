package catalog

import "context"

// Store is the catalog repository. Lookups report absence with the bool
// instead of an error so handlers can map it to 404 without unwrapping.
type Store interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (Product, bool, error)
	InsertProduct(ctx context.Context, p Product) (Product, error)
	UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, bool, error)
	DeleteProduct(ctx context.Context, id string) (Product, bool, error)

	Categories(ctx context.Context) ([]Category, error)

	ListUsers(ctx context.Context) ([]User, error)
	GetUserByEmail(ctx context.Context, email string) (User, bool, error)

	Ping(ctx context.Context) error
}
