// Package catalog is the in-memory product catalog behind the demo: the
// seeded store, the query functions the routes are built from, and the
// product HTTP API.
package catalog

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Featured    bool    `json:"featured"`
}

// User is mock account data. IsAuthenticated is part of the seed fixture,
// not a session state; the hash backs the demo login and never serializes.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	IsAuthenticated bool   `json:"is_authenticated"`
	PasswordHash    []byte `json:"-"`
}

// Category pairs a category name with its subcategories. Subcategory
// membership is a seed-data convention; the store never enforces it.
type Category struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// ProductPatch carries a partial update: nil fields keep the stored value.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Image       *string  `json:"image"`
	Stock       *int     `json:"stock"`
	Featured    *bool    `json:"featured"`
}
