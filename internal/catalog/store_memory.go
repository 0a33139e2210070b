package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// MemStore keeps the catalog in process memory. Products live in a map
// keyed by id, with a parallel slice preserving insertion order so list
// responses stay stable across calls. IDs come from a counter that only
// moves forward, so a deleted id is never handed out again.
type MemStore struct {
	mu         sync.RWMutex
	products   map[string]Product
	ids        []string
	users      []User
	categories []Category
	nextID     int
}

// NewMemStore returns a store pre-populated with the demo catalog. Every
// seed user gets the same bcrypt hash of DemoPassword.
func NewMemStore() (*MemStore, error) {
	s := &MemStore{
		products:   make(map[string]Product),
		categories: seedCategories(),
		nextID:     1,
	}

	for _, p := range seedProducts() {
		s.products[p.ID] = p
		s.ids = append(s.ids, p.ID)
		if n, err := strconv.Atoi(p.ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	for _, u := range seedUsers() {
		u.PasswordHash = hash
		s.users = append(s.users, u)
	}

	return s, nil
}

func (s *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *MemStore) GetProduct(ctx context.Context, id string) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok, nil
}

func (s *MemStore) InsertProduct(ctx context.Context, p Product) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = strconv.Itoa(s.nextID)
	s.nextID++

	s.products[p.ID] = p
	s.ids = append(s.ids, p.ID)
	return p, nil
}

func (s *MemStore) UpdateProduct(ctx context.Context, id string, patch ProductPatch) (Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, false, nil
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Subcategory != nil {
		p.Subcategory = *patch.Subcategory
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}

	s.products[id] = p
	return p, true, nil
}

func (s *MemStore) DeleteProduct(ctx context.Context, id string) (Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, false, nil
	}

	delete(s.products, id)
	for i, v := range s.ids {
		if v == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return p, true, nil
}

func (s *MemStore) Categories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}

func (s *MemStore) ListUsers(ctx context.Context) ([]User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemStore) GetUserByEmail(ctx context.Context, email string) (User, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.ToLower(u.Email) == email {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }
