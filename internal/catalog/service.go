package catalog

import (
	"github.com/jmoiron/sqlx"

	"salesdesk/internal/domain"
)

// Service is the catalog provider: the full product list is read once at
// startup and served from memory for the life of the process. The register
// trusts the catalog (unique ids, non-negative prices) and does not
// re-validate it.
type Service struct {
	products []domain.Product
	byID     map[int]domain.Product
}

// NewService loads every product, in catalog order.
func NewService(db *sqlx.DB) (*Service, error) {
	var out []domain.Product
	err := db.Select(&out, `
	  SELECT id, name, price, category, COALESCE(image,'') AS image
	  FROM products
	  ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	s := &Service{products: out, byID: make(map[int]domain.Product, len(out))}
	for _, p := range out {
		s.byID[p.ID] = p
	}
	return s, nil
}

// List returns the products for a category chip; "" or "all" means all.
func (s *Service) List(category string) []domain.Product {
	if category == "" || category == "all" {
		return s.products
	}
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct category names in first-seen order.
func (s *Service) Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range s.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

// Get looks up a product by id; ok is false for unknown ids.
func (s *Service) Get(id int) (domain.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}
