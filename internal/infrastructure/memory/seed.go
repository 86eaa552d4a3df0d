package memory

import (
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/seed"
)

// Load agrega al store las bodegas, ubicaciones y productos del catálogo.
func (s *Store) Load(c seed.Catalog) {
	for _, w := range c.Warehouses {
		s.AddWarehouse(w)
	}
	for _, l := range c.Locations {
		s.AddLocation(l)
	}
	for _, p := range c.Products {
		s.AddProduct(p)
	}
}
