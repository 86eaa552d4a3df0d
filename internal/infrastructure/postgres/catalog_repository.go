package postgres

import (
	"context"
	"fmt"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/seed"
)

// LoadCatalog inserta o actualiza bodegas, ubicaciones y productos por código/SKU.
// En productos existentes no toca quantity: el stock solo cambia por operaciones finalizadas.
func LoadCatalog(ctx context.Context, q Querier, c seed.Catalog) error {
	for _, w := range c.Warehouses {
		_, err := q.Exec(ctx, `
			INSERT INTO warehouses (id, name, short_code, address, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			ON CONFLICT (short_code) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address, updated_at = now()`,
			w.ID, w.Name, w.ShortCode, w.Address, w.CreatedAt)
		if err != nil {
			return fmt.Errorf("upsert warehouse %s: %w", w.ShortCode, err)
		}
	}
	for _, l := range c.Locations {
		_, err := q.Exec(ctx, `
			INSERT INTO locations (id, name, short_code, warehouse_id)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (short_code) DO UPDATE SET name = EXCLUDED.name`,
			l.ID, l.Name, l.ShortCode, l.WarehouseID)
		if err != nil {
			return fmt.Errorf("upsert location %s: %w", l.ShortCode, err)
		}
	}
	for _, p := range c.Products {
		_, err := q.Exec(ctx, `
			INSERT INTO products (id, sku, name, category, quantity, min_threshold, price, location_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			ON CONFLICT (sku) DO UPDATE SET
				name = EXCLUDED.name, category = EXCLUDED.category,
				min_threshold = EXCLUDED.min_threshold, price = EXCLUDED.price, updated_at = now()`,
			p.ID, p.SKU, p.Name, p.Category, p.Quantity, p.MinThreshold, p.Price, nullable(p.LocationID), p.CreatedAt)
		if err != nil {
			return fmt.Errorf("upsert product %s: %w", p.SKU, err)
		}
	}
	return nil
}
