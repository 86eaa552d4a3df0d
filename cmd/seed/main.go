// seed carga el catálogo inicial en PostgreSQL: la bodega demo (WH, WH/Stock, WH/Shelf-A)
// y opcionalmente productos desde un CSV.
//
// Uso: go run ./cmd/seed [productos.csv] [charset]
// El CSV lleva encabezado sku,name,category,quantity,min_threshold,price y sus productos
// quedan en WH/Stock. charset ISO-8859-1 para exportaciones en Latin-1; por defecto UTF-8.
// Aplica las migraciones pendientes antes de insertar.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/postgres"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/seed"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		return err
	}
	for _, name := range applied {
		fmt.Println("migración aplicada:", name)
	}

	now := time.Now().UTC()
	catalog := seed.Demo(now)
	if len(os.Args) > 1 {
		charset := ""
		if len(os.Args) > 2 {
			charset = os.Args[2]
		}
		f, err := os.Open(os.Args[1])
		if err != nil {
			return fmt.Errorf("abrir CSV: %w", err)
		}
		defer f.Close()
		products, err := seed.ReadProductsCSV(f, charset, seed.DemoStockID, now)
		if err != nil {
			return err
		}
		catalog.Products = append(catalog.Products, products...)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := postgres.LoadCatalog(ctx, tx, catalog); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	fmt.Printf("catálogo cargado: %d bodegas, %d ubicaciones, %d productos\n",
		len(catalog.Warehouses), len(catalog.Locations), len(catalog.Products))
	return nil
}
