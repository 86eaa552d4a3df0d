package main

import (
	"context"
	"fmt"
	"time"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/memory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/postgres"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/infrastructure/seed"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/config"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// backend repositorios y runner de transacciones del driver elegido.
type backend struct {
	tx         inventory.TxRunner
	products   repository.ProductRepository
	operations repository.OperationRepository
	moves      repository.MoveRepository
	alerts     repository.AlertRepository
	metrics    repository.MetricsRepository
	ping       func(ctx context.Context) error
	close      func()
}

// openStore punto de apertura usado por run; los tests lo reemplazan.
var openStore = openBackend

// openBackend con STORE_DRIVER=memory arranca con el catálogo demo y sin persistencia.
func openBackend(ctx context.Context, cfg *config.Config, log *logger.Logger) (*backend, error) {
	if cfg.App.StoreDriver == config.StoreDriverMemory {
		store := memory.NewStore()
		store.Load(seed.Demo(time.Now().UTC()))
		log.Warn().Msg("STORE_DRIVER=memory: los datos se pierden al reiniciar")
		return &backend{
			tx:         store,
			products:   store.Products(),
			operations: store.Operations(),
			moves:      store.Moves(),
			alerts:     store.Alerts(),
			metrics:    store.Metrics(),
			ping:       func(context.Context) error { return nil },
			close:      func() {},
		}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	if cfg.DB.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		log.Info().Strs("applied", applied).Msg("migraciones aplicadas")
	}
	return &backend{
		tx:         postgres.NewTxRunner(pool, cfg.DB.TxTimeout),
		products:   postgres.NewProductRepository(pool),
		operations: postgres.NewOperationRepository(pool),
		moves:      postgres.NewMoveRepository(pool),
		alerts:     postgres.NewAlertRepository(pool),
		metrics:    postgres.NewMetricsRepository(pool),
		ping:       pool.Ping,
		close:      pool.Close,
	}, nil
}
