// Package memory implementa todos los repositorios en memoria con transacciones serializadas.
// Sirve para el driver STORE_DRIVER=memory y para los tests de casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

type state struct {
	warehouses map[string]entity.Warehouse
	locations  map[string]entity.Location
	products   map[string]entity.Product
	operations map[string]entity.Operation
	opOrder    []string // orden de inserción
	moves      []entity.Move
	alerts     []entity.Alert
	sequences  map[string]int64
}

func newState() *state {
	return &state{
		warehouses: make(map[string]entity.Warehouse),
		locations:  make(map[string]entity.Location),
		products:   make(map[string]entity.Product),
		operations: make(map[string]entity.Operation),
		sequences:  make(map[string]int64),
	}
}

func (s *state) clone() *state {
	c := &state{
		warehouses: make(map[string]entity.Warehouse, len(s.warehouses)),
		locations:  make(map[string]entity.Location, len(s.locations)),
		products:   make(map[string]entity.Product, len(s.products)),
		operations: make(map[string]entity.Operation, len(s.operations)),
		opOrder:    append([]string(nil), s.opOrder...),
		moves:      append([]entity.Move(nil), s.moves...),
		alerts:     make([]entity.Alert, len(s.alerts)),
		sequences:  make(map[string]int64, len(s.sequences)),
	}
	for k, v := range s.warehouses {
		c.warehouses[k] = v
	}
	for k, v := range s.locations {
		c.locations[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, v := range s.operations {
		c.operations[k] = copyOperation(v)
	}
	for i, a := range s.alerts {
		c.alerts[i] = copyAlert(a)
	}
	for k, v := range s.sequences {
		c.sequences[k] = v
	}
	return c
}

func copyOperation(op entity.Operation) entity.Operation {
	op.Items = append([]entity.OperationItem(nil), op.Items...)
	return op
}

func copyAlert(a entity.Alert) entity.Alert {
	if a.ResolvedAt != nil {
		at := *a.ResolvedAt
		a.ResolvedAt = &at
	}
	return a
}

// Store base de datos en memoria. Las transacciones se serializan con un único candado de
// escritura y trabajan sobre una copia que solo se publica al confirmar.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// view acceso al estado: dentro de una tx usa la copia de trabajo sin candado,
// fuera de ella toma el candado del store.
type view struct {
	s  *Store
	tx *state
}

func (v view) read(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return fn(v.s.st)
}

func (v view) write(fn func(st *state) error) error {
	if v.tx != nil {
		return fn(v.tx)
	}
	v.s.mu.Lock()
	defer v.s.mu.Unlock()
	return fn(v.s.st)
}

func (s *Store) root() view { return view{s: s} }

// Products repositorio de productos fuera de transacción.
func (s *Store) Products() *ProductRepo { return &ProductRepo{v: s.root()} }

// Locations repositorio de ubicaciones fuera de transacción.
func (s *Store) Locations() *LocationRepo { return &LocationRepo{v: s.root()} }

// Operations repositorio de operaciones fuera de transacción.
func (s *Store) Operations() *OperationRepo { return &OperationRepo{v: s.root()} }

// Moves repositorio de movimientos fuera de transacción.
func (s *Store) Moves() *MoveRepo { return &MoveRepo{v: s.root()} }

// Sequences contador de referencias fuera de transacción.
func (s *Store) Sequences() *SequenceRepo { return &SequenceRepo{v: s.root()} }

// Alerts repositorio de alertas.
func (s *Store) Alerts() *AlertRepo { return &AlertRepo{v: s.root()} }

// Metrics consultas del tablero.
func (s *Store) Metrics() *MetricsRepo { return &MetricsRepo{v: s.root()} }

var _ inventory.TxRunner = (*Store)(nil)

// Run ejecuta fn con repositorios sobre una copia del estado. Si fn falla o el contexto
// vence, la copia se descarta (rollback); si no, reemplaza al estado vigente (commit).
func (s *Store) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.st.clone()
	v := view{s: s, tx: work}
	if err := fn(inventory.TxRepos{
		Products:   &ProductRepo{v: v},
		Locations:  &LocationRepo{v: v},
		Operations: &OperationRepo{v: v},
		Moves:      &MoveRepo{v: v},
		Sequences:  &SequenceRepo{v: v},
	}); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.st = work
	return nil
}
