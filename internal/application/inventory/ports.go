package inventory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción.
type TxRepos struct {
	Products   repository.ProductRepository
	Locations  repository.LocationRepository
	Operations repository.OperationRepository
	Moves      repository.MoveRepository
	Sequences  repository.SequenceRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn retorna error (o vence el contexto) se hace Rollback completo.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// SlipLine línea del comprobante de una operación.
type SlipLine struct {
	SKU       string
	Name      string
	Quantity  int64
	Done      int64
	UnitPrice decimal.Decimal
}

// SlipData datos ya formateados para el comprobante PDF.
type SlipData struct {
	Reference    string
	Type         string
	Status       string
	Source       string
	Destination  string
	Contact      string
	ScheduleDate string
	// ValidatedAt momento en que se aplicó el libro (vacío si no está en DONE).
	ValidatedAt string
	Lines       []SlipLine
	GeneratedAt time.Time
}

// SlipRenderer genera el PDF del comprobante de una operación.
type SlipRenderer interface {
	RenderOperationSlip(data SlipData) ([]byte, error)
}
