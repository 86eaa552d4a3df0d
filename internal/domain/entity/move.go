package entity

import "time"

// MoveDirection sentido del movimiento en el libro de stock.
type MoveDirection string

const (
	DirectionIn       MoveDirection = "IN"
	DirectionOut      MoveDirection = "OUT"
	DirectionInternal MoveDirection = "INTERNAL"
)

// MoveStatusDone estado con el que el finalizador registra los movimientos.
const MoveStatusDone = "DONE"

// Move entrada inmutable del libro de stock. Solo la crea el finalizador, una por ítem.
type Move struct {
	ID                    string
	OperationID           string
	OperationItemID       string
	ProductID             string
	Quantity              int64
	Direction             MoveDirection
	SourceLocationID      string
	DestinationLocationID string
	Contact               string
	Status                string
	CreatedAt             time.Time
}
