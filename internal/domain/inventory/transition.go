package inventory

import (
	"fmt"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// allowedTransitions transiciones legales sin pasar por el finalizador.
// DONE no aparece: solo se alcanza vía Finalize desde cualquier estado no final.
var allowedTransitions = map[entity.OperationStatus][]entity.OperationStatus{
	entity.StatusDraft:   {entity.StatusWaiting, entity.StatusReady, entity.StatusCancelled},
	entity.StatusWaiting: {entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:   {entity.StatusCancelled},
}

// ParseStatus valida un estado recibido desde fuera del dominio.
func ParseStatus(s string) (entity.OperationStatus, error) {
	for _, st := range entity.OperationStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, s)
}

// ParseType valida un tipo de operación recibido desde fuera del dominio.
func ParseType(s string) (entity.OperationType, error) {
	for _, t := range entity.OperationTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: tipo de operación desconocido %q", domain.ErrInvalidInput, s)
}

// CheckTransition valida el paso from -> to.
// Retorna ErrAlreadyFinalized si from es terminal y ErrInvalidTransition si el paso no es legal.
func CheckTransition(from, to entity.OperationStatus) error {
	if from.IsFinal() {
		return fmt.Errorf("%w (estado actual %s)", domain.ErrAlreadyFinalized, from)
	}
	if to == entity.StatusDone {
		return nil
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
}

// Availability READY si el stock cubre cada ítem, WAITING si no.
// Sin ítems la operación queda en DRAFT.
func Availability(items []entity.OperationItem, onHand map[string]int64) entity.OperationStatus {
	if len(items) == 0 {
		return entity.StatusDraft
	}
	for _, it := range items {
		if it.Quantity > onHand[it.ProductID] {
			return entity.StatusWaiting
		}
	}
	return entity.StatusReady
}
