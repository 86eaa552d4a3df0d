package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// ErrAlreadyFinalized la operación ya está en DONE o CANCELLED (inmutable).
	ErrAlreadyFinalized = fmt.Errorf("%w: operación ya finalizada", ErrConflict)
	// ErrInvalidTransition el cambio de estado solicitado no es legal.
	ErrInvalidTransition = fmt.Errorf("%w: transición de estado no permitida", ErrConflict)
	// ErrProductMissing un producto referenciado desapareció durante la finalización.
	ErrProductMissing = errors.New("producto referenciado no existe")
)
