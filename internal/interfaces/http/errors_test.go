package http

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("%w: x", domain.ErrInvalidInput), 400, "VALIDATION"},
		{domain.ErrNotFound, 404, "NOT_FOUND"},
		{fmt.Errorf("finalizar: %w", domain.ErrAlreadyFinalized), 409, "ALREADY_FINALIZED"},
		{domain.ErrInvalidTransition, 409, "INVALID_TRANSITION"},
		{domain.ErrDuplicate, 409, "DUPLICATE"},
		{domain.ErrConflict, 409, "CONFLICT"},
		{fmt.Errorf("línea 1: %w", domain.ErrProductMissing), 422, "PRODUCT_MISSING"},
		{inventory.ErrSlipDisabled, 501, "SLIP_DISABLED"},
		{context.DeadlineExceeded, 503, "TIMEOUT"},
		{errors.New("boom"), 500, "INTERNAL"},
	}
	for _, tc := range cases {
		status, code := classify(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, code, tc.err.Error())
	}
}
