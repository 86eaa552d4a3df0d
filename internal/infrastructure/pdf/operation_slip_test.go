package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/inventory"
)

func TestRenderOperationSlip_GeneraPDF(t *testing.T) {
	g := NewSlipGenerator("stockflow")
	out, err := g.RenderOperationSlip(inventory.SlipData{
		Reference:    "WH/IN/0001",
		Type:         "Receipt",
		Status:       "DONE",
		Source:       "Vendor",
		Destination:  "WH/Stock",
		Contact:      "Azure Interior",
		ScheduleDate: "2025-01-02",
		ValidatedAt:  "2025-01-02 10:00",
		GeneratedAt:  time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC),
		Lines: []inventory.SlipLine{
			{SKU: "DESK-001", Name: "Office Desk", Quantity: 5, Done: 5, UnitPrice: decimal.RequireFromString("149.90")},
			{SKU: "", Name: "producto-borrado", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":         "0.00",
		"149.9":     "149.90",
		"1234":      "1,234.00",
		"1234567.5": "1,234,567.50",
		"-9876.125": "-9,876.13",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(decimal.RequireFromString(in)), in)
	}
}

func TestLineTotal_UsaHechoSiExiste(t *testing.T) {
	price := decimal.NewFromInt(10)
	assert.Equal(t, "50", lineTotal(inventory.SlipLine{Quantity: 5, UnitPrice: price}).String())
	assert.Equal(t, "30", lineTotal(inventory.SlipLine{Quantity: 5, Done: 3, UnitPrice: price}).String())
	assert.Equal(t, "80", slipTotal([]inventory.SlipLine{
		{Quantity: 5, UnitPrice: price},
		{Quantity: 5, Done: 3, UnitPrice: price},
	}).String())
}
