package seed

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
)

func TestReadProductsCSV_OK(t *testing.T) {
	now := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	in := "sku,name,category,quantity,min_threshold,price\n" +
		"BOX-1, Caja grande ,Empaque,12,4,3.50\n" +
		"TAPE-1,Cinta,Empaque,0,10,1\n"
	list, err := ReadProductsCSV(strings.NewReader(in), "", DemoStockID, now)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "BOX-1", list[0].SKU)
	assert.Equal(t, "Caja grande", list[0].Name)
	assert.Equal(t, int64(12), list[0].Quantity)
	assert.Equal(t, int64(4), list[0].MinThreshold)
	assert.Equal(t, "3.5", list[0].Price.String())
	assert.Equal(t, DemoStockID, list[0].LocationID)
	assert.NotEmpty(t, list[0].ID)
	assert.Equal(t, now, list[1].CreatedAt)
}

func TestReadProductsCSV_Latin1(t *testing.T) {
	raw := "sku,name,category,quantity,min_threshold,price\nTAZ-1,Taza café,Cocina,1,1,2\n"
	encoded, err := charmap.ISO8859_1.NewEncoder().String(raw)
	require.NoError(t, err)

	list, err := ReadProductsCSV(strings.NewReader(encoded), "ISO-8859-1", "", time.Now())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Taza café", list[0].Name)
}

func TestReadProductsCSV_Errores(t *testing.T) {
	cases := map[string]string{
		"falta columna":     "sku,name,quantity\nA,B,1\n",
		"cantidad negativa": "sku,name,category,quantity,min_threshold,price\nA,B,C,-1,0,1\n",
		"precio inválido":   "sku,name,category,quantity,min_threshold,price\nA,B,C,1,0,abc\n",
		"sku repetido":      "sku,name,category,quantity,min_threshold,price\nA,B,C,1,0,1\nA,D,C,1,0,1\n",
		"vacío":             "",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadProductsCSV(strings.NewReader(in), "", "", time.Now())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}
}

func TestDemo_ProductosEnStock(t *testing.T) {
	c := Demo(time.Now())
	require.Len(t, c.Warehouses, 1)
	require.Len(t, c.Locations, 2)
	for _, p := range c.Products {
		assert.Equal(t, DemoStockID, p.LocationID)
	}
}
