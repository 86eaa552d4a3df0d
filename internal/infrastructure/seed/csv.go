package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain"
	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/domain/entity"
)

// productColumns encabezado esperado del CSV.
var productColumns = []string{"sku", "name", "category", "quantity", "min_threshold", "price"}

// ReadProductsCSV lee productos con encabezado sku,name,category,quantity,min_threshold,price.
// charset "ISO-8859-1" decodifica exportaciones de hojas de cálculo en Latin-1; cualquier otro valor asume UTF-8.
// Los productos quedan asignados a locationID.
func ReadProductsCSV(r io.Reader, charset, locationID string, now time.Time) ([]entity.Product, error) {
	if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") || strings.EqualFold(charset, "latin1") {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: CSV sin encabezado", domain.ErrInvalidInput)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range productColumns {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %s", domain.ErrInvalidInput, col)
		}
	}

	var out []entity.Product
	seen := make(map[string]bool)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: %v", domain.ErrInvalidInput, line, err)
		}
		p, err := parseProduct(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("%w: línea %d: %v", domain.ErrInvalidInput, line, err)
		}
		if seen[p.SKU] {
			return nil, fmt.Errorf("%w: línea %d: SKU %s repetido", domain.ErrInvalidInput, line, p.SKU)
		}
		seen[p.SKU] = true
		p.ID = uuid.New().String()
		p.LocationID = locationID
		p.CreatedAt, p.UpdatedAt = now, now
		out = append(out, p)
	}
	return out, nil
}

func parseProduct(rec []string, idx map[string]int) (entity.Product, error) {
	get := func(col string) string { return strings.TrimSpace(rec[idx[col]]) }
	p := entity.Product{SKU: get("sku"), Name: get("name"), Category: get("category")}
	if p.SKU == "" || p.Name == "" {
		return p, errors.New("sku y name son obligatorios")
	}
	qty, err := strconv.ParseInt(get("quantity"), 10, 64)
	if err != nil || qty < 0 {
		return p, fmt.Errorf("quantity inválida %q", get("quantity"))
	}
	minT, err := strconv.ParseInt(get("min_threshold"), 10, 64)
	if err != nil || minT < 0 {
		return p, fmt.Errorf("min_threshold inválido %q", get("min_threshold"))
	}
	price, err := decimal.NewFromString(get("price"))
	if err != nil || price.IsNegative() {
		return p, fmt.Errorf("price inválido %q", get("price"))
	}
	p.Quantity, p.MinThreshold, p.Price = qty, minT, price
	return p, nil
}
