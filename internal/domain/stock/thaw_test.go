package stock_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Despensa-api/internal/domain/stock"
)

// Función escalonada con cortes en 2 y 5; monótona no decreciente.
func TestEstimateThawTime_Cortes(t *testing.T) {
	cases := []struct {
		qty  string
		want string
	}{
		{"0.5", stock.ThawShort},
		{"2", stock.ThawShort},
		{"2.1", stock.ThawMedium},
		{"5", stock.ThawMedium},
		{"5.01", stock.ThawLong},
		{"40", stock.ThawLong},
	}
	for _, c := range cases {
		got := stock.EstimateThawTime(decimal.RequireFromString(c.qty))
		assert.Equal(t, c.want, got, "cantidad %s", c.qty)
	}
}
