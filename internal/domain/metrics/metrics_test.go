package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/rice-stock-api/internal/domain/metrics"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestTotalValue(t *testing.T) {
	assert.True(t, metrics.TotalValue(dec("100"), dec("2.50")).Equal(dec("250")))
	assert.True(t, metrics.TotalValue(decimal.Zero, dec("2.50")).IsZero())
}

func TestProfitLoss(t *testing.T) {
	// (3.00 - 2.50) * 40 = 20
	assert.True(t, metrics.ProfitLoss(dec("3.00"), dec("2.50"), dec("40")).Equal(dec("20")))
	// Vender por debajo del costo da pérdida negativa
	assert.True(t, metrics.ProfitLoss(dec("2.00"), dec("2.50"), dec("10")).Equal(dec("-5")))
}

func TestUtilization(t *testing.T) {
	assert.True(t, metrics.Utilization(dec("250"), dec("1000")).Equal(dec("25")))
	assert.True(t, metrics.Utilization(dec("1500"), dec("1000")).Equal(dec("150")),
		"la utilización puede superar 100")
	assert.True(t, metrics.Utilization(dec("100"), decimal.Zero).IsZero(),
		"capacidad cero no divide")
	assert.True(t, metrics.Utilization(dec("100"), dec("-5")).IsZero())
}

func TestClampPercent(t *testing.T) {
	assert.True(t, metrics.ClampPercent(dec("150")).Equal(dec("100")))
	assert.True(t, metrics.ClampPercent(dec("-10")).IsZero())
	assert.True(t, metrics.ClampPercent(dec("42")).Equal(dec("42")))
}

func TestStockLevelStatus(t *testing.T) {
	thresholds := metrics.Thresholds{Low: dec("25"), Medium: dec("50")}
	min := dec("100")

	cases := []struct {
		name     string
		quantity string
		want     string
	}{
		{"en cero", "0", metrics.StatusLow},
		{"justo en el umbral bajo", "25", metrics.StatusLow},
		{"apenas sobre el umbral bajo", "25.01", metrics.StatusMedium},
		{"justo en el umbral medio", "50", metrics.StatusMedium},
		{"apenas sobre el umbral medio", "50.01", metrics.StatusSafe},
		{"muy por encima", "300", metrics.StatusSafe},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, metrics.StockLevelStatus(dec(tc.quantity), min, thresholds))
		})
	}
}

func TestStockLevelStatus_SinMinimo(t *testing.T) {
	thresholds := metrics.Thresholds{Low: dec("25"), Medium: dec("50")}
	assert.Equal(t, metrics.StatusSafe, metrics.StockLevelStatus(dec("0"), decimal.Zero, thresholds),
		"sin nivel mínimo configurado el lote siempre es safe")
}
