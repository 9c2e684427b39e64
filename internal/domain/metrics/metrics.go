// Package metrics contiene las funciones puras de métricas derivadas del
// inventario. Se recalculan en cada lectura; nunca se almacenan, salvo el
// profit/loss que la venta congela al momento de registrarse.
package metrics

import "github.com/shopspring/decimal"

// Estados del nivel de stock respecto al mínimo configurado.
const (
	StatusLow    = "low"
	StatusMedium = "medium"
	StatusSafe   = "safe"
)

// Thresholds son los umbrales de nivel de stock, en porcentaje del nivel
// mínimo. Vienen de configuración, no se codifican en el dominio.
type Thresholds struct {
	Low    decimal.Decimal // por debajo: crítico
	Medium decimal.Decimal // por debajo: advertencia
}

// TotalValue devuelve el valor de un lote: cantidad * costo unitario.
func TotalValue(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// ProfitLoss devuelve la utilidad de una venta contra el costo base del lote:
// (precio de venta - costo unitario) * cantidad.
func ProfitLoss(salePrice, unitPrice, quantity decimal.Decimal) decimal.Decimal {
	return salePrice.Sub(unitPrice).Mul(quantity)
}

// Utilization devuelve la ocupación de una bodega como porcentaje de su
// capacidad. Capacidad <= 0 devuelve cero. El valor no se recorta aquí: el
// almacenamiento puede superar el 100%; recortar es asunto de presentación.
func Utilization(occupied, capacity decimal.Decimal) decimal.Decimal {
	if capacity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return occupied.Div(capacity).Mul(decimal.NewFromInt(100))
}

// ClampPercent recorta un porcentaje al rango [0, 100] para mostrarlo.
func ClampPercent(pct decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if pct.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}

// StockLevelStatus clasifica un lote según el porcentaje de su nivel mínimo:
// low si <= umbral bajo, medium si <= umbral medio, safe en el resto.
// Sin nivel mínimo configurado el lote se considera safe.
func StockLevelStatus(quantity, minimumLevel decimal.Decimal, t Thresholds) string {
	if minimumLevel.LessThanOrEqual(decimal.Zero) {
		return StatusSafe
	}
	pct := quantity.Div(minimumLevel).Mul(decimal.NewFromInt(100))
	switch {
	case pct.LessThanOrEqual(t.Low):
		return StatusLow
	case pct.LessThanOrEqual(t.Medium):
		return StatusMedium
	default:
		return StatusSafe
	}
}
