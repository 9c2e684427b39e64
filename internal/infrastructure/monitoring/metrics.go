package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Contadores de mutaciones del libro de inventario, etiquetados por tipo de
// operación (purchase, sale, transfer, adjustment).
var (
	MutationsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_mutations_applied_total",
		Help: "Mutaciones de inventario aplicadas y confirmadas.",
	}, []string{"operation"})

	MutationsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_mutations_rejected_total",
		Help: "Mutaciones de inventario rechazadas por validación o stock insuficiente.",
	}, []string{"operation"})
)
