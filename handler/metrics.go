package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/charliez07/mini-market/domain"
)

var lifecycleOps = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "listing",
	Name:      "lifecycle_operations_total",
	Help:      "Item lifecycle operations by operation and result.",
}, []string{"operation", "result"})

func countOp(operation string, err error) {
	result := "ok"
	if err != nil {
		result = domain.KindOf(err).String()
	}
	lifecycleOps.WithLabelValues(operation, result).Inc()
}
