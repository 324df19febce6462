package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var adminOperations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "admin_operations_total",
		Help: "Admin CRUD operations by entity, action and outcome",
	},
	[]string{"entity", "action", "outcome"},
)

// Record đếm một thao tác admin, err nil = thành công
func Record(entity, action string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	adminOperations.WithLabelValues(entity, action, outcome).Inc()
}
