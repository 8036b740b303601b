package instance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcileTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_hub_instance_reconcile_total",
		Help: "Config reconciliations by document and outcome",
	}, []string{"document", "outcome"})

	restartTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sync_hub_instance_restart_total",
		Help: "Instance restarts caused by a changed config",
	})

	orchestrationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_hub_instance_orchestration_failures_total",
		Help: "Failed orchestration commands by action",
	}, []string{"action"})
)
