package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SweepUpdated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "comphub_sweep_updated_total", Help: "Competitions whose status changed during a lifecycle sweep"},
	)
	SweepFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "comphub_sweep_failures_total", Help: "Per-competition store failures during lifecycle sweeps"},
	)
	TeamsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "comphub_teams_created_total", Help: "Teams successfully registered"},
	)
	RosterRejections = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "comphub_roster_rejections_total", Help: "Team create/update requests rejected for unresolved registration codes"},
	)
	EventsConsumed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "comphub_events_consumed_total", Help: "Activity events drained from the queue"},
	)
)

// Register installs all counters on the default registry.
func Register() {
	prometheus.MustRegister(SweepUpdated, SweepFailures, TeamsCreated, RosterRejections, EventsConsumed)
}
