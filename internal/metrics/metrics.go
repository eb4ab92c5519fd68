package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quoridor"

type Metrics struct {
	RoomsCreated  prometheus.Counter
	RoomsEvicted  prometheus.Counter
	ActiveRooms   prometheus.Gauge
	Actions       *prometheus.CounterVec
	Rejections    *prometheus.CounterVec
	GamesFinished *prometheus.CounterVec
}

// New registers the match service collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RoomsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_created_total",
			Help:      "Rooms created.",
		}),
		RoomsEvicted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_evicted_total",
			Help:      "Rooms dropped from the store to make space.",
		}),
		ActiveRooms: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Rooms currently held in the store.",
		}),
		Actions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Committed actions by kind and actor.",
		}, []string{"kind", "actor"}),
		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejected_actions_total",
			Help:      "Rejected actions by reason.",
		}, []string{"reason"}),
		GamesFinished: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Finished games by winning seat.",
		}, []string{"seat"}),
	}
}

// Nop returns collectors registered nowhere.
func Nop() *Metrics { return New(prometheus.NewRegistry()) }
