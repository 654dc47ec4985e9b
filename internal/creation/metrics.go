package creation

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters of the creation flow.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	created         prometheus.Counter
	rejected        *prometheus.CounterVec
	items           *prometheus.CounterVec
	statFallbacks   prometheus.Counter
	skillsDiscarded prometheus.Counter
	namesReplaced   prometheus.Counter
	raceDowngrades  prometheus.Counter
}

// NewMetrics creates the counters and registers them in reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charcreate",
			Name:      "characters_created_total",
			Help:      "Characters created and placed in the world.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "charcreate",
			Name:      "requests_rejected_total",
			Help:      "Creation requests aborted without a character.",
		}, []string{"reason"}),
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "charcreate",
			Name:      "starter_items_total",
			Help:      "Starter items handed out, by final placement.",
		}, []string{"placement"}),
		statFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charcreate",
			Name:      "stat_fallbacks_total",
			Help:      "Custom stat requests reset to the minimum triple.",
		}),
		skillsDiscarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charcreate",
			Name:      "skills_discarded_total",
			Help:      "Custom skill distributions rejected by validation.",
		}),
		namesReplaced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charcreate",
			Name:      "names_replaced_total",
			Help:      "Names replaced by the fallback name.",
		}),
		raceDowngrades: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charcreate",
			Name:      "race_downgrades_total",
			Help:      "Requested races forced back to the default race.",
		}),
	}

	reg.MustRegister(m.created, m.rejected, m.items, m.statFallbacks,
		m.skillsDiscarded, m.namesReplaced, m.raceDowngrades)
	return m
}

func (m *Metrics) characterCreated() {
	if m != nil {
		m.created.Inc()
	}
}

func (m *Metrics) requestRejected(reason string) {
	if m != nil {
		m.rejected.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) itemPlaced(p Placement) {
	if m != nil {
		m.items.WithLabelValues(p.String()).Inc()
	}
}

func (m *Metrics) statFallback() {
	if m != nil {
		m.statFallbacks.Inc()
	}
}

func (m *Metrics) skillsDropped() {
	if m != nil {
		m.skillsDiscarded.Inc()
	}
}

func (m *Metrics) nameReplaced() {
	if m != nil {
		m.namesReplaced.Inc()
	}
}

func (m *Metrics) raceDowngraded() {
	if m != nil {
		m.raceDowngrades.Inc()
	}
}
