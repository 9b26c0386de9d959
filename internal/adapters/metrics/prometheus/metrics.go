package prometheus

import (
	"net/http"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "swapbot"

// Metrics records bot activity on a private registry.
type Metrics struct {
	registry     *prometheus.Registry
	proposals    *prometheus.CounterVec
	sessions     *prometheus.CounterVec
	items        *prometheus.CounterVec
	chatsIgnored prometheus.Counter
	offerRuns    prometheus.Counter
}

var _ ports.Metrics = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}
	m.proposals = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trade_proposals_total",
		Help:      "Trade proposals by gatekeeper outcome.",
	}, []string{"outcome"})
	m.sessions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trade_sessions_total",
		Help:      "Finished trade sessions by end status.",
	}, []string{"status"})
	m.items = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trade_items_total",
		Help:      "Items recorded from completed trades.",
	}, []string{"direction"})
	m.chatsIgnored = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trade_chats_ignored_total",
		Help:      "Trade chat lines dropped by the spam ceiling.",
	})
	m.offerRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "offer_runs_total",
		Help:      "Offer helper launches.",
	})

	m.registry.MustRegister(m.proposals, m.sessions, m.items, m.chatsIgnored, m.offerRuns)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ProposalDecided(outcome string) {
	m.proposals.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SessionEnded(status domain.SessionStatus) {
	m.sessions.WithLabelValues(string(status)).Inc()
}

func (m *Metrics) ItemsRecorded(claimed bool, n int) {
	if n <= 0 {
		return
	}

	direction := "given"
	if claimed {
		direction = "claimed"
	}
	m.items.WithLabelValues(direction).Add(float64(n))
}

func (m *Metrics) ChatIgnored() {
	m.chatsIgnored.Inc()
}

func (m *Metrics) OfferRunStarted() {
	m.offerRuns.Inc()
}
