package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry groups the pipeline's counters. Observability of the checkout
// funnel: attempts, outcomes, and callback processing.
type Registry struct {
	CheckoutAttempts  *prometheus.CounterVec
	GatewayCalls      *prometheus.CounterVec
	PaymentCallbacks  *prometheus.CounterVec
	PriceOverrides    prometheus.Counter
	RateFallbacks     prometheus.Counter
	BookingsExpired   prometheus.Counter
	registry          *prometheus.Registry
}

func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		CheckoutAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Checkout requests received, labeled by outcome.",
		}, []string{"outcome"}),
		GatewayCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_transactions_total",
			Help: "Gateway transaction-creation calls, labeled by outcome.",
		}, []string{"outcome"}),
		PaymentCallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_callbacks_total",
			Help: "Reconciliation callbacks processed, labeled by resulting booking status.",
		}, []string{"status"}),
		PriceOverrides: factory.NewCounter(prometheus.CounterOpts{
			Name: "price_overrides_total",
			Help: "Checkouts where a client-claimed price was overridden by the authoritative one.",
		}),
		RateFallbacks: factory.NewCounter(prometheus.CounterOpts{
			Name: "exchange_rate_fallbacks_total",
			Help: "Conversions priced with the cached reference rate after a live lookup failure.",
		}),
		BookingsExpired: factory.NewCounter(prometheus.CounterOpts{
			Name: "bookings_expired_total",
			Help: "Pending bookings expired by the sweeper.",
		}),
		registry: reg,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
