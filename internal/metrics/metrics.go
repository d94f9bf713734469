package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_http_requests_total",
			Help: "Total HTTP requests by route and status",
		},
		[]string{"route", "status"},
	)
	LedgerErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_errors_total",
			Help: "Ledger operation failures by error kind",
		},
		[]string{"kind"},
	)
	EventsExpired = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ledger_events_expired_total",
			Help: "Events moved from SCHEDULED to EXPIRED by the sweep",
		},
	)
	StalePaymentsClosed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_stale_payments_closed_total",
			Help: "Stars-paid records closed after the pending payment TTL",
		},
		[]string{"target"},
	)
	RLRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_requests_total",
			Help: "Total requests seen by the rate limiter",
		},
		[]string{"endpoint"},
	)
	RLBlocked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_limiter_blocked_total",
			Help: "Total requests blocked by the rate limiter",
		},
		[]string{"endpoint"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, LedgerErrors, EventsExpired, StalePaymentsClosed, RLRequests, RLBlocked)
}
