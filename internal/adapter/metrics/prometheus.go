package metrics

import (
	"net/http"
	"strconv"

	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bookstore"

type Metrics struct {
	registry       *prometheus.Registry
	ordersCreated  *prometheus.CounterVec
	ipnResults     *prometheus.CounterVec
	returnCallback *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders created at checkout by payment method.",
		}, []string{"method"}),
		ipnResults: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vnpay_ipn_total",
			Help:      "IPN notifications by response code.",
		}, []string{"code"}),
		returnCallback: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vnpay_return_total",
			Help:      "Browser return callbacks by signature validity.",
		}, []string{"valid"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ordersCreated,
		m.ipnResults,
		m.returnCallback,
	)
	return m
}

func (m *Metrics) OrderCreated(method domain.PaymentMethod) {
	m.ordersCreated.WithLabelValues(string(method)).Inc()
}

func (m *Metrics) IPNHandled(code string) {
	m.ipnResults.WithLabelValues(code).Inc()
}

func (m *Metrics) ReturnVerified(valid bool) {
	m.returnCallback.WithLabelValues(strconv.FormatBool(valid)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
