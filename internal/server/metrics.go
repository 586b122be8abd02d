package server

import (
	"slices"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ajithkoli/portfolio/internal/contact"
)

// Metrics counts page views and contact submissions. Nothing is stored
// per visitor; only aggregate counters exist.
type Metrics struct {
	Registry *prometheus.Registry

	PageViews    *prometheus.CounterVec
	Submissions  *prometheus.CounterVec
	SendDuration prometheus.Histogram
}

// NewMetrics registers the portfolio metrics plus the Go runtime collectors
// on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	return &Metrics{
		Registry: reg,
		PageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_page_views_total",
			Help: "Page requests, excluding static assets and visitors sending DNT",
		}, []string{"path"}),
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
		SendDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "portfolio_contact_send_duration_seconds",
			Help:    "Duration of calls to the email delivery service",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 15},
		}),
	}
}

// RecordSubmission implements contact.Recorder.
func (m *Metrics) RecordSubmission(outcome contact.Outcome, sendDuration time.Duration) {
	m.Submissions.WithLabelValues(outcome.String()).Inc()
	if outcome == contact.Sent || outcome == contact.Failed {
		m.SendDuration.Observe(sendDuration.Seconds())
	}
}

var untrackedPrefixes = []string{"/static/", "/images/", "/favicon", "/metrics", "/healthz", "/theme.css"}

// pageViews counts page requests. Static assets, operational endpoints and
// any extra paths given (the resume download) are skipped, and so is anyone
// sending Do Not Track.
func (m *Metrics) pageViews(extra ...string) gin.HandlerFunc {
	skip := slices.Clone(untrackedPrefixes)
	for _, p := range extra {
		if p != "" {
			skip = append(skip, p)
		}
	}
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range skip {
			if strings.HasPrefix(path, p) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		// Label by route template so project slugs do not explode cardinality.
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.PageViews.WithLabelValues(route).Inc()
	}
}
