package main

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sushihentaime/postly/internal/blogservice"
)

var (
	// HTTPRequestsTotal counts requests by method, route pattern and status code.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postly_http_requests_total",
		Help: "Total number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method and route pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "postly_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// BookmarkTogglesTotal counts bookmark toggles by the transition they made.
	BookmarkTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "postly_bookmark_toggles_total",
		Help: "Total number of bookmark toggles by result",
	}, []string{"result"})

	// PopularBlogsSize is the number of blogs returned by the last popular request.
	PopularBlogsSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "postly_popular_blogs_size",
		Help: "Number of blogs in the last popular ranking",
	})
)

func observeRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func observeToggle(res blogservice.BookmarkResult) {
	BookmarkTogglesTotal.WithLabelValues(res.String()).Inc()
}
