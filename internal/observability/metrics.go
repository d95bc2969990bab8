// Package observability holds the Prometheus collectors shared by the
// services and the HTTP layer. Collectors register with the default
// registry on init and are exposed through promhttp.Handler.
package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tagebuch"

// Word outcomes recorded by the vocabulary extractor.
const (
	WordNew     = "new"
	WordRepeat  = "repeat"
	WordSkipped = "skipped"
	WordFailed  = "failed"
)

var (
	extractedWords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "vocabulary",
		Name:      "tokens_total",
		Help:      "Tokens seen by the vocabulary extractor grouped by outcome.",
	}, []string{"outcome"})

	journalOps = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "operations_total",
		Help:      "Journal entry operations grouped by operation and result.",
	}, []string{"op", "result"})

	minutesPracticed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "progress",
		Name:      "minutes_practiced_total",
		Help:      "Practice minutes recorded into daily progress.",
	})

	lastEntryGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "journal",
		Name:      "last_entry_timestamp_seconds",
		Help:      "Unix timestamp of the most recent journal entry written.",
	})

	httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests grouped by method, route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency grouped by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	eventsPublished = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Domain events handed to the broker grouped by topic and result.",
	}, []string{"topic", "result"})
)

func init() {
	prometheus.MustRegister(
		extractedWords, journalOps, minutesPracticed, lastEntryGauge,
		httpRequests, httpDuration, eventsPublished,
	)
}

// RecordWord counts one extractor token outcome.
func RecordWord(outcome string) {
	extractedWords.WithLabelValues(outcome).Inc()
}

// RecordJournalOp counts one journal operation.
func RecordJournalOp(op string, err error) {
	journalOps.WithLabelValues(op, result(err)).Inc()
}

// RecordEntryWritten updates the last-entry gauge and adds practice minutes.
func RecordEntryWritten(ts time.Time, minutes int) {
	if minutes > 0 {
		minutesPracticed.Add(float64(minutes))
	}
	if ts.IsZero() {
		return
	}
	lastEntryGauge.Set(float64(ts.Unix()))
}

// RecordHTTPRequest observes one served request.
func RecordHTTPRequest(method, route string, status int, d time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// RecordPublish counts one event publish attempt.
func RecordPublish(topic string, err error) {
	eventsPublished.WithLabelValues(topic, result(err)).Inc()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
