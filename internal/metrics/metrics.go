// Package metrics records upstream and command telemetry via Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label names kept short and stable so dashboards survive refactors.
const (
	LabelHost    = "host"
	LabelOutcome = "outcome"
	LabelCommand = "command"

	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder captures counters and latencies for upstream requests and chat
// commands. A nil Recorder is a no-op so wiring stays optional in tests.
type Recorder struct {
	upstreamRequests *prometheus.CounterVec
	commandsTotal    *prometheus.CounterVec
	commandSeconds   *prometheus.HistogramVec
}

// NewRecorder registers the bot's metrics on the given registerer.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nhlbot_upstream_requests_total",
			Help: "Upstream HTTP requests by host and outcome.",
		}, []string{LabelHost, LabelOutcome}),
		commandsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "nhlbot_commands_total",
			Help: "Chat commands handled, by command and outcome.",
		}, []string{LabelCommand, LabelOutcome}),
		commandSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nhlbot_command_duration_seconds",
			Help:    "Command handling latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{LabelCommand}),
	}
}

// RecordUpstream counts one upstream request against a host.
func (r *Recorder) RecordUpstream(host string, err error) {
	if r == nil {
		return
	}
	r.upstreamRequests.WithLabelValues(host, outcome(err)).Inc()
}

// RecordCommand counts one handled command and observes its latency.
func (r *Recorder) RecordCommand(command string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.commandsTotal.WithLabelValues(command, outcome(err)).Inc()
	r.commandSeconds.WithLabelValues(command).Observe(duration.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return OutcomeError
	}
	return OutcomeOK
}
