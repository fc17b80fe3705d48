package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "signup",
		Name:      "accepted_total",
		Help:      "Number of accepted signups per activity.",
	}, []string{"activity"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "signup",
		Name:      "rejected_total",
		Help:      "Number of rejected signups grouped by reason.",
	}, []string{"reason"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})

	lastSignupGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "last_signup_timestamp_seconds",
		Help:      "Unix timestamp of the most recent accepted signup.",
	})
)

func init() {
	prometheus.MustRegister(signupCounter, rejectedCounter, participantsGauge, lastSignupGauge)
}

// RecordSignup updates roster metrics after an accepted signup.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(rosterSize))
	lastSignupGauge.Set(float64(time.Now().Unix()))
}

// RecordSignupRejected counts a rejected signup by reason.
func RecordSignupRejected(reason string) {
	rejectedCounter.WithLabelValues(reason).Inc()
}

// SetRosterSize sets the roster gauge for an activity, used when seeding the store.
func SetRosterSize(activity string, size int) {
	participantsGauge.WithLabelValues(activity).Set(float64(size))
}
