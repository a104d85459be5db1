package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ClaimTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reminder_claim_total", Help: "Claim attempts per scan."},
		[]string{"result"}, // claimed | lost | cancelled | error
	)
	DispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reminder_dispatch_total", Help: "Per-channel send outcomes."},
		[]string{"channel", "outcome"}, // email|sms|inapp x skipped|succeeded|failed
	)
	FinalizeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reminder_finalize_total", Help: "Reminders finalized per state."},
		[]string{"state"}, // sent | failed | stuck
	)
	ConflictChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "appointment_conflict_checks_total", Help: "Conflict check results."},
		[]string{"result"}, // clean | conflict | error
	)
)

func MustRegister() {
	prometheus.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		ClaimTotal, DispatchTotal, FinalizeTotal, ConflictChecks,
	)
}
