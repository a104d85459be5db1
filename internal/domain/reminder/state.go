package reminder

// ===============================
// Reminder State
// ===============================
//
// scheduled --(claimed, fire_at <= now)--> pending
// pending   --(>=1 send succeeded, or every attempt skipped)--> sent
// pending   --(attempts made, none succeeded)--> failed
// scheduled --(appointment cancelled / rescheduled / disabled)--> cancelled
//
// sent, failed and cancelled are terminal. pending never goes back to
// scheduled: a reminder whose terminal write failed stays pending so that a
// later scan cannot deliver it twice.

type State string

const (
	StateScheduled State = "scheduled"
	StatePending   State = "pending"
	StateSent      State = "sent"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

func (s State) Terminal() bool {
	switch s {
	case StateSent, StateFailed, StateCancelled:
		return true
	}
	return false
}
