package reminder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	apptdomain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/metrics"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/realtime"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/timezone"
)

// Engine drives the due-reminder scan on a fixed cadence. Each tick is
// independently idempotent through the conditional claim, so overlapping
// ticks (a slow scan plus the next timer firing) and process restarts are
// safe without any cross-tick lock.
type Engine struct {
	rems     domain.Repository
	disp     *Dispatcher
	rt       *realtime.Publisher
	interval time.Duration
	now      func() time.Time
}

func NewEngine(
	rems domain.Repository,
	disp *Dispatcher,
	rt *realtime.Publisher,
	interval time.Duration,
) *Engine {
	if interval <= 0 {
		interval = 60 * time.Second
	}
	return &Engine{
		rems:     rems,
		disp:     disp,
		rt:       rt,
		interval: interval,
		now:      timezone.Now,
	}
}

func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.Tick(ctx)
		}
	}
}

// Tick performs one scan. A failed scan is logged and retried on the next
// tick; it never takes the process down.
func (e *Engine) Tick(ctx context.Context) {
	due, err := e.rems.DueScheduled(ctx, e.now())
	if err != nil {
		metrics.ClaimTotal.WithLabelValues("error").Inc()
		log.Printf("reminder scan failed, retrying next tick: %v", err)
		return
	}

	var wg sync.WaitGroup
	for i := range due {
		rem := due[i]

		// Reminders of cancelled appointments are retracted instead of
		// claimed.
		if rem.Appointment.Status == string(apptdomain.StatusCancelled) {
			if err := e.rems.MarkCancelled(ctx, rem.ID); err != nil {
				log.Printf("cancel reminder %d: %v", rem.ID, err)
				continue
			}
			metrics.ClaimTotal.WithLabelValues("cancelled").Inc()
			continue
		}

		claimed, err := e.rems.Claim(ctx, rem.ID)
		if err != nil {
			metrics.ClaimTotal.WithLabelValues("error").Inc()
			log.Printf("claim reminder %d: %v", rem.ID, err)
			continue
		}
		if !claimed {
			// another tick got it first
			metrics.ClaimTotal.WithLabelValues("lost").Inc()
			continue
		}
		metrics.ClaimTotal.WithLabelValues("claimed").Inc()

		wg.Add(1)
		go func() {
			defer wg.Done()
			e.process(ctx, &rem)
		}()
	}
	wg.Wait()
}

func (e *Engine) process(ctx context.Context, rem *models.Reminder) {
	state, attempts := e.disp.Dispatch(ctx, rem)
	errMsg := JoinAttemptErrors(attempts)

	ok, err := e.rems.FinalizeFrom(ctx, rem.ID, domain.StatePending, state, e.now(), errMsg)
	if err != nil || !ok {
		// The reminder stays pending: a later tick will not re-claim it, so
		// it cannot be delivered twice, but it needs operator attention.
		metrics.FinalizeTotal.WithLabelValues("stuck").Inc()
		log.Printf("STUCK reminder %d: terminal write after dispatch failed (state=%s err=%v)", rem.ID, state, err)
		return
	}
	metrics.FinalizeTotal.WithLabelValues(string(state)).Inc()

	if state == domain.StateSent {
		e.rt.Publish(ctx, fmt.Sprintf("user:%d", rem.Appointment.OwnerID), "reminder:fired", map[string]any{
			"reminder_id":    rem.ID,
			"appointment_id": rem.AppointmentID,
		})
	}
}

// Resend re-enters dispatch for a reminder that already reached a terminal
// state. Human-triggered; the new aggregate overwrites the previous one.
func (e *Engine) Resend(ctx context.Context, id uint) (domain.State, error) {
	rem, err := e.rems.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	current := domain.State(rem.State)
	if !current.Terminal() {
		return "", httperr.ErrBusiness("reminder_not_terminal")
	}

	state, attempts := e.disp.Dispatch(ctx, rem)
	if _, err := e.rems.FinalizeFrom(ctx, rem.ID, current, state, e.now(), JoinAttemptErrors(attempts)); err != nil {
		return "", err
	}
	return state, nil
}
