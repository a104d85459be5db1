package reminder

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/reminder"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/metrics"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/notify"
)

const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
	ChannelInApp = "inapp"
)

type Outcome string

const (
	OutcomeSkipped   Outcome = "skipped"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// Attempt is one (channel, recipient) delivery try. Attempts are not
// persisted on their own; their aggregate decides the reminder's final
// state and their errors are joined into its diagnostics field.
type Attempt struct {
	Channel   string
	Recipient string
	Outcome   Outcome
	Err       error
}

type DispatcherOptions struct {
	SendsPerSecond float64
	SendBurst      int
}

type Dispatcher struct {
	email   notify.EmailSender
	sms     notify.SMSSender
	inapp   notify.InAppNotifier
	limiter *rate.Limiter
}

func NewDispatcher(
	email notify.EmailSender,
	sms notify.SMSSender,
	inapp notify.InAppNotifier,
	opt DispatcherOptions,
) *Dispatcher {
	if opt.SendsPerSecond <= 0 {
		opt.SendsPerSecond = 20
	}
	if opt.SendBurst <= 0 {
		opt.SendBurst = 40
	}
	return &Dispatcher{
		email:   email,
		sms:     sms,
		inapp:   inapp,
		limiter: rate.NewLimiter(rate.Limit(opt.SendsPerSecond), opt.SendBurst),
	}
}

// Dispatch fans a claimed reminder out to every (channel, recipient) pair
// and aggregates the outcomes. Sends run independently; one failure never
// short-circuits the rest. The result is sent when at least one attempt
// succeeded or every attempt was skipped, failed only when sends were
// attempted and none got through.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	rem *models.Reminder,
) (domain.State, []Attempt) {

	ap := &rem.Appointment
	subject, body := buildContent(ap)

	type job struct {
		channel   string
		recipient string
		send      func(context.Context) error
	}

	var jobs []job
	var attempts []Attempt

	skip := func(channel, recipient string) {
		attempts = append(attempts, Attempt{
			Channel:   channel,
			Recipient: recipient,
			Outcome:   OutcomeSkipped,
		})
	}

	// Recipient resolution is per-channel and independent: the owner when
	// the channel is toggled on, invited contacts, and visibility-list
	// users. A missing address is a skip, not a failure.
	if ap.RemindByEmail {
		for _, rcpt := range emailRecipients(ap) {
			if rcpt.address == "" {
				skip(ChannelEmail, rcpt.name)
				continue
			}
			addr := rcpt.address
			jobs = append(jobs, job{
				channel:   ChannelEmail,
				recipient: addr,
				send: func(ctx context.Context) error {
					return d.email.Send(ctx, addr, subject, body)
				},
			})
		}
	}

	if ap.RemindBySMS {
		for _, rcpt := range smsRecipients(ap) {
			if rcpt.address == "" {
				skip(ChannelSMS, rcpt.name)
				continue
			}
			number := rcpt.address
			jobs = append(jobs, job{
				channel:   ChannelSMS,
				recipient: number,
				send: func(ctx context.Context) error {
					return d.sms.Send(ctx, number, body)
				},
			})
		}
	}

	// The in-app channel is always attempted once for the owner, regardless
	// of the email/SMS toggles, and its failure counts toward the aggregate
	// like any other. An ownerless appointment (owner account removed) has
	// nobody to notify and skips instead.
	if ownerID := ap.OwnerID; ownerID != 0 {
		jobs = append(jobs, job{
			channel:   ChannelInApp,
			recipient: fmt.Sprintf("user:%d", ownerID),
			send: func(ctx context.Context) error {
				return d.inapp.Notify(ctx, ownerID, body)
			},
		})
	} else {
		skip(ChannelInApp, "owner")
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, j := range jobs {
		wg.Add(1)
		go func(j job) {
			defer wg.Done()

			att := Attempt{Channel: j.channel, Recipient: j.recipient}
			if err := d.limiter.Wait(ctx); err != nil {
				att.Outcome, att.Err = OutcomeFailed, err
			} else if err := j.send(ctx); err != nil {
				att.Outcome, att.Err = OutcomeFailed, err
			} else {
				att.Outcome = OutcomeSucceeded
			}

			mu.Lock()
			attempts = append(attempts, att)
			mu.Unlock()
		}(j)
	}
	wg.Wait()

	attempted := 0
	succeeded := 0
	for _, att := range attempts {
		metrics.DispatchTotal.WithLabelValues(att.Channel, string(att.Outcome)).Inc()
		if att.Outcome != OutcomeSkipped {
			attempted++
		}
		if att.Outcome == OutcomeSucceeded {
			succeeded++
		}
	}

	// All-skipped counts as processed successfully: no enabled channel had
	// a deliverable recipient, which is not an error.
	if succeeded > 0 || attempted == 0 {
		return domain.StateSent, attempts
	}
	return domain.StateFailed, attempts
}

// JoinAttemptErrors flattens failed attempts into one diagnostics string.
func JoinAttemptErrors(attempts []Attempt) string {
	var parts []string
	for _, att := range attempts {
		if att.Outcome == OutcomeFailed && att.Err != nil {
			parts = append(parts, fmt.Sprintf("%s %s: %v", att.Channel, att.Recipient, att.Err))
		}
	}
	return strings.Join(parts, "; ")
}

type recipient struct {
	name    string
	address string
}

func emailRecipients(ap *models.Appointment) []recipient {
	out := []recipient{{name: ap.Owner.Name, address: ap.Owner.Email}}
	for _, ct := range ap.Contacts {
		out = append(out, recipient{name: ct.Name, address: ct.Email})
	}
	for _, u := range ap.SharedWith {
		out = append(out, recipient{name: u.Name, address: u.Email})
	}
	return out
}

func smsRecipients(ap *models.Appointment) []recipient {
	out := []recipient{{name: ap.Owner.Name, address: ap.Owner.Phone}}
	for _, ct := range ap.Contacts {
		out = append(out, recipient{name: ct.Name, address: ct.Phone})
	}
	for _, u := range ap.SharedWith {
		out = append(out, recipient{name: u.Name, address: u.Phone})
	}
	return out
}
