package notify

import (
	"context"
	"log"
)

// Log-only transports for local runs and environments without real
// email/SMS credentials.

type LogEmailSender struct{}

func (LogEmailSender) Send(_ context.Context, address, subject, _ string) error {
	log.Printf("email to=%s subject=%q", address, subject)
	return nil
}

type LogSMSSender struct{}

func (LogSMSSender) Send(_ context.Context, number, body string) error {
	log.Printf("sms to=%s len=%d", number, len(body))
	return nil
}

type LogInAppNotifier struct{}

func (LogInAppNotifier) Notify(_ context.Context, userID uint, _ string) error {
	log.Printf("in-app notify user=%d", userID)
	return nil
}
