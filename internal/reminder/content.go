package reminder

import (
	"fmt"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

// buildContent renders the notification text for an appointment. Kept
// deliberately plain; channels treat the content as opaque.
func buildContent(ap *models.Appointment) (subject, body string) {
	subject = fmt.Sprintf("Reminder: %s", ap.Title)
	body = fmt.Sprintf(
		"Upcoming appointment %q on %s from %s to %s.",
		ap.Title, ap.Date, ap.StartTime, ap.EndTime,
	)
	if ap.Description != "" {
		body += " " + ap.Description
	}
	return subject, body
}
