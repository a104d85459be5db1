package timezone

import "time"

// Appointments and reminders are authored in civil local time and stored
// without a zone. This package is the only place the system offset appears:
// every conversion between a stored civil value and an absolute instant, and
// every "is it due yet" comparison, goes through here.

const (
	offsetHours = 3
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

var location = time.FixedZone("UTC+3", offsetHours*60*60)

func Location() *time.Location {
	return location
}

func Now() time.Time {
	return time.Now().In(location)
}

// At combines a civil date ("2006-01-02") and clock ("15:04") into the
// absolute instant they denote under the system offset.
func At(date, clock string) (time.Time, error) {
	return time.ParseInLocation(dateLayout+" "+clockLayout, date+" "+clock, location)
}

func ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, date, location)
}

func ParseClock(clock string) (time.Time, error) {
	return time.Parse(clockLayout, clock)
}

func FormatDate(t time.Time) string {
	return t.In(location).Format(dateLayout)
}

func FormatClock(t time.Time) string {
	return t.In(location).Format(clockLayout)
}
