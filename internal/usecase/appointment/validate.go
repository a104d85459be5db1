package appointment

import (
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/timezone"
)

// validateInterval checks the civil inputs before any storage access:
// well-formed date and clocks, and start strictly before end. End is
// exclusive, so equal values are rejected too.
func validateInterval(date, start, end string) error {
	if _, err := timezone.ParseDate(date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := timezone.ParseClock(start); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	if _, err := timezone.ParseClock(end); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	if start >= end {
		return httperr.ErrBusiness("invalid_interval")
	}
	return nil
}
