package appointment

import (
	"fmt"
	"strings"

	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

// ConflictQuery describes one interval lookup. ExcludeID and ScopeOwner are
// optional; zero means unset. When ScopeOwner is unset the check is global,
// which is what the booking path uses to enforce a single shared calendar.
type ConflictQuery struct {
	Date       string
	Start      string
	End        string
	ExcludeID  uint
	ScopeOwner uint
}

// Overlaps reports whether two half-open civil intervals on the same date
// intersect. Times are zero-padded "15:04" strings, so lexicographic
// comparison matches chronological order. An interval ending at T does not
// overlap one starting at T.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

// ConflictError is an expected outcome, not a failure: the caller gets the
// full list of clashing appointments to present alternatives.
type ConflictError struct {
	Conflicts []models.Appointment
}

func (e *ConflictError) Error() string {
	parts := make([]string, 0, len(e.Conflicts))
	for _, ap := range e.Conflicts {
		parts = append(parts, fmt.Sprintf("#%d %s %s-%s", ap.ID, ap.Title, ap.StartTime, ap.EndTime))
	}
	return "appointment conflicts with: " + strings.Join(parts, ", ")
}
