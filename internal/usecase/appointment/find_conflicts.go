package appointment

import (
	"context"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/metrics"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// FindConflicts is the conflict detector. The booking path runs it globally
// (one shared calendar); read-side queries may scope it to a single owner.
// Callers must treat any error as "check not completed" and refuse to
// commit: the store has no unique constraint backing this invariant.
type FindConflicts struct {
	repo domain.Repository
}

func NewFindConflicts(repo domain.Repository) *FindConflicts {
	return &FindConflicts{repo: repo}
}

func (uc *FindConflicts) Execute(
	ctx context.Context,
	q domain.ConflictQuery,
) ([]models.Appointment, error) {

	if err := validateInterval(q.Date, q.Start, q.End); err != nil {
		return nil, err
	}

	conflicts, err := uc.repo.FindConflicts(ctx, q)
	if err != nil {
		metrics.ConflictChecks.WithLabelValues("error").Inc()
		return nil, err
	}

	if len(conflicts) > 0 {
		metrics.ConflictChecks.WithLabelValues("conflict").Inc()
	} else {
		metrics.ConflictChecks.WithLabelValues("clean").Inc()
	}
	return conflicts, nil
}
