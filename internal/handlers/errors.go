package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/YigitSelcuk/appoinment-backend-sub000/internal/domain/appointment"
	"github.com/YigitSelcuk/appoinment-backend-sub000/internal/httperr"
)

// conflictResponse keeps the clash list compact for the caller: enough to
// say "you clash with appointment X", nothing more.
type conflictEntry struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Start string `json:"start_time"`
	End   string `json:"end_time"`
}

var businessMessages = map[string]string{
	"time_conflict":        "the requested slot overlaps an existing appointment",
	"invalid_interval":     "start must be before end",
	"reminder_in_past":     "reminder would fire in the past - pick a shorter lead time or a later appointment",
	"invalid_offset_unit":  "offset unit must be minutes, hours, days or weeks",
	"invalid_offset_value": "offset value must be positive",
}

func writeDomainError(c *gin.Context, err error) {
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		entries := make([]conflictEntry, 0, len(ce.Conflicts))
		for _, ap := range ce.Conflicts {
			entries = append(entries, conflictEntry{
				ID:    ap.ID,
				Title: ap.Title,
				Start: ap.StartTime,
				End:   ap.EndTime,
			})
		}
		c.JSON(http.StatusConflict, gin.H{
			"error_code": "time_conflict",
			"message":    businessMessages["time_conflict"],
			"conflicts":  entries,
		})
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		status := http.StatusBadRequest
		if be.Code == "appointment_not_found" || be.Code == "reminder_not_found" {
			status = http.StatusNotFound
		}
		httperr.Write(c, status, be.Code, businessMessages[be.Code])
		return
	}

	httperr.Internal(c, "internal_error", "unexpected error")
}
