package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/dental-clinic/internal/httperr"
	"github.com/BruksfildServices01/dental-clinic/internal/logger"
	"github.com/BruksfildServices01/dental-clinic/internal/middleware"
	"github.com/BruksfildServices01/dental-clinic/internal/timezone"
)

// ======================================================
// ERRORS
// ======================================================

var messages = map[string]string{
	"invalid_request":           "Invalid request body.",
	"invalid_id":                "Invalid id.",
	"patient_not_found":         "Patient not found.",
	"medical_history_not_found": "Medical history not found.",
	"visit_not_found":           "Visit not found.",
	"appointment_not_found":     "Appointment not found.",
	"audit_event_not_found":     "Audit event not found.",
	"time_conflict":             "The selected time overlaps another appointment.",
	"too_soon":                  "The selected time is in the past or too soon.",
	"outside_working_hours":     "The selected time is outside working hours.",
	"invalid_date_or_time":      "Invalid date or time.",
	"invalid_state":             "This status change is not allowed.",
	"storage_unavailable":       "Photo storage is not configured.",
	"payments_unavailable":      "Payments are not configured.",
	"photo_too_large":           "The photo is too large.",
	"invalid_image":             "Unsupported image.",
	"nothing_due":               "Nothing is due for this visit.",
	"invalid_year":              "Year must be between 2000 and 2100.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return strings.ReplaceAll(code, "_", " ")
}

func statusFor(code string) int {
	switch {
	case strings.HasSuffix(code, "_not_found"):
		return http.StatusNotFound
	case code == "time_conflict":
		return http.StatusConflict
	case code == "storage_unavailable" || code == "payments_unavailable":
		return http.StatusServiceUnavailable
	case code == "photo_too_large":
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

// respondError writes err as {error_code, message}. Business errors keep
// their code; database conflicts become 409; anything else is logged and
// reported as a 500.
func respondError(c *gin.Context, err error) {
	if code := httperr.BusinessCode(err); code != "" {
		httperr.Write(c, statusFor(code), code, messageFor(code))
		return
	}

	switch {
	case httperr.IsExclusionConflict(err):
		httperr.Conflict(c, "time_conflict", messageFor("time_conflict"))
		return
	case httperr.IsUniqueViolation(err):
		httperr.Conflict(c, "conflict", "The record already exists.")
		return
	}

	logger.FromContext(c.Request.Context()).
		WithError(err).
		WithField("route", c.FullPath()).
		Error("request failed")
	_ = c.Error(err)
	httperr.Internal(c, "internal_error", "Unexpected error.")
}

func badRequest(c *gin.Context, code string) {
	httperr.BadRequest(c, code, messageFor(code))
}

// fieldRules fail as invalid_<field>; other binding failures are
// invalid_request.
var fieldRules = map[string]bool{
	"date":        true,
	"gender":      true,
	"blood_group": true,
	"phone":       true,
	"email":       true,
}

func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && fieldRules[verrs[0].Tag()] {
		badRequest(c, "invalid_"+verrs[0].Field())
		return
	}
	badRequest(c, "invalid_request")
}

// ======================================================
// PARAMS
// ======================================================

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		badRequest(c, "invalid_id")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, name string) (int, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(c, "invalid_"+name)
		return 0, false
	}
	return n, true
}

// queryPeriod reads from/to as YYYY-MM-DD in the clinic timezone. to is
// inclusive, so the returned upper bound is the start of the next day.
func queryPeriod(c *gin.Context) (*time.Time, *time.Time, bool) {
	var from, to *time.Time

	if raw := c.Query("from"); raw != "" {
		t, err := timezone.ParseDate(raw)
		if err != nil {
			badRequest(c, "invalid_from")
			return nil, nil, false
		}
		from = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := timezone.ParseDate(raw)
		if err != nil {
			badRequest(c, "invalid_to")
			return nil, nil, false
		}
		t = t.AddDate(0, 0, 1)
		to = &t
	}
	return from, to, true
}

func actorID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
