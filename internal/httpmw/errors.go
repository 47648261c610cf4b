package httpmw

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tzscout/tzscout/internal/notify"
)

// SuppressNotificationHeader lets a single request opt out of the global
// error notification. The translated error is still returned to the caller.
const SuppressNotificationHeader = "X-Suppress-Error-Notification"

// ErrAuthRequired matches translated 401 responses via errors.Is, so callers
// can route to the login flow instead of the generic error path.
var ErrAuthRequired = errors.New("authentication required")

// Category buckets a failed request for display.
type Category string

const (
	CategoryNetwork      Category = "network"
	CategoryBadRequest   Category = "bad_request"
	CategoryUnauthorized Category = "unauthorized"
	CategoryForbidden    Category = "forbidden"
	CategoryNotFound     Category = "not_found"
	CategoryServerError  Category = "server_error"
	CategoryUnavailable  Category = "unavailable"
	CategoryUnknown      Category = "unknown"
)

// statusCategories and statusMessages are the fixed translation tables; a
// body-provided message takes precedence over the table text.
var statusCategories = map[int]Category{
	0:   CategoryNetwork,
	400: CategoryBadRequest,
	401: CategoryUnauthorized,
	403: CategoryForbidden,
	404: CategoryNotFound,
	500: CategoryServerError,
	503: CategoryUnavailable,
}

var statusMessages = map[int]string{
	0:   "Could not reach the server. Check your connection and try again.",
	400: "The request was rejected as invalid.",
	401: "You need to sign in to access this resource.",
	403: "You are not allowed to access this resource.",
	404: "The requested resource does not exist.",
	500: "The server hit an internal error.",
	503: "The service is temporarily unavailable. Try again in a moment.",
}

const unknownStatusMessage = "The request failed with an unexpected error."

// APIError is a translated request failure. Status 0 means no response
// reached us at all.
type APIError struct {
	Status   int
	Category Category
	Summary  string
	Detail   string
	Method   string
	URL      string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s %s: %s (%s)", e.Method, e.URL, e.Detail, e.Category)
}

func (e *APIError) Is(target error) bool {
	return target == ErrAuthRequired && e.Status == http.StatusUnauthorized
}

func newAPIError(req *http.Request, status int, detail string) *APIError {
	category, ok := statusCategories[status]
	if !ok {
		category = CategoryUnknown
	}
	summary, ok := statusMessages[status]
	if !ok {
		summary = unknownStatusMessage
	}
	if detail == "" {
		detail = summary
	}
	return &APIError{
		Status:   status,
		Category: category,
		Summary:  summary,
		Detail:   detail,
		Method:   req.Method,
		URL:      req.URL.String(),
	}
}

// ErrorDoer maps non-2xx responses and transport failures to *APIError,
// logs them, publishes them to the notification sink unless the request
// opted out, and returns the error so per-call handling can still occur.
type ErrorDoer struct {
	next   Doer
	logger *logrus.Logger
	sink   notify.Publisher
}

func NewErrorDoer(logger *logrus.Logger, sink notify.Publisher, next Doer) *ErrorDoer {
	return &ErrorDoer{
		next:   next,
		logger: logger,
		sink:   sink,
	}
}

func (d *ErrorDoer) Do(req *http.Request) (*http.Response, error) {
	suppress := req.Header.Get(SuppressNotificationHeader) != ""
	if suppress {
		req = req.Clone(req.Context())
		req.Header.Del(SuppressNotificationHeader)
	}

	resp, err := d.next.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// client-driven abort, nothing to report
			return nil, err
		}
		return nil, d.fail(req, newAPIError(req, 0, err.Error()), suppress)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
	return nil, d.fail(req, newAPIError(req, resp.StatusCode, extractDetail(body)), suppress)
}

func (d *ErrorDoer) fail(req *http.Request, apiErr *APIError, suppress bool) error {
	d.logger.WithFields(logrus.Fields{
		"method": req.Method,
		"status": apiErr.Status,
		"url":    apiErr.URL,
	}).WithError(apiErr).Error("Request failed")
	translatedErrors.WithLabelValues(string(apiErr.Category)).Inc()

	if !suppress {
		d.sink.Publish(notify.Notification{
			Severity: notify.SeverityError,
			Summary:  apiErr.Summary,
			Detail:   apiErr.Detail,
		})
	}
	return apiErr
}

// extractDetail pulls a human-readable message out of an error response body.
// Checked in priority order: error.message, error.error.message, reason, a
// bare JSON string body, then a plain-text body verbatim. Returns "" only for
// JSON bodies offering nothing usable.
func extractDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Error struct {
			Message string `json:"message"`
			Error   struct {
				Message string `json:"message"`
			} `json:"error"`
		} `json:"error"`
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Error.Message != "":
			return payload.Error.Message
		case payload.Error.Error.Message != "":
			return payload.Error.Error.Message
		case payload.Reason != "":
			return payload.Reason
		}
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}
	if !json.Valid(body) {
		return strings.TrimSpace(string(body))
	}

	return ""
}
