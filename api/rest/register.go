package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/sirupsen/logrus"
)

// Err is an API error carrying the HTTP status to respond with.
type Err struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (e *Err) Error() string {
	return e.Message
}

// NewErrf builds an *Err with a formatted message.
func NewErrf(statusCode int, format string, args ...any) *Err {
	return &Err{
		StatusCode: statusCode,
		Message:    fmt.Sprintf(format, args...),
	}
}

// RegisterFunc mounts a typed handler on mux. Request struct fields are
// populated from path parameters (`path` tag) and query parameters (`query`
// tag); the response is rendered as JSON. Handler errors of type *Err pick
// the response status, anything else maps to 500.
func RegisterFunc[Req, Resp any](logger *logrus.Logger, mux *http.ServeMux, method, pattern string, fn func(context.Context, *Req) (*Resp, error)) {
	mux.HandleFunc(method+" "+pattern, func(w http.ResponseWriter, r *http.Request) {
		req := new(Req)
		decodeRequest(r, req)

		resp, err := fn(r.Context(), req)
		if err != nil {
			restErr := &Err{}
			if !errors.As(err, &restErr) {
				logger.WithError(err).WithField("pattern", pattern).Error("Handler failed with an untyped error")
				restErr = NewErrf(http.StatusInternalServerError, "internal error")
			}
			writeJSON(logger, w, restErr.StatusCode, restErr)
			return
		}

		writeJSON(logger, w, http.StatusOK, resp)
	})
}

// decodeRequest fills req's tagged string fields from the request's path and
// query parameters. Parsing beyond strings is the handler's concern, so the
// coercion rules stay in one place per parameter.
func decodeRequest(r *http.Request, req any) {
	v := reflect.ValueOf(req).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Type.Kind() != reflect.String {
			continue
		}
		if name, ok := field.Tag.Lookup("path"); ok {
			v.Field(i).SetString(r.PathValue(name))
			continue
		}
		if name, ok := field.Tag.Lookup("query"); ok {
			v.Field(i).SetString(r.URL.Query().Get(name))
		}
	}
}

func writeJSON(logger *logrus.Logger, w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		logger.WithError(err).Error("Failed to encode response body")
	}
}
