package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	restapi "github.com/tzscout/tzscout/api/rest"
)

type echoRequest struct {
	Name   string `path:"name"`
	Filter string `query:"filter"`
}

type echoResponse struct {
	Name   string `json:"name"`
	Filter string `json:"filter"`
}

func TestRegisterFuncDecodesParams(t *testing.T) {
	mux := http.NewServeMux()
	restapi.RegisterFunc(logrus.New(), mux, http.MethodGet, "/echo/{name}", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Name: req.Name, Filter: req.Filter}, nil
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/echo/alice?filter=active", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp echoResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, echoResponse{Name: "alice", Filter: "active"}, resp)
}

func TestRegisterFuncErrorStatus(t *testing.T) {
	tests := map[string]struct {
		handlerErr     error
		expectedStatus int
		expectedBody   string
	}{
		"typed error picks its status": {
			handlerErr:     restapi.NewErrf(http.StatusNotFound, "no such thing"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"no such thing"}`,
		},
		"untyped error maps to 500": {
			handlerErr:     errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal error"}`,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			mux := http.NewServeMux()
			restapi.RegisterFunc(logrus.New(), mux, http.MethodGet, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
				return nil, test.handlerErr
			})

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, test.expectedStatus, rec.Code)
			assert.JSONEq(t, test.expectedBody, rec.Body.String())
		})
	}
}
