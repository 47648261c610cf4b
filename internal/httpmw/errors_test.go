package httpmw_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzscout/tzscout/internal/httpmw"
)

func TestErrorDoerTranslatesStatuses(t *testing.T) {
	tests := map[string]struct {
		status           int
		transportErr     error
		expectedCategory httpmw.Category
		expectedSummary  string
	}{
		"bad request": {
			status:           http.StatusBadRequest,
			expectedCategory: httpmw.CategoryBadRequest,
			expectedSummary:  "The request was rejected as invalid.",
		},
		"unauthorized": {
			status:           http.StatusUnauthorized,
			expectedCategory: httpmw.CategoryUnauthorized,
			expectedSummary:  "You need to sign in to access this resource.",
		},
		"forbidden": {
			status:           http.StatusForbidden,
			expectedCategory: httpmw.CategoryForbidden,
			expectedSummary:  "You are not allowed to access this resource.",
		},
		"not found": {
			status:           http.StatusNotFound,
			expectedCategory: httpmw.CategoryNotFound,
			expectedSummary:  "The requested resource does not exist.",
		},
		"server error": {
			status:           http.StatusInternalServerError,
			expectedCategory: httpmw.CategoryServerError,
			expectedSummary:  "The server hit an internal error.",
		},
		"unavailable": {
			status:           http.StatusServiceUnavailable,
			expectedCategory: httpmw.CategoryUnavailable,
			expectedSummary:  "The service is temporarily unavailable. Try again in a moment.",
		},
		"unmapped status": {
			status:           http.StatusTeapot,
			expectedCategory: httpmw.CategoryUnknown,
			expectedSummary:  "The request failed with an unexpected error.",
		},
		"transport failure": {
			transportErr:     errors.New("connection refused"),
			expectedCategory: httpmw.CategoryNetwork,
			expectedSummary:  "Could not reach the server. Check your connection and try again.",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			sink := &publisherStub{}
			d := httpmw.NewErrorDoer(logrus.New(), sink, httpmw.DoerFunc(func(req *http.Request) (*http.Response, error) {
				if test.transportErr != nil {
					return nil, test.transportErr
				}
				return responseWithStatus(req, test.status, ""), nil
			}))

			_, err := d.Do(httptest.NewRequest(http.MethodGet, "/v1/blocks", nil))
			require.Error(t, err)

			apiErr := &httpmw.APIError{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, test.expectedCategory, apiErr.Category)
			assert.Equal(t, test.expectedSummary, apiErr.Summary)
			if test.transportErr != nil {
				assert.Zero(t, apiErr.Status)
			} else {
				assert.Equal(t, test.status, apiErr.Status)
			}

			published := sink.all()
			require.Len(t, published, 1)
			assert.Equal(t, test.expectedSummary, published[0].Summary)
		})
	}
}

func TestErrorDoerExtractsBodyDetail(t *testing.T) {
	tests := map[string]struct {
		body           string
		expectedDetail string
	}{
		"error message wins": {
			body:           `{"error":{"message":"storage exhausted"},"reason":"other"}`,
			expectedDetail: "storage exhausted",
		},
		"nested error message": {
			body:           `{"error":{"error":{"message":"gas limit too low"}}}`,
			expectedDetail: "gas limit too low",
		},
		"reason fallback": {
			body:           `{"reason":"node is bootstrapping"}`,
			expectedDetail: "node is bootstrapping",
		},
		"bare json string": {
			body:           `"contract not found"`,
			expectedDetail: "contract not found",
		},
		"plain text body used verbatim": {
			body:           "entrypoint not found\n",
			expectedDetail: "entrypoint not found",
		},
		"json without a message falls back to summary": {
			body:           `{"code": 42}`,
			expectedDetail: "The request was rejected as invalid.",
		},
		"empty body falls back to summary": {
			body:           "",
			expectedDetail: "The request was rejected as invalid.",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			d := httpmw.NewErrorDoer(logrus.New(), &publisherStub{}, httpmw.DoerFunc(func(req *http.Request) (*http.Response, error) {
				return responseWithStatus(req, http.StatusBadRequest, test.body), nil
			}))

			_, err := d.Do(httptest.NewRequest(http.MethodGet, "/v1/blocks", nil))
			apiErr := &httpmw.APIError{}
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, test.expectedDetail, apiErr.Detail)
		})
	}
}

func TestErrorDoerAuthRequired(t *testing.T) {
	d := httpmw.NewErrorDoer(logrus.New(), &publisherStub{}, httpmw.DoerFunc(func(req *http.Request) (*http.Response, error) {
		return responseWithStatus(req, http.StatusUnauthorized, ""), nil
	}))

	_, err := d.Do(httptest.NewRequest(http.MethodGet, "/v1/profile", nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, httpmw.ErrAuthRequired)
}

func TestErrorDoerSuppressNotification(t *testing.T) {
	sink := &publisherStub{}
	var forwardedHeader string
	d := httpmw.NewErrorDoer(logrus.New(), sink, httpmw.DoerFunc(func(req *http.Request) (*http.Response, error) {
		forwardedHeader = req.Header.Get(httpmw.SuppressNotificationHeader)
		return responseWithStatus(req, http.StatusNotFound, ""), nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/accounts/tz1abc", nil)
	req.Header.Set(httpmw.SuppressNotificationHeader, "1")
	_, err := d.Do(req)

	require.Error(t, err)
	apiErr := &httpmw.APIError{}
	assert.ErrorAs(t, err, &apiErr)
	assert.Empty(t, sink.all())
	// the hint header is internal and must not reach the wire
	assert.Empty(t, forwardedHeader)
}

func TestErrorDoerPassesThroughCancellation(t *testing.T) {
	sink := &publisherStub{}
	d := httpmw.NewErrorDoer(logrus.New(), sink, httpmw.DoerFunc(func(req *http.Request) (*http.Response, error) {
		return nil, fmt.Errorf("could not make http call: %w", context.Canceled)
	}))

	_, err := d.Do(httptest.NewRequest(http.MethodGet, "/v1/blocks", nil))
	require.ErrorIs(t, err, context.Canceled)
	apiErr := &httpmw.APIError{}
	assert.False(t, errors.As(err, &apiErr))
	assert.Empty(t, sink.all())
}

func TestErrorDoerPassesThroughSuccess(t *testing.T) {
	sink := &publisherStub{}
	d := httpmw.NewErrorDoer(logrus.New(), sink, httpmw.DoerFunc(func(req *http.Request) (*http.Response, error) {
		return okResponse(req, "{}"), nil
	}))

	resp, err := d.Do(httptest.NewRequest(http.MethodGet, "/v1/blocks", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()
	assert.Empty(t, sink.all())
}
