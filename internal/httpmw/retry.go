package httpmw

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

// RetryDoer is the base of the chain: it retries transport-level failures
// with exponential backoff. Status errors are not retried here; they settle
// once and are translated by the stage above.
type RetryDoer struct {
	next   Doer
	logger *logrus.Logger
}

func NewRetryDoer(logger *logrus.Logger, next Doer) *RetryDoer {
	return &RetryDoer{
		next:   next,
		logger: logger,
	}
}

func (d *RetryDoer) Do(req *http.Request) (*http.Response, error) {
	bk := newExponentialBackoffConfig()
	return backoff.RetryWithData[*http.Response](func() (*http.Response, error) {
		resp, err := d.next.Do(req)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil, backoff.Permanent(fmt.Errorf("could not make http call: %w", err))
			}
			d.logger.WithFields(logrus.Fields{
				"method": req.Method,
				"url":    req.URL.String(),
			}).WithError(err).Error("Failed to make http request, retrying...")
			retriedRequests.Inc()
			return nil, fmt.Errorf("http request failed: %w", err)
		}
		return resp, nil
	}, bk)
}

func newExponentialBackoffConfig() *backoff.ExponentialBackOff {
	return backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(time.Second*3),
		backoff.WithMaxInterval(time.Second),
		backoff.WithInitialInterval(time.Millisecond*100),
		backoff.WithMultiplier(2),
		backoff.WithRandomizationFactor(0.2),
	)
}
