// Package router treats the browsed URL as the single source of navigation
// truth. It consumes a stream of URL values, classifies each into a route,
// derives loading parameters from path and query, and drives the store's
// load methods. Views never mutate the store directly; they navigate.
package router

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/hedisam/pipeline/chans"
	"github.com/sirupsen/logrus"

	"golang.org/x/sync/errgroup"

	"github.com/tzscout/tzscout/internal/tzkt"
)

// DefaultPollInterval is how often the overview block count refreshes.
const DefaultPollInterval = time.Minute

// Loader is the slice of the store the router drives.
type Loader interface {
	LoadBlocks(ctx context.Context, page, pageSize int) error
	LoadBlockDetails(ctx context.Context, level int64) error
	LoadBlockTransactions(ctx context.Context, level int64, page, pageSize int) error
	LoadAccount(ctx context.Context, address string) error
	LoadAccountOperations(ctx context.Context, address string, lastID int64, limit int) error
	LoadContractDetails(ctx context.Context, address string) error
	LoadTokenBalances(ctx context.Context, address string, page, pageSize int) error
	LoadContractEvents(ctx context.Context, address string, page, pageSize int) error
	RefreshBlockCount(ctx context.Context) error
	ResetDetails()
}

type Router struct {
	logger       *logrus.Logger
	loader       Loader
	pollInterval time.Duration
	nav          chan *url.URL

	mu         sync.Mutex
	base       context.Context
	last       *Route
	pollCancel context.CancelFunc
}

func New(logger *logrus.Logger, loader Loader, pollInterval time.Duration) *Router {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Router{
		logger:       logger,
		loader:       loader,
		pollInterval: pollInterval,
		nav:          make(chan *url.URL),
	}
}

// Run consumes the navigation stream until ctx is done, seeded with startURL.
// Each navigation is applied in order; loads for one navigation run
// concurrently, navigations do not.
func (r *Router) Run(ctx context.Context, startURL string) error {
	defer r.stopPolling()

	r.mu.Lock()
	r.base = ctx
	r.mu.Unlock()

	u, err := url.Parse(startURL)
	if err != nil {
		return fmt.Errorf("parse start url %q: %w", startURL, err)
	}
	if err := r.apply(ctx, u); err != nil {
		r.logger.WithError(err).WithField("url", startURL).Warn("Initial navigation finished with errors")
	}

	for u := range chans.ReceiveOrDoneSeq(ctx, r.nav) {
		if err := r.apply(ctx, u); err != nil {
			r.logger.WithError(err).WithField("url", u.String()).Warn("Navigation finished with errors")
		}
	}
	return nil
}

// Go queues a navigation for Run to apply. It blocks until Run picks it up
// or ctx is done.
func (r *Router) Go(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if !chans.SendOrDone(ctx, r.nav, u) {
		return ctx.Err()
	}
	return nil
}

// Navigate applies a navigation synchronously, returning once every load it
// triggered has settled. Used by callers that need the store up to date
// before rendering.
func (r *Router) Navigate(ctx context.Context, rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	return r.apply(ctx, u)
}

func (r *Router) apply(ctx context.Context, u *url.URL) error {
	route := Classify(u)

	r.mu.Lock()
	prev := r.last
	if prev != nil && *prev == route {
		// identical derived parameters, nothing to do
		r.mu.Unlock()
		return nil
	}
	r.last = &route

	if leavingDetail(prev, route) {
		r.loader.ResetDetails()
	}

	switch {
	case route.Kind == KindOverview && r.pollCancel == nil:
		// the poller must outlive the navigation that starts it: a gateway
		// request's ctx dies with the response, the run context does not
		base := r.base
		if base == nil {
			base = ctx
		}
		pollCtx, cancel := context.WithCancel(base)
		r.pollCancel = cancel
		go r.poll(pollCtx)
	case route.Kind != KindOverview && r.pollCancel != nil:
		r.pollCancel()
		r.pollCancel = nil
	}
	r.mu.Unlock()

	r.logger.WithFields(logrus.Fields{
		"kind": route.Kind.String(),
		"url":  u.String(),
	}).Debug("Navigated")
	navigations.WithLabelValues(route.Kind.String()).Inc()

	return r.dispatch(ctx, route)
}

// dispatch triggers the loads a route calls for. Loads are independent (each
// patches its own fields) so they run concurrently; the first error is
// returned after all settle.
func (r *Router) dispatch(ctx context.Context, route Route) error {
	g := &errgroup.Group{}

	switch route.Kind {
	case KindOverview:
		g.Go(func() error {
			return r.loader.LoadBlocks(ctx, route.Page, route.PageSize)
		})
	case KindDetails:
		g.Go(func() error {
			return r.loader.LoadBlockDetails(ctx, route.Level)
		})
		g.Go(func() error {
			return r.loader.LoadBlockTransactions(ctx, route.Level, route.Page, route.PageSize)
		})
	case KindAccount:
		g.Go(func() error {
			return r.loader.LoadAccount(ctx, route.Address)
		})
		switch route.Tab {
		case TabTokens:
			g.Go(func() error {
				return r.loader.LoadTokenBalances(ctx, route.Address, route.Page, route.PageSize)
			})
		case TabEvents:
			g.Go(func() error {
				return r.loader.LoadContractEvents(ctx, route.Address, route.Page, route.PageSize)
			})
		case TabContract:
			if tzkt.ClassifyAddress(route.Address) == tzkt.AddressContract {
				g.Go(func() error {
					return r.loader.LoadContractDetails(ctx, route.Address)
				})
			}
		default:
			g.Go(func() error {
				return r.loader.LoadAccountOperations(ctx, route.Address, route.LastID, route.PageSize)
			})
		}
	default:
		// unknown path: no loads
	}

	return g.Wait()
}

// poll refreshes the block count immediately and then on every tick until
// its context is cancelled. The ctx-aware receive guarantees no tick fires
// after cancellation.
func (r *Router) poll(ctx context.Context) {
	if err := r.loader.RefreshBlockCount(ctx); err != nil {
		r.logger.WithError(err).Debug("Overview count refresh failed")
	}

	t := time.NewTicker(r.pollInterval)
	defer t.Stop()

	for range chans.ReceiveOrDoneSeq(ctx, t.C) {
		if err := r.loader.RefreshBlockCount(ctx); err != nil {
			r.logger.WithError(err).Debug("Overview count refresh failed")
		}
	}
}

func (r *Router) stopPolling() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pollCancel != nil {
		r.pollCancel()
		r.pollCancel = nil
	}
}

// leavingDetail reports whether navigating from prev to next abandons a
// detail view, which clears the detail fields before the next loads run.
func leavingDetail(prev *Route, next Route) bool {
	if prev == nil {
		return false
	}
	switch prev.Kind {
	case KindDetails:
		return next.Kind != KindDetails || next.Level != prev.Level
	case KindAccount:
		return next.Kind != KindAccount || next.Address != prev.Address
	default:
		return false
	}
}
