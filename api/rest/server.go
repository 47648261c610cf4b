// Package rest is the local gateway over the explorer: every endpoint maps
// to one browsed URL, navigates the router with it, and renders the store's
// snapshot. Pagination and tab state live in the URL, never in the gateway.
package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/tzscout/tzscout/internal/explorer"
	"github.com/tzscout/tzscout/internal/notify"
	"github.com/tzscout/tzscout/internal/tzkt"
)

// InvalidAddressMessage is returned for addresses with no recognizable
// prefix.
const InvalidAddressMessage = "Invalid address. Expected a tz1/tz2/tz3 user address or a KT1 contract address."

// Navigator applies a browsed URL and returns once the loads it triggered
// have settled.
type Navigator interface {
	Navigate(ctx context.Context, rawURL string) error
}

// StateSource reads the store.
type StateSource interface {
	Snapshot() explorer.State
	Search(ctx context.Context, query string) error
}

// NotificationSource reads the recent notification history.
type NotificationSource interface {
	Recent() []notify.Notification
}

type Server struct {
	logger        *logrus.Logger
	nav           Navigator
	store         StateSource
	notifications NotificationSource
}

func NewServer(logger *logrus.Logger, nav Navigator, store StateSource, notifications NotificationSource) *Server {
	return &Server{
		logger:        logger,
		nav:           nav,
		store:         store,
		notifications: notifications,
	}
}

// GetOverview renders the blocks list. Navigation failures are already
// recorded in the store's error list, so the last-known-good snapshot is
// returned either way.
func (s *Server) GetOverview(ctx context.Context, req *GetOverviewRequest) (*GetOverviewResponse, error) {
	s.navigate(ctx, "/", url.Values{
		"page":     []string{req.Page},
		"pageSize": []string{req.PageSize},
	})

	st := s.store.Snapshot()
	return &GetOverviewResponse{
		Blocks:     st.Blocks,
		BlockCount: st.BlockCount,
	}, nil
}

func (s *Server) GetBlock(ctx context.Context, req *GetBlockRequest) (*GetBlockResponse, error) {
	level, err := strconv.ParseInt(req.Level, 10, 64)
	if err != nil || level < 0 {
		return nil, NewErrf(http.StatusBadRequest, "Invalid block level %q, expected a non-negative integer", req.Level)
	}

	s.navigate(ctx, "/details/"+strconv.FormatInt(level, 10), url.Values{
		"page":     []string{req.Page},
		"pageSize": []string{req.PageSize},
	})

	st := s.store.Snapshot()
	if st.Block == nil {
		return nil, NewErrf(http.StatusNotFound, "Block %d is not available", level)
	}
	return &GetBlockResponse{
		Block:            st.Block,
		Transactions:     st.Transactions,
		TransactionCount: st.TransactionCount,
	}, nil
}

func (s *Server) GetAccount(ctx context.Context, req *GetAccountRequest) (*GetAccountResponse, error) {
	if tzkt.ClassifyAddress(req.Address) == tzkt.AddressUnknown {
		s.logger.WithField("addr", req.Address).Warn("Refusing to look up an unclassifiable address")
		return nil, NewErrf(http.StatusBadRequest, InvalidAddressMessage)
	}

	s.navigate(ctx, "/account/"+req.Address, url.Values{
		"tab":      []string{req.Tab},
		"page":     []string{req.Page},
		"pageSize": []string{req.PageSize},
		"lastId":   []string{req.LastID},
	})

	st := s.store.Snapshot()
	if st.Account == nil && st.Contract == nil {
		return nil, NewErrf(http.StatusNotFound, "Account %s is not available", req.Address)
	}
	return &GetAccountResponse{
		Account:           st.Account,
		Contract:          st.Contract,
		Operations:        st.Operations,
		OperationCount:    st.OperationCount,
		TokenBalances:     st.TokenBalances,
		TokenBalanceCount: st.TokenBalanceCount,
		Events:            st.Events,
		EventCount:        st.EventCount,
		Entrypoints:       st.Entrypoints,
		Views:             st.Views,
	}, nil
}

func (s *Server) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if req.Query == "" {
		return nil, NewErrf(http.StatusBadRequest, "Missing required parameter: 'q'")
	}

	err := s.store.Search(ctx, req.Query)
	if err != nil {
		s.logger.WithError(err).WithField("query", req.Query).Warn("Search finished with errors")
	}

	return &SearchResponse{
		Results: s.store.Snapshot().SearchResults,
	}, nil
}

func (s *Server) GetNotifications(_ context.Context, _ *GetNotificationsRequest) (*GetNotificationsResponse, error) {
	return &GetNotificationsResponse{
		Notifications: s.notifications.Recent(),
	}, nil
}

func (s *Server) GetErrors(_ context.Context, _ *GetErrorsRequest) (*GetErrorsResponse, error) {
	return &GetErrorsResponse{
		Errors: s.store.Snapshot().Errors,
	}, nil
}

// navigate builds the browsed URL from path and non-empty query params and
// applies it. Load failures land in the store's error list and the
// notification sink; the gateway keeps serving last-known-good data.
func (s *Server) navigate(ctx context.Context, path string, query url.Values) {
	for name, values := range query {
		if len(values) == 0 || values[0] == "" {
			delete(query, name)
		}
	}
	u := path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	err := s.nav.Navigate(ctx, u)
	if err != nil {
		s.logger.WithError(err).WithField("url", u).Warn("Navigation finished with errors")
	}
}
