package rest

import (
	"github.com/tzscout/tzscout/internal/explorer"
	"github.com/tzscout/tzscout/internal/notify"
	"github.com/tzscout/tzscout/internal/tzkt"
)

// Pagination parameters arrive as raw strings; the router owns the coercion
// rules (absent or non-numeric falls back to defaults).

type GetOverviewRequest struct {
	Page     string `query:"page"`
	PageSize string `query:"pageSize"`
}

type GetOverviewResponse struct {
	Blocks     []tzkt.Block `json:"blocks"`
	BlockCount int64        `json:"blockCount"`
}

type GetBlockRequest struct {
	Level    string `path:"level"`
	Page     string `query:"page"`
	PageSize string `query:"pageSize"`
}

type GetBlockResponse struct {
	Block            *tzkt.Block        `json:"block"`
	Transactions     []tzkt.Transaction `json:"transactions"`
	TransactionCount int64              `json:"transactionCount"`
}

type GetAccountRequest struct {
	Address  string `path:"address"`
	Tab      string `query:"tab"`
	Page     string `query:"page"`
	PageSize string `query:"pageSize"`
	LastID   string `query:"lastId"`
}

type GetAccountResponse struct {
	Account  *tzkt.Account  `json:"account,omitempty"`
	Contract *tzkt.Contract `json:"contract,omitempty"`

	Operations     []tzkt.AccountOperation `json:"operations,omitempty"`
	OperationCount int64                   `json:"operationCount,omitempty"`

	TokenBalances     []tzkt.TokenBalance `json:"tokenBalances,omitempty"`
	TokenBalanceCount int64               `json:"tokenBalanceCount,omitempty"`

	Events     []tzkt.ContractEvent `json:"events,omitempty"`
	EventCount int64                `json:"eventCount,omitempty"`

	Entrypoints []tzkt.Entrypoint   `json:"entrypoints,omitempty"`
	Views       []tzkt.ContractView `json:"views,omitempty"`
}

type SearchRequest struct {
	Query string `query:"q"`
}

type SearchResponse struct {
	Results []explorer.SearchResult `json:"results"`
}

type GetNotificationsRequest struct{}

type GetNotificationsResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

type GetErrorsRequest struct{}

type GetErrorsResponse struct {
	Errors []explorer.ErrorEntry `json:"errors"`
}
