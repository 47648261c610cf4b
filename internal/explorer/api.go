package explorer

import (
	"context"
	"encoding/json"

	"github.com/tzscout/tzscout/internal/tzkt"
)

// API is the slice of the indexing client the store depends on.
type API interface {
	Blocks(ctx context.Context, page, pageSize int) ([]tzkt.Block, error)
	BlockCount(ctx context.Context) (int64, error)
	Block(ctx context.Context, level int64) (*tzkt.Block, error)
	BlockTransactions(ctx context.Context, level int64, page, pageSize int) ([]tzkt.Transaction, error)
	BlockTransactionCount(ctx context.Context, level int64) (int64, error)
	Account(ctx context.Context, address string) (*tzkt.Account, error)
	Contract(ctx context.Context, address string) (*tzkt.Contract, error)
	AccountOperations(ctx context.Context, address string, lastID int64, limit int) ([]tzkt.AccountOperation, error)
	AccountOperationCount(ctx context.Context, address string) (int64, error)
	ContractEntrypoints(ctx context.Context, address string) ([]tzkt.Entrypoint, error)
	ContractViews(ctx context.Context, address string) ([]tzkt.ContractView, error)
	ContractStorage(ctx context.Context, address string) (json.RawMessage, error)
	ContractInterface(ctx context.Context, address string) (json.RawMessage, error)
	TokenBalances(ctx context.Context, address string, page, pageSize int) ([]tzkt.TokenBalance, error)
	TokenBalanceCount(ctx context.Context, address string) (int64, error)
	ContractEvents(ctx context.Context, address string, page, pageSize int) ([]tzkt.ContractEvent, error)
	ContractEventCount(ctx context.Context, address string) (int64, error)
	SuggestAccounts(ctx context.Context, query string) ([]tzkt.Suggestion, error)
}
