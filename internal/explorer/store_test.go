package explorer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzscout/tzscout/internal/explorer"
	"github.com/tzscout/tzscout/internal/explorer/mocks"
	"github.com/tzscout/tzscout/internal/tzkt"
)

//go:generate moq -out mocks/api.go -pkg mocks -skip-ensure . API

func TestLoadBlocksBackfillsTransactionCounts(t *testing.T) {
	apiMock := &mocks.APIMock{
		BlocksFunc: func(ctx context.Context, page, pageSize int) ([]tzkt.Block, error) {
			assert.Equal(t, 0, page)
			assert.Equal(t, 10, pageSize)
			return []tzkt.Block{{Level: 101}, {Level: 100}}, nil
		},
		BlockCountFunc: func(ctx context.Context) (int64, error) {
			return 4242, nil
		},
		BlockTransactionCountFunc: func(ctx context.Context, level int64) (int64, error) {
			return level * 2, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	err := store.LoadBlocks(context.Background(), 0, 10)
	require.NoError(t, err)

	st := store.Snapshot()
	assert.Equal(t, int64(4242), st.BlockCount)
	require.Len(t, st.Blocks, 2)
	assert.Equal(t, int64(202), st.Blocks[0].Transactions)
	assert.Equal(t, int64(200), st.Blocks[1].Transactions)
	assert.Len(t, apiMock.BlockTransactionCountCalls(), 2)
}

func TestLoadBlocksFailureKeepsPreviousPage(t *testing.T) {
	var fail atomic.Bool
	apiMock := &mocks.APIMock{
		BlocksFunc: func(ctx context.Context, page, pageSize int) ([]tzkt.Block, error) {
			return []tzkt.Block{{Level: 100}}, nil
		},
		BlockCountFunc: func(ctx context.Context) (int64, error) {
			if fail.Load() {
				return 0, errors.New("indexer down")
			}
			return 100, nil
		},
		BlockTransactionCountFunc: func(ctx context.Context, level int64) (int64, error) {
			return 0, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	require.NoError(t, store.LoadBlocks(context.Background(), 0, 10))
	fail.Store(true)
	err := store.LoadBlocks(context.Background(), 1, 10)
	require.Error(t, err)

	st := store.Snapshot()
	// the failed page must not blank the previous one
	require.Len(t, st.Blocks, 1)
	assert.Equal(t, int64(100), st.Blocks[0].Level)
	require.Len(t, st.Errors, 1)
	assert.Equal(t, "blocks", st.Errors[0].Source)
	assert.Contains(t, st.Errors[0].Message, "indexer down")
}

func TestLoadBlockDetailsSupersededCallIsDropped(t *testing.T) {
	release := make(chan struct{})
	apiMock := &mocks.APIMock{
		BlockFunc: func(ctx context.Context, level int64) (*tzkt.Block, error) {
			if level == 1 {
				<-release
			}
			return &tzkt.Block{Level: level}, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	firstErr := make(chan error, 1)
	go func() {
		firstErr <- store.LoadBlockDetails(context.Background(), 1)
	}()
	require.Eventually(t, func() bool {
		return len(apiMock.BlockCalls()) == 1
	}, time.Second, time.Millisecond)

	// the second call supersedes the first while it is still in flight
	require.NoError(t, store.LoadBlockDetails(context.Background(), 2))
	close(release)

	err := <-firstErr
	require.ErrorIs(t, err, context.Canceled)

	st := store.Snapshot()
	require.NotNil(t, st.Block)
	assert.Equal(t, int64(2), st.Block.Level)
}

func TestLoadAccountClassifiesByPrefix(t *testing.T) {
	const (
		userAddr     = "tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"
		contractAddr = "KT1BEqzn5Wx8uJrZNvuS9DVHmLvG9td3fDLi"
	)

	apiMock := &mocks.APIMock{
		AccountFunc: func(ctx context.Context, address string) (*tzkt.Account, error) {
			return &tzkt.Account{Address: address}, nil
		},
		ContractFunc: func(ctx context.Context, address string) (*tzkt.Contract, error) {
			return &tzkt.Contract{Account: tzkt.Account{Address: address}, Kind: "smart_contract"}, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	require.NoError(t, store.LoadAccount(context.Background(), userAddr))
	st := store.Snapshot()
	require.NotNil(t, st.Account)
	assert.Equal(t, userAddr, st.Account.Address)
	assert.Nil(t, st.Contract)

	require.NoError(t, store.LoadAccount(context.Background(), contractAddr))
	st = store.Snapshot()
	require.NotNil(t, st.Contract)
	assert.Equal(t, contractAddr, st.Contract.Address)
	// one address is never both a user account and a contract
	assert.Nil(t, st.Account)
}

func TestLoadAccountRejectsUnknownAddress(t *testing.T) {
	apiMock := &mocks.APIMock{}
	store := explorer.New(logrus.New(), apiMock, 2)

	err := store.LoadAccount(context.Background(), "bogus")
	require.Error(t, err)
	assert.Empty(t, apiMock.AccountCalls())
	assert.Empty(t, apiMock.ContractCalls())
}

func TestLoadAccountOperationsAllOrNothing(t *testing.T) {
	apiMock := &mocks.APIMock{
		AccountOperationsFunc: func(ctx context.Context, address string, lastID int64, limit int) ([]tzkt.AccountOperation, error) {
			return []tzkt.AccountOperation{{ID: 9}}, nil
		},
		AccountOperationCountFunc: func(ctx context.Context, address string) (int64, error) {
			return 0, errors.New("count unavailable")
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	err := store.LoadAccountOperations(context.Background(), "tz1aaa", 0, 10)
	require.Error(t, err)

	st := store.Snapshot()
	assert.Empty(t, st.Operations)
	assert.Zero(t, st.OperationCount)
	require.Len(t, st.Errors, 1)
	assert.Equal(t, "account operations", st.Errors[0].Source)
}

func TestLoadContractDetailsPartialSuccess(t *testing.T) {
	apiMock := &mocks.APIMock{
		ContractEntrypointsFunc: func(ctx context.Context, address string) ([]tzkt.Entrypoint, error) {
			return []tzkt.Entrypoint{{Name: "transfer"}}, nil
		},
		ContractViewsFunc: func(ctx context.Context, address string) ([]tzkt.ContractView, error) {
			return []tzkt.ContractView{{Name: "get_balance"}}, nil
		},
		ContractStorageFunc: func(ctx context.Context, address string) (json.RawMessage, error) {
			return nil, errors.New("storage too large")
		},
		ContractInterfaceFunc: func(ctx context.Context, address string) (json.RawMessage, error) {
			return json.RawMessage(`{"entrypoints": {}}`), nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	err := store.LoadContractDetails(context.Background(), "KT1ccc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage too large")

	st := store.Snapshot()
	require.Len(t, st.Entrypoints, 1)
	assert.Equal(t, "transfer", st.Entrypoints[0].Name)
	require.Len(t, st.Views, 1)
	assert.NotNil(t, st.Interface)
	assert.Nil(t, st.Storage)
	require.Len(t, st.Errors, 1)
	assert.Equal(t, "contract details", st.Errors[0].Source)
}

func TestLoadContractDetailsBoundsConcurrency(t *testing.T) {
	var mu sync.Mutex
	var inFlight, maxInFlight int
	enter := func() {
		mu.Lock()
		inFlight++
		if inFlight > maxInFlight {
			maxInFlight = inFlight
		}
		mu.Unlock()
		time.Sleep(20 * time.Millisecond)
		mu.Lock()
		inFlight--
		mu.Unlock()
	}

	apiMock := &mocks.APIMock{
		ContractEntrypointsFunc: func(ctx context.Context, address string) ([]tzkt.Entrypoint, error) {
			enter()
			return nil, nil
		},
		ContractViewsFunc: func(ctx context.Context, address string) ([]tzkt.ContractView, error) {
			enter()
			return nil, nil
		},
		ContractStorageFunc: func(ctx context.Context, address string) (json.RawMessage, error) {
			enter()
			return nil, nil
		},
		ContractInterfaceFunc: func(ctx context.Context, address string) (json.RawMessage, error) {
			enter()
			return nil, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	require.NoError(t, store.LoadContractDetails(context.Background(), "KT1ccc"))
	assert.LessOrEqual(t, maxInFlight, 2)
}

func TestResetDropsLateResults(t *testing.T) {
	release := make(chan struct{})
	apiMock := &mocks.APIMock{
		BlockFunc: func(ctx context.Context, level int64) (*tzkt.Block, error) {
			<-release
			return &tzkt.Block{Level: level}, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	loadErr := make(chan error, 1)
	go func() {
		loadErr <- store.LoadBlockDetails(context.Background(), 1)
	}()
	require.Eventually(t, func() bool {
		return len(apiMock.BlockCalls()) == 1
	}, time.Second, time.Millisecond)

	store.Reset()
	close(release)

	require.ErrorIs(t, <-loadErr, context.Canceled)
	assert.Nil(t, store.Snapshot().Block)
}

func TestResetDetailsKeepsOverview(t *testing.T) {
	apiMock := &mocks.APIMock{
		BlocksFunc: func(ctx context.Context, page, pageSize int) ([]tzkt.Block, error) {
			return []tzkt.Block{{Level: 100}}, nil
		},
		BlockCountFunc: func(ctx context.Context) (int64, error) {
			return 100, nil
		},
		BlockTransactionCountFunc: func(ctx context.Context, level int64) (int64, error) {
			return 0, nil
		},
		BlockFunc: func(ctx context.Context, level int64) (*tzkt.Block, error) {
			return &tzkt.Block{Level: level}, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	require.NoError(t, store.LoadBlocks(context.Background(), 0, 10))
	require.NoError(t, store.LoadBlockDetails(context.Background(), 100))

	store.ResetDetails()

	st := store.Snapshot()
	assert.Nil(t, st.Block)
	assert.Len(t, st.Blocks, 1)
	assert.Equal(t, int64(100), st.BlockCount)
}

func TestSearch(t *testing.T) {
	const contractAddr = "KT1BEqzn5Wx8uJrZNvuS9DVHmLvG9td3fDLi"

	tests := map[string]struct {
		query       string
		suggestions []tzkt.Suggestion
		remoteErr   error
		expected    []explorer.SearchResult
	}{
		"digits suggest a block level": {
			query:    "12345",
			expected: []explorer.SearchResult{{Kind: "block", Level: 12345}},
		},
		"user address": {
			query:    "tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx",
			expected: []explorer.SearchResult{{Kind: "account", Address: "tz1KqTpEZ7Yob7QbPE4Hy4Wo8fHG8LhKxZSx"}},
		},
		"remote suggestions are classified": {
			query: "bak",
			suggestions: []tzkt.Suggestion{
				{Address: "tz1aaa", Alias: "Baker One"},
				{Address: contractAddr, Alias: "DEX"},
			},
			expected: []explorer.SearchResult{
				{Kind: "account", Address: "tz1aaa", Alias: "Baker One"},
				{Kind: "contract", Address: contractAddr, Alias: "DEX"},
			},
		},
		"digits overflowing int64 are not a block level": {
			query:    "99999999999999999999999",
			expected: nil,
		},
		"remote failure keeps local matches": {
			query:     "12345",
			remoteErr: errors.New("suggest unavailable"),
			expected:  []explorer.SearchResult{{Kind: "block", Level: 12345}},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			apiMock := &mocks.APIMock{
				SuggestAccountsFunc: func(ctx context.Context, query string) ([]tzkt.Suggestion, error) {
					return test.suggestions, test.remoteErr
				},
			}
			store := explorer.New(logrus.New(), apiMock, 2)

			require.NoError(t, store.Search(context.Background(), test.query))
			assert.Equal(t, test.expected, store.Snapshot().SearchResults)
		})
	}
}

func TestErrorListManagement(t *testing.T) {
	apiMock := &mocks.APIMock{
		BlockCountFunc: func(ctx context.Context) (int64, error) {
			return 0, errors.New("down")
		},
		BlockFunc: func(ctx context.Context, level int64) (*tzkt.Block, error) {
			return nil, errors.New("also down")
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	require.Error(t, store.RefreshBlockCount(context.Background()))
	require.Error(t, store.LoadBlockDetails(context.Background(), 1))
	require.Len(t, store.Snapshot().Errors, 2)

	store.RemoveError(5) // out of range, ignored
	require.Len(t, store.Snapshot().Errors, 2)

	store.RemoveError(0)
	errs := store.Snapshot().Errors
	require.Len(t, errs, 1)
	assert.Equal(t, "block details", errs[0].Source)

	store.ClearErrors()
	assert.Empty(t, store.Snapshot().Errors)
}

func TestRefreshBlockCount(t *testing.T) {
	apiMock := &mocks.APIMock{
		BlockCountFunc: func(ctx context.Context) (int64, error) {
			return 999, nil
		},
	}
	store := explorer.New(logrus.New(), apiMock, 2)

	require.NoError(t, store.RefreshBlockCount(context.Background()))
	assert.Equal(t, int64(999), store.Snapshot().BlockCount)
}
