package tzkt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzscout/tzscout/internal/tzkt"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *tzkt.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return tzkt.New(logrus.New(), ts.Client(), ts.URL)
}

func TestBlocks(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/blocks", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "level", r.URL.Query().Get("sort.desc"))
		_, _ = w.Write([]byte(`[
			{"level": 12346, "hash": "BM2", "timestamp": "2024-05-01T00:00:30Z", "proposer": {"alias": "Baker Two", "address": "tz1bbb"}},
			{"level": 12345, "hash": "BM1", "timestamp": "2024-05-01T00:00:00Z", "proposer": {"address": "tz1aaa"}}
		]`))
	})

	blocks, err := client.Blocks(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, tzkt.Block{
		Level:     12346,
		Hash:      "BM2",
		Timestamp: time.Date(2024, 5, 1, 0, 0, 30, 0, time.UTC),
		Proposer:  tzkt.Alias{Alias: "Baker Two", Address: "tz1bbb"},
	}, blocks[0])
	assert.Equal(t, int64(12345), blocks[1].Level)
	assert.Empty(t, blocks[1].Proposer.Alias)
}

func TestBlockCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/blocks/count", r.URL.Path)
		_, _ = w.Write([]byte(`7891011`))
	})

	count, err := client.BlockCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7891011), count)
}

func TestBlockTransactions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/operations/transactions", r.URL.Path)
		assert.Equal(t, "12345", r.URL.Query().Get("level"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "0", r.URL.Query().Get("offset"))
		_, _ = w.Write([]byte(`[
			{"id": 1, "level": 12345, "sender": {"address": "tz1aaa"}, "target": {"address": "KT1bbb"}, "amount": 2500000, "status": "applied"}
		]`))
	})

	txs, err := client.BlockTransactions(context.Background(), 12345, 0, 10)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, tzkt.StatusApplied, txs[0].Status)
	assert.Equal(t, int64(2500000), txs[0].Amount)
}

func TestAccountOperationsCursor(t *testing.T) {
	tests := map[string]struct {
		lastID         int64
		expectedLastID string
	}{
		"first page omits the cursor": {
			lastID:         0,
			expectedLastID: "",
		},
		"later pages pass the boundary id": {
			lastID:         987654,
			expectedLastID: "987654",
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/accounts/tz1aaa/operations", r.URL.Path)
				assert.Equal(t, "id", r.URL.Query().Get("sort.desc"))
				assert.Equal(t, "10", r.URL.Query().Get("limit"))
				assert.Equal(t, test.expectedLastID, r.URL.Query().Get("lastId"))
				_, _ = w.Write([]byte(`[{"id": 5, "type": "transaction"}]`))
			})

			ops, err := client.AccountOperations(context.Background(), "tz1aaa", test.lastID, 10)
			require.NoError(t, err)
			require.Len(t, ops, 1)
			assert.Equal(t, int64(5), ops[0].ID)
		})
	}
}

func TestTokenBalancesFiltersZero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/tokens/balances", r.URL.Path)
		assert.Equal(t, "tz1aaa", r.URL.Query().Get("account"))
		assert.Equal(t, "0", r.URL.Query().Get("balance.gt"))
		_, _ = w.Write([]byte(`[
			{"balance": "1500000", "token": {"contract": {"address": "KT1ccc"}, "tokenId": "0", "standard": "fa2", "metadata": {"symbol": "USDt", "decimals": "6"}}}
		]`))
	})

	balances, err := client.TokenBalances(context.Background(), "tz1aaa", 0, 10)
	require.NoError(t, err)
	require.Len(t, balances, 1)
	assert.Equal(t, "1500000", balances[0].Balance)
	assert.Equal(t, "USDt", balances[0].Token.Metadata.Symbol)
	assert.Equal(t, "6", balances[0].Token.Metadata.Decimals)
}

func TestContractStorageKeepsRawTree(t *testing.T) {
	storage := `{"ledger": 1234, "paused": false, "nested": {"deep": ["a", "b"]}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/contracts/KT1ccc/storage", r.URL.Path)
		_, _ = w.Write([]byte(storage))
	})

	raw, err := client.ContractStorage(context.Background(), "KT1ccc")
	require.NoError(t, err)
	assert.JSONEq(t, storage, string(raw))
}

func TestContractEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/contracts/events", r.URL.Path)
		assert.Equal(t, "KT1ccc", r.URL.Query().Get("contract"))
		assert.Equal(t, "id", r.URL.Query().Get("sort.desc"))
		_, _ = w.Write([]byte(`[{"id": 9, "tag": "transfer", "payload": {"from": "tz1aaa"}}]`))
	})

	events, err := client.ContractEvents(context.Background(), "KT1ccc", 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "transfer", events[0].Tag)
}

func TestSuggestAccounts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/suggest/accounts/bak", r.URL.Path)
		_, _ = w.Write([]byte(`[{"alias": "Baker One", "address": "tz1aaa"}]`))
	})

	suggestions, err := client.SuggestAccounts(context.Background(), "bak")
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Baker One", suggestions[0].Alias)
}

func TestGetDecodesFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.BlockCount(context.Background())
	require.Error(t, err)
}
