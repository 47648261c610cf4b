package explorer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/tzscout/tzscout/internal/tzkt"
)

// LoadBlocks fetches one page of blocks plus the chain block count, then
// back-fills each block's transaction count with bounded per-level sub
// requests. The state is patched once, after every sub-part resolved; a
// failure anywhere leaves the previous page in place.
func (s *Store) LoadBlocks(ctx context.Context, page, pageSize int) error {
	ctx, gen := s.blocksCall.begin(ctx)

	var blocks []tzkt.Block
	var count int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		blocks, err = s.api.Blocks(gctx, page, pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.api.BlockCount(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.loadFailed("blocks", &s.blocksCall, gen, err)
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(int(s.batch))
	for i := range blocks {
		g.Go(func() error {
			n, err := s.api.BlockTransactionCount(gctx, blocks[i].Level)
			if err != nil {
				return fmt.Errorf("transaction count for level %d: %w", blocks[i].Level, err)
			}
			blocks[i].Transactions = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return s.loadFailed("blocks", &s.blocksCall, gen, err)
	}

	s.patchIfCurrent(&s.blocksCall, gen, func(st *State) {
		st.Blocks = blocks
		st.BlockCount = count
	})
	return ctx.Err()
}

// LoadBlockDetails fetches the block at the given level.
func (s *Store) LoadBlockDetails(ctx context.Context, level int64) error {
	ctx, gen := s.blockDetailCall.begin(ctx)

	block, err := s.api.Block(ctx, level)
	if err != nil {
		return s.loadFailed("block details", &s.blockDetailCall, gen, err)
	}

	s.patchIfCurrent(&s.blockDetailCall, gen, func(st *State) {
		st.Block = block
	})
	return ctx.Err()
}

// LoadBlockTransactions fetches one page of a block's transactions together
// with the block's transaction count. All-or-nothing: either both fields are
// patched or neither.
func (s *Store) LoadBlockTransactions(ctx context.Context, level int64, page, pageSize int) error {
	ctx, gen := s.blockTxsCall.begin(ctx)

	var txs []tzkt.Transaction
	var count int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.api.BlockTransactions(gctx, level, page, pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.api.BlockTransactionCount(gctx, level)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.loadFailed("block transactions", &s.blockTxsCall, gen, err)
	}

	s.patchIfCurrent(&s.blockTxsCall, gen, func(st *State) {
		st.Transactions = txs
		st.TransactionCount = count
	})
	return ctx.Err()
}

// LoadAccount classifies the address by prefix and fetches either the user
// account or the contract. The same patch sets one field and clears the
// other, so the store never associates both with one address.
func (s *Store) LoadAccount(ctx context.Context, address string) error {
	ctx, gen := s.accountCall.begin(ctx)

	switch tzkt.ClassifyAddress(address) {
	case tzkt.AddressContract:
		contract, err := s.api.Contract(ctx, address)
		if err != nil {
			return s.loadFailed("contract", &s.accountCall, gen, err)
		}
		s.patchIfCurrent(&s.accountCall, gen, func(st *State) {
			st.Contract = contract
			st.Account = nil
		})
	case tzkt.AddressUser:
		account, err := s.api.Account(ctx, address)
		if err != nil {
			return s.loadFailed("account", &s.accountCall, gen, err)
		}
		s.patchIfCurrent(&s.accountCall, gen, func(st *State) {
			st.Account = account
			st.Contract = nil
		})
	default:
		return fmt.Errorf("cannot classify address %q", address)
	}
	return ctx.Err()
}

// LoadAccountOperations fetches one cursor page of the account's operations
// together with the total operation count. All-or-nothing.
func (s *Store) LoadAccountOperations(ctx context.Context, address string, lastID int64, limit int) error {
	ctx, gen := s.operationsCall.begin(ctx)

	var ops []tzkt.AccountOperation
	var count int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ops, err = s.api.AccountOperations(gctx, address, lastID, limit)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.api.AccountOperationCount(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.loadFailed("account operations", &s.operationsCall, gen, err)
	}

	s.patchIfCurrent(&s.operationsCall, gen, func(st *State) {
		st.Operations = ops
		st.OperationCount = count
	})
	return ctx.Err()
}

// LoadContractDetails fetches the contract's entrypoints, views, storage
// tree and interface as one batch, with at most batchConcurrency requests
// outstanding at a time. Sections succeed or fail independently: whatever
// succeeded is patched, a failed section keeps its zero value and records an
// error. The returned error joins all section failures.
func (s *Store) LoadContractDetails(ctx context.Context, address string) error {
	ctx, gen := s.contractCall.begin(ctx)

	sem := semaphore.NewWeighted(s.batch)
	var wg sync.WaitGroup
	var mu sync.Mutex

	var entrypoints []tzkt.Entrypoint
	var views []tzkt.ContractView
	var storage, iface json.RawMessage
	done := make(map[string]bool, 4)
	var errs []error

	section := func(name string, fetch func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
				return
			}
			defer sem.Release(1)

			err := fetch(ctx)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			done[name] = true
		}()
	}

	section("entrypoints", func(ctx context.Context) error {
		var err error
		entrypoints, err = s.api.ContractEntrypoints(ctx, address)
		return err
	})
	section("views", func(ctx context.Context) error {
		var err error
		views, err = s.api.ContractViews(ctx, address)
		return err
	})
	section("storage", func(ctx context.Context) error {
		var err error
		storage, err = s.api.ContractStorage(ctx, address)
		return err
	})
	section("interface", func(ctx context.Context) error {
		var err error
		iface, err = s.api.ContractInterface(ctx, address)
		return err
	})
	wg.Wait()

	s.patchIfCurrent(&s.contractCall, gen, func(st *State) {
		if done["entrypoints"] {
			st.Entrypoints = entrypoints
		}
		if done["views"] {
			st.Views = views
		}
		if done["storage"] {
			st.Storage = storage
		}
		if done["interface"] {
			st.Interface = iface
		}
		for _, err := range errs {
			if errors.Is(err, context.Canceled) {
				continue
			}
			st.Errors = append(st.Errors, ErrorEntry{
				Time:    time.Now(),
				Source:  "contract details",
				Message: err.Error(),
			})
		}
	})

	if len(errs) > 0 {
		loadFailures.WithLabelValues("contract details").Inc()
		return fmt.Errorf("load contract details: %w", errors.Join(errs...))
	}
	return ctx.Err()
}

// LoadTokenBalances fetches one page of the account's non-zero token
// balances plus their total count. All-or-nothing.
func (s *Store) LoadTokenBalances(ctx context.Context, address string, page, pageSize int) error {
	ctx, gen := s.tokenCall.begin(ctx)

	var balances []tzkt.TokenBalance
	var count int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balances, err = s.api.TokenBalances(gctx, address, page, pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.api.TokenBalanceCount(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.loadFailed("token balances", &s.tokenCall, gen, err)
	}

	s.patchIfCurrent(&s.tokenCall, gen, func(st *State) {
		st.TokenBalances = balances
		st.TokenBalanceCount = count
	})
	return ctx.Err()
}

// LoadContractEvents fetches one page of the contract's events plus their
// total count. All-or-nothing.
func (s *Store) LoadContractEvents(ctx context.Context, address string, page, pageSize int) error {
	ctx, gen := s.eventsCall.begin(ctx)

	var events []tzkt.ContractEvent
	var count int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.api.ContractEvents(gctx, address, page, pageSize)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.api.ContractEventCount(gctx, address)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.loadFailed("contract events", &s.eventsCall, gen, err)
	}

	s.patchIfCurrent(&s.eventsCall, gen, func(st *State) {
		st.Events = events
		st.EventCount = count
	})
	return ctx.Err()
}

var blockLevelPattern = regexp.MustCompile(`^[0-9]+$`)

// Search merges local pattern matches (block level digits, recognizable
// address prefixes) with remote account suggestions. A remote failure
// degrades to local matches only instead of failing the search.
func (s *Store) Search(ctx context.Context, query string) error {
	ctx, gen := s.searchCall.begin(ctx)

	results := localMatches(query)

	suggestions, err := s.api.SuggestAccounts(ctx, query)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		s.logger.WithError(err).WithField("query", query).Warn("Remote suggestions unavailable, keeping local matches")
	}
	for _, sg := range suggestions {
		kind := "account"
		if tzkt.ClassifyAddress(sg.Address) == tzkt.AddressContract {
			kind = "contract"
		}
		results = append(results, SearchResult{
			Kind:    kind,
			Address: sg.Address,
			Alias:   sg.Alias,
		})
	}

	s.patchIfCurrent(&s.searchCall, gen, func(st *State) {
		st.SearchResults = results
	})
	return ctx.Err()
}

func localMatches(query string) []SearchResult {
	var results []SearchResult
	if blockLevelPattern.MatchString(query) {
		// digits overflowing int64 cannot name a block level
		level, err := strconv.ParseInt(query, 10, 64)
		if err == nil {
			results = append(results, SearchResult{Kind: "block", Level: level})
		}
	}
	switch tzkt.ClassifyAddress(query) {
	case tzkt.AddressContract:
		results = append(results, SearchResult{Kind: "contract", Address: query})
	case tzkt.AddressUser:
		results = append(results, SearchResult{Kind: "account", Address: query})
	}
	return results
}

// RefreshBlockCount is the lightweight refresh the overview poller runs.
func (s *Store) RefreshBlockCount(ctx context.Context) error {
	ctx, gen := s.countRefreshCall.begin(ctx)

	count, err := s.api.BlockCount(ctx)
	if err != nil {
		return s.loadFailed("block count", &s.countRefreshCall, gen, err)
	}

	s.patchIfCurrent(&s.countRefreshCall, gen, func(st *State) {
		st.BlockCount = count
	})
	return ctx.Err()
}

// loadFailed records a load failure in the error list, unless the load was
// superseded or cancelled, in which case nothing is recorded and the caller
// just gets the context error back.
func (s *Store) loadFailed(source string, slot *callSlot, gen uint64, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	loadFailures.WithLabelValues(source).Inc()
	s.patchIfCurrent(slot, gen, func(st *State) {
		st.Errors = append(st.Errors, ErrorEntry{
			Time:    time.Now(),
			Source:  source,
			Message: err.Error(),
		})
	})
	return fmt.Errorf("load %s: %w", source, err)
}
