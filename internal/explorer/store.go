// Package explorer holds the client-side state of the explorer: the
// last-known-good snapshot of every resource a view can display, plus the
// load methods that fetch and patch it. Data enters the store only on
// successful fetches and is replaced wholesale; a failed load leaves the
// previous value in place so a transient error never blanks a view.
package explorer

import (
	"encoding/json"
	"slices"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tzscout/tzscout/internal/tzkt"
)

// DefaultBatchConcurrency bounds the simultaneous sub-requests of batch
// loads. A politeness policy toward the remote API, not a correctness
// requirement.
const DefaultBatchConcurrency = 3

// SearchResult is one match for a search query, synthesized locally from
// the query's shape or fetched from the remote suggestion endpoint. Ephemeral.
type SearchResult struct {
	Kind    string `json:"kind"` // "block", "account", "contract"
	Level   int64  `json:"level,omitempty"`
	Address string `json:"address,omitempty"`
	Alias   string `json:"alias,omitempty"`
}

// ErrorEntry is one recorded load failure. The list is append-only until
// explicitly cleared.
type ErrorEntry struct {
	Time    time.Time `json:"time"`
	Source  string    `json:"source"`
	Message string    `json:"message"`
}

// State is the snapshot of everything the explorer can display. Zero value
// is the documented initial empty state. Exactly one of Account/Contract is
// set for a given address; the address prefix decides which.
type State struct {
	Blocks     []tzkt.Block `json:"blocks"`
	BlockCount int64        `json:"blockCount"`

	Block            *tzkt.Block        `json:"block,omitempty"`
	Transactions     []tzkt.Transaction `json:"transactions"`
	TransactionCount int64              `json:"transactionCount"`

	Account  *tzkt.Account  `json:"account,omitempty"`
	Contract *tzkt.Contract `json:"contract,omitempty"`

	Operations     []tzkt.AccountOperation `json:"operations"`
	OperationCount int64                   `json:"operationCount"`

	Entrypoints []tzkt.Entrypoint   `json:"entrypoints"`
	Views       []tzkt.ContractView `json:"views"`
	Storage     json.RawMessage     `json:"storage,omitempty"`
	Interface   json.RawMessage     `json:"interface,omitempty"`

	TokenBalances     []tzkt.TokenBalance `json:"tokenBalances"`
	TokenBalanceCount int64               `json:"tokenBalanceCount"`

	Events     []tzkt.ContractEvent `json:"events"`
	EventCount int64                `json:"eventCount"`

	SearchResults []SearchResult `json:"searchResults"`

	Errors []ErrorEntry `json:"errors"`
}

// Store is the single constructed instance holding State. All mutation goes
// through patch, one atomic step under one mutex; no patch is ever split
// across request boundaries.
type Store struct {
	logger *logrus.Logger
	api    API
	batch  int64

	mu    sync.Mutex
	state State

	// one slot per load method
	blocksCall       callSlot
	blockDetailCall  callSlot
	blockTxsCall     callSlot
	accountCall      callSlot
	operationsCall   callSlot
	contractCall     callSlot
	tokenCall        callSlot
	eventsCall       callSlot
	searchCall       callSlot
	countRefreshCall callSlot
}

// New constructs a Store. batchConcurrency bounds batch sub-requests;
// values < 1 fall back to DefaultBatchConcurrency.
func New(logger *logrus.Logger, api API, batchConcurrency int) *Store {
	if batchConcurrency < 1 {
		batchConcurrency = DefaultBatchConcurrency
	}
	return &Store{
		logger: logger,
		api:    api,
		batch:  int64(batchConcurrency),
	}
}

// Snapshot returns a copy of the current state. Slices are cloned so the
// caller can hold the snapshot across later patches.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	st.Blocks = slices.Clone(st.Blocks)
	st.Transactions = slices.Clone(st.Transactions)
	st.Operations = slices.Clone(st.Operations)
	st.Entrypoints = slices.Clone(st.Entrypoints)
	st.Views = slices.Clone(st.Views)
	st.TokenBalances = slices.Clone(st.TokenBalances)
	st.Events = slices.Clone(st.Events)
	st.SearchResults = slices.Clone(st.SearchResults)
	st.Errors = slices.Clone(st.Errors)
	return st
}

// patchIfCurrent applies fn to the state only if gen still identifies slot's
// latest call. Returns whether the patch was applied.
func (s *Store) patchIfCurrent(slot *callSlot, gen uint64, fn func(*State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slot.current(gen) {
		staleResultsDropped.Inc()
		return false
	}
	fn(&s.state)
	return true
}

// patch applies fn unconditionally. Used for explicit user mutations
// (error-list management) that no request generation owns.
func (s *Store) patch(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.state)
}

func (s *Store) slots() []*callSlot {
	return []*callSlot{
		&s.blocksCall, &s.blockDetailCall, &s.blockTxsCall, &s.accountCall,
		&s.operationsCall, &s.contractCall, &s.tokenCall, &s.eventsCall,
		&s.searchCall, &s.countRefreshCall,
	}
}

// Reset restores every field to its initial empty value. Safe to call with
// requests in flight: every call slot is invalidated first, so a result that
// arrives after the reset is dropped instead of resurrecting cleared state.
func (s *Store) Reset() {
	for _, slot := range s.slots() {
		slot.invalidate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

// ResetDetails clears the detail-view fields when navigating away from a
// detail page, leaving the overview fields and the error list alone.
func (s *Store) ResetDetails() {
	for _, slot := range []*callSlot{
		&s.blockDetailCall, &s.blockTxsCall, &s.accountCall, &s.operationsCall,
		&s.contractCall, &s.tokenCall, &s.eventsCall,
	} {
		slot.invalidate()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := &s.state
	st.Block = nil
	st.Transactions = nil
	st.TransactionCount = 0
	st.Account = nil
	st.Contract = nil
	st.Operations = nil
	st.OperationCount = 0
	st.Entrypoints = nil
	st.Views = nil
	st.Storage = nil
	st.Interface = nil
	st.TokenBalances = nil
	st.TokenBalanceCount = 0
	st.Events = nil
	st.EventCount = 0
}

// RemoveError drops the error at index i; out-of-range indexes are ignored.
func (s *Store) RemoveError(i int) {
	s.patch(func(st *State) {
		if i < 0 || i >= len(st.Errors) {
			return
		}
		st.Errors = append(st.Errors[:i:i], st.Errors[i+1:]...)
	})
}

// ClearErrors empties the error list.
func (s *Store) ClearErrors() {
	s.patch(func(st *State) {
		st.Errors = nil
	})
}
