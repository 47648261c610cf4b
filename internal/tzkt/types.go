package tzkt

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

// AddressKind is the result of classifying a raw address string. The address
// prefix is the only discriminant between user accounts and contracts; it is
// never stored as a flag.
type AddressKind int

const (
	AddressUnknown AddressKind = iota
	AddressUser
	AddressContract
)

var userAddressPattern = regexp.MustCompile(`^tz[123][1-9A-HJ-NP-Za-km-z]*$`)

// ClassifyAddress reports whether addr names a user account (tz1/tz2/tz3
// prefix), an originated contract (KT1 prefix), or neither.
func ClassifyAddress(addr string) AddressKind {
	switch {
	case strings.HasPrefix(addr, "KT1"):
		return AddressContract
	case userAddressPattern.MatchString(addr):
		return AddressUser
	default:
		return AddressUnknown
	}
}

// Alias pairs an address with its registered display name, if any.
type Alias struct {
	Alias   string `json:"alias,omitempty"`
	Address string `json:"address"`
}

// Block is one block of the chain, identified by its level (monotonic
// height). Immutable once fetched.
type Block struct {
	Level     int64     `json:"level"`
	Hash      string    `json:"hash"`
	Timestamp time.Time `json:"timestamp"`
	Proposer  Alias     `json:"proposer"`

	// Transactions is back-filled by a per-level count request; the list
	// endpoint does not include it.
	Transactions int64 `json:"-"`
}

// TxStatus is the outcome of an on-chain operation.
type TxStatus string

const (
	StatusApplied     TxStatus = "applied"
	StatusFailed      TxStatus = "failed"
	StatusBacktracked TxStatus = "backtracked"
	StatusSkipped     TxStatus = "skipped"
)

// Transaction is a transfer operation within a single block. Amount is in
// mutez (1e6 mutez = 1 tez).
type Transaction struct {
	ID        int64     `json:"id"`
	Level     int64     `json:"level"`
	Timestamp time.Time `json:"timestamp"`
	Sender    Alias     `json:"sender"`
	Target    Alias     `json:"target"`
	Amount    int64     `json:"amount"`
	Status    TxStatus  `json:"status"`
}

// Account is a user account.
type Account struct {
	Address           string    `json:"address"`
	Alias             string    `json:"alias,omitempty"`
	Balance           int64     `json:"balance"`
	Counter           int64     `json:"counter"`
	NumTransactions   int64     `json:"numTransactions"`
	FirstActivityTime time.Time `json:"firstActivityTime"`
	LastActivityTime  time.Time `json:"lastActivityTime"`
}

// Contract is an originated account with code.
type Contract struct {
	Account
	Kind     string   `json:"kind"`
	Tzips    []string `json:"tzips"`
	Creator  Alias    `json:"creator"`
	CodeHash int64    `json:"codeHash"`
	TypeHash int64    `json:"typeHash"`
}

// AccountOperation is one ledger event tied to an account, ordered by id
// descending for cursor pagination.
type AccountOperation struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Level     int64     `json:"level"`
	Timestamp time.Time `json:"timestamp"`
	Sender    Alias     `json:"sender"`
	Target    Alias     `json:"target"`
	Amount    int64     `json:"amount"`
	Status    TxStatus  `json:"status"`
}

// Entrypoint describes one callable entrypoint of a contract.
type Entrypoint struct {
	Name           string          `json:"name"`
	JSONParameters json.RawMessage `json:"jsonParameters"`
	Unused         bool            `json:"unused"`
}

// ContractView describes an off-chain view of a contract.
type ContractView struct {
	Name              string          `json:"name"`
	JSONParameterType json.RawMessage `json:"jsonParameterType"`
	JSONReturnType    json.RawMessage `json:"jsonReturnType"`
}

// TokenMetadata is the display metadata a token ships with. Decimals arrives
// as a string and is only used for fixed-point rendering.
type TokenMetadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals string `json:"decimals"`
}

// Token identifies a token within its ledger contract.
type Token struct {
	Contract Alias         `json:"contract"`
	TokenID  string        `json:"tokenId"`
	Standard string        `json:"standard"`
	Metadata TokenMetadata `json:"metadata"`
}

// TokenBalance is an account+token pairing with a raw integer balance string.
type TokenBalance struct {
	Balance string `json:"balance"`
	Token   Token  `json:"token"`
}

// ContractEvent is a tagged payload emitted by a contract.
type ContractEvent struct {
	ID        int64           `json:"id"`
	Level     int64           `json:"level"`
	Timestamp time.Time       `json:"timestamp"`
	Tag       string          `json:"tag"`
	Payload   json.RawMessage `json:"payload"`
}

// Suggestion is one remote match for a search query.
type Suggestion struct {
	Kind    string `json:"type"`
	Address string `json:"address"`
	Alias   string `json:"alias,omitempty"`
}
