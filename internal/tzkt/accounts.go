package tzkt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Account returns the user account at the given address.
func (c *Client) Account(ctx context.Context, address string) (*Account, error) {
	var account Account
	err := c.get(ctx, "/v1/accounts/"+url.PathEscape(address), nil, &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// Contract returns the originated contract at the given address.
func (c *Client) Contract(ctx context.Context, address string) (*Contract, error) {
	var contract Contract
	err := c.get(ctx, "/v1/contracts/"+url.PathEscape(address), nil, &contract)
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// AccountOperations returns one page of the account's operations, newest
// first. lastID is the cursor boundary: only operations with a smaller id are
// returned. Pass 0 for the first page.
func (c *Client) AccountOperations(ctx context.Context, address string, lastID int64, limit int) ([]AccountOperation, error) {
	query := url.Values{
		"sort.desc": []string{"id"},
		"limit":     []string{strconv.Itoa(limit)},
	}
	if lastID > 0 {
		query.Set("lastId", strconv.FormatInt(lastID, 10))
	}

	var ops []AccountOperation
	err := c.get(ctx, fmt.Sprintf("/v1/accounts/%s/operations", url.PathEscape(address)), query, &ops)
	if err != nil {
		return nil, err
	}
	return ops, nil
}

// AccountOperationCount returns the account's total number of operations.
func (c *Client) AccountOperationCount(ctx context.Context, address string) (int64, error) {
	return c.getCount(ctx, fmt.Sprintf("/v1/accounts/%s/operations/count", url.PathEscape(address)), nil)
}

// ContractEntrypoints returns the contract's callable entrypoints.
func (c *Client) ContractEntrypoints(ctx context.Context, address string) ([]Entrypoint, error) {
	var entrypoints []Entrypoint
	err := c.get(ctx, fmt.Sprintf("/v1/contracts/%s/entrypoints", url.PathEscape(address)), nil, &entrypoints)
	if err != nil {
		return nil, err
	}
	return entrypoints, nil
}

// ContractViews returns the contract's off-chain views.
func (c *Client) ContractViews(ctx context.Context, address string) ([]ContractView, error) {
	var views []ContractView
	err := c.get(ctx, fmt.Sprintf("/v1/contracts/%s/views", url.PathEscape(address)), nil, &views)
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ContractStorage returns the contract's current storage tree as raw JSON.
func (c *Client) ContractStorage(ctx context.Context, address string) (json.RawMessage, error) {
	return c.getRaw(ctx, fmt.Sprintf("/v1/contracts/%s/storage", url.PathEscape(address)), nil)
}

// ContractInterface returns the contract's interface description as raw JSON.
func (c *Client) ContractInterface(ctx context.Context, address string) (json.RawMessage, error) {
	return c.getRaw(ctx, fmt.Sprintf("/v1/contracts/%s/interface", url.PathEscape(address)), nil)
}
