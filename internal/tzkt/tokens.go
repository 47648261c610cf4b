package tzkt

import (
	"context"
	"net/url"
)

// TokenBalances returns one page of the account's non-zero token balances.
func (c *Client) TokenBalances(ctx context.Context, address string, page, pageSize int) ([]TokenBalance, error) {
	query := pageQuery(page, pageSize)
	query.Set("account", address)
	query.Set("balance.gt", "0")

	var balances []TokenBalance
	err := c.get(ctx, "/v1/tokens/balances", query, &balances)
	if err != nil {
		return nil, err
	}
	return balances, nil
}

// TokenBalanceCount returns the number of non-zero token balances the
// account holds.
func (c *Client) TokenBalanceCount(ctx context.Context, address string) (int64, error) {
	query := url.Values{
		"account":    []string{address},
		"balance.gt": []string{"0"},
	}
	return c.getCount(ctx, "/v1/tokens/balances/count", query)
}
