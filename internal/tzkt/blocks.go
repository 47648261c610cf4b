package tzkt

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Blocks returns one page of blocks sorted by descending level.
func (c *Client) Blocks(ctx context.Context, page, pageSize int) ([]Block, error) {
	query := pageQuery(page, pageSize)
	query.Set("sort.desc", "level")

	var blocks []Block
	err := c.get(ctx, "/v1/blocks", query, &blocks)
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

// BlockCount returns the total number of blocks known to the indexer.
func (c *Client) BlockCount(ctx context.Context) (int64, error) {
	return c.getCount(ctx, "/v1/blocks/count", nil)
}

// Block returns the block at the given level.
func (c *Client) Block(ctx context.Context, level int64) (*Block, error) {
	var block Block
	err := c.get(ctx, fmt.Sprintf("/v1/blocks/%d", level), nil, &block)
	if err != nil {
		return nil, err
	}
	return &block, nil
}

// BlockTransactions returns one page of the transactions included in the
// block at the given level.
func (c *Client) BlockTransactions(ctx context.Context, level int64, page, pageSize int) ([]Transaction, error) {
	query := pageQuery(page, pageSize)
	query.Set("level", strconv.FormatInt(level, 10))

	var txs []Transaction
	err := c.get(ctx, "/v1/operations/transactions", query, &txs)
	if err != nil {
		return nil, err
	}
	return txs, nil
}

// BlockTransactionCount returns the number of transactions in the block at
// the given level.
func (c *Client) BlockTransactionCount(ctx context.Context, level int64) (int64, error) {
	query := url.Values{"level": []string{strconv.FormatInt(level, 10)}}
	return c.getCount(ctx, "/v1/operations/transactions/count", query)
}
