package tzkt

import (
	"context"
	"fmt"
	"net/url"
)

// ContractEvents returns one page of the events emitted by the contract,
// newest first.
func (c *Client) ContractEvents(ctx context.Context, address string, page, pageSize int) ([]ContractEvent, error) {
	query := pageQuery(page, pageSize)
	query.Set("sort.desc", "id")
	query.Set("contract", address)

	var events []ContractEvent
	err := c.get(ctx, "/v1/contracts/events", query, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ContractEventCount returns the total number of events the contract has
// emitted.
func (c *Client) ContractEventCount(ctx context.Context, address string) (int64, error) {
	query := url.Values{"contract": []string{address}}
	count, err := c.getCount(ctx, "/v1/contracts/events/count", query)
	if err != nil {
		return 0, fmt.Errorf("count events for %s: %w", address, err)
	}
	return count, nil
}
