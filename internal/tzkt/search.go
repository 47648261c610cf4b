package tzkt

import (
	"context"
	"net/url"
)

// SuggestAccounts returns remote account suggestions matching query.
func (c *Client) SuggestAccounts(ctx context.Context, query string) ([]Suggestion, error) {
	var suggestions []Suggestion
	err := c.get(ctx, "/v1/suggest/accounts/"+url.PathEscape(query), nil, &suggestions)
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}
