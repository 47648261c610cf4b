// Package tzkt is a read-only client for a TzKT-style chain indexing API.
// It is stateless: every method builds one GET request, issues it through the
// injected interceptor chain, and decodes the JSON response.
package tzkt

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/tzscout/tzscout/internal/httpmw"
)

// DefaultBaseURL is the public TzKT mainnet endpoint.
const DefaultBaseURL = "https://api.tzkt.io"

type Client struct {
	logger  *logrus.Logger
	doer    httpmw.Doer
	baseURL string
}

func New(logger *logrus.Logger, doer httpmw.Doer, baseURL string) *Client {
	return &Client{
		logger:  logger,
		doer:    doer,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// get issues a GET for path with the given query and decodes the response
// into out. Count endpoints decode into *int64, everything else into slices
// or structs.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.getRaw(ctx, path, query)
	if err != nil {
		return err
	}

	err = json.Unmarshal(raw, out)
	if err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// getRaw issues a GET and returns the undecoded body. Used directly for
// resources kept as raw JSON trees (contract storage, interface).
func (c *Client) getRaw(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for %s: %w", path, err)
	}

	apiRequests.Inc()
	resp, err := c.doer.Do(req)
	if err != nil {
		apiRequestFailures.Inc()
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var raw json.RawMessage
	err = json.NewDecoder(resp.Body).Decode(&raw)
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", path, err)
	}
	return raw, nil
}

// getCount issues a GET against a count endpoint, which returns a bare number.
func (c *Client) getCount(ctx context.Context, path string, query url.Values) (int64, error) {
	var count int64
	err := c.get(ctx, path, query, &count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// pageQuery maps 0-indexed page/pageSize pagination onto the API's
// limit/offset parameters.
func pageQuery(page, pageSize int) url.Values {
	return url.Values{
		"limit":  []string{strconv.Itoa(pageSize)},
		"offset": []string{strconv.Itoa(page * pageSize)},
	}
}
