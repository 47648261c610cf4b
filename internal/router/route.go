package router

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Kind is the closed set of route classifications. Unknown paths classify as
// KindOther and trigger no loads.
type Kind int

const (
	KindOther Kind = iota
	KindOverview
	KindDetails
	KindAccount
)

func (k Kind) String() string {
	switch k {
	case KindOverview:
		return "overview"
	case KindDetails:
		return "details"
	case KindAccount:
		return "account"
	default:
		return "other"
	}
}

// Tabs selecting the account sub-resource to load.
const (
	TabOperations = "operations"
	TabTokens     = "tokens"
	TabEvents     = "events"
	TabContract   = "contract"
)

const (
	// DefaultPage is the 0-indexed first page.
	DefaultPage = 0
	// DefaultPageSize is used when the URL carries no usable pageSize.
	DefaultPageSize = 10
)

// Route is the full set of loading parameters derived from one URL. All
// fields are comparable, so two derivations can be checked for equality
// directly when suppressing redundant loads.
type Route struct {
	Kind     Kind
	Level    int64
	Address  string
	Tab      string
	Page     int
	PageSize int
	LastID   int64
}

// ParseRoute classifies a raw URL string.
func ParseRoute(rawURL string) (Route, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Route{}, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	return Classify(u), nil
}

// Classify derives the Route for u. Path prefixes pick the kind; query
// parameters carry pagination. A details path whose level does not parse, or
// an account path without an address, classifies as KindOther.
func Classify(u *url.URL) Route {
	query := u.Query()
	page, pageSize := PaginationParams(query)
	route := Route{
		Kind:     KindOther,
		Tab:      tabParam(query),
		Page:     page,
		PageSize: pageSize,
		LastID:   numericParam(query, "lastId", 0),
	}

	path := strings.TrimSuffix(u.Path, "/")
	switch {
	case path == "":
		route.Kind = KindOverview
	case strings.HasPrefix(path, "/details/"):
		level, err := strconv.ParseInt(strings.TrimPrefix(path, "/details/"), 10, 64)
		if err != nil {
			return route
		}
		route.Kind = KindDetails
		route.Level = level
	case strings.HasPrefix(path, "/account/"):
		address := strings.TrimPrefix(path, "/account/")
		if address == "" || strings.Contains(address, "/") {
			return route
		}
		route.Kind = KindAccount
		route.Address = address
	}
	return route
}

// PaginationParams derives page and pageSize from query parameters. Each
// falls back to its default individually when absent or non-numeric; a zero
// or negative pageSize also falls back, since no list view can use it.
func PaginationParams(query url.Values) (page, pageSize int) {
	page = int(numericParam(query, "page", DefaultPage))
	if page < 0 {
		page = DefaultPage
	}
	pageSize = int(numericParam(query, "pageSize", DefaultPageSize))
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// numericParam coerces a query parameter to an integer, mapping absent or
// non-numeric values to fallback rather than an error.
func numericParam(query url.Values, name string, fallback int64) int64 {
	raw := query.Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func tabParam(query url.Values) string {
	switch tab := query.Get("tab"); tab {
	case TabTokens, TabEvents, TabContract:
		return tab
	default:
		return TabOperations
	}
}
