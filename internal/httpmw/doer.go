// Package httpmw implements the cross-cutting request policy applied to every
// call the explorer makes against the indexing API. Stages are plain Doer
// decorators composed outermost-first:
//
//	loading counter → auth attachment → response cache → error translation → retrying client
//
// Auth runs above the cache so cache keys never vary with auth state; the
// loading counter wraps everything so it covers the full request lifecycle
// including retries performed below it.
package httpmw

import "net/http"

// Doer issues a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to the Doer interface.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}
