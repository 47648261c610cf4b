package httpmw_test

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/tzscout/tzscout/internal/notify"
)

func okResponse(req *http.Request, body string) *http.Response {
	return responseWithStatus(req, http.StatusOK, body)
}

func responseWithStatus(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

// publisherStub records published notifications for assertions.
type publisherStub struct {
	mu        sync.Mutex
	published []notify.Notification
}

func (p *publisherStub) Publish(n notify.Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, n)
}

func (p *publisherStub) all() []notify.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notify.Notification(nil), p.published...)
}
