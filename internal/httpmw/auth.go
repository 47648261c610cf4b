package httpmw

import (
	"net/http"
	"strings"
)

// TokenSource supplies the current bearer credential, if a user is logged in.
type TokenSource interface {
	Token() (string, bool)
}

// AuthDoer attaches a bearer credential to requests whose path matches one of
// a fixed set of protected prefixes. Everything else passes through untouched.
type AuthDoer struct {
	next      Doer
	tokens    TokenSource
	protected []string
}

func NewAuthDoer(tokens TokenSource, protected []string, next Doer) *AuthDoer {
	return &AuthDoer{
		next:      next,
		tokens:    tokens,
		protected: protected,
	}
}

func (d *AuthDoer) Do(req *http.Request) (*http.Response, error) {
	token, ok := d.tokens.Token()
	if !ok || !d.isProtected(req.URL.Path) {
		return d.next.Do(req)
	}

	// clone so the caller's request is left unmodified
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+token)
	return d.next.Do(req)
}

func (d *AuthDoer) isProtected(path string) bool {
	for _, prefix := range d.protected {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
