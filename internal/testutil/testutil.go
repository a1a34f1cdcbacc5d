// Package testutil provides test utilities and helpers.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

// Collection bodies shaped like the CMS listing responses.
const (
	DestinationsJSON = `{"items":[{"id":"i1","isDraft":false,"fieldData":{"name":"Qutub Minar","slug":"qutub-minar","weblink":"https://www.theabsolutejourney.com/qutub-minar","region":"399ad996ae4c7d73d6c76c23f37d82d6","state":"0752d49ff4b7934a8e62cceb9f5106e7"}}],"pagination":{"limit":100,"offset":0,"total":1}}`
	ExperiencesJSON  = `{"items":[{"id":"i2","fieldData":{"name":"Tiger Safari","slug":"tiger-safari"}}],"pagination":{"limit":100,"offset":0,"total":1}}`
	WorldJSON        = `{"items":[{"id":"i3","fieldData":{"name":"Silk Road","slug":"silk-road","internal-reference":"Silk Road","type-of-listing":"620b8a0b09a3161b42dde242","continent-2":["620b8a0b09a316172bdde0f6","620b8a0b09a31674a9dde0d0"]}}],"pagination":{"limit":100,"offset":0,"total":1}}`
)

// CMS is a fake CMS serving collection listings.
type CMS struct {
	*httptest.Server
	calls atomic.Int32
}

// Calls returns the number of requests served so far.
func (c *CMS) Calls() int {
	return int(c.calls.Load())
}

// NewCMS starts a fake CMS. bodies maps collection id to listing body; ids
// without a body answer 502. Requests without "Bearer <token>" answer 401.
func NewCMS(t *testing.T, token string, bodies map[string]string) *CMS {
	t.Helper()

	c := &CMS{}
	c.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.calls.Add(1)
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+token {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// Path: [prefix]/collections/{id}/items
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
		if len(parts) < 3 || parts[len(parts)-3] != "collections" || parts[len(parts)-1] != "items" {
			http.NotFound(w, r)
			return
		}
		body, ok := bodies[parts[len(parts)-2]]
		if !ok {
			http.Error(w, `{"message":"upstream failure"}`, http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(c.Close)
	return c
}
