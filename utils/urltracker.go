package utils

import (
	"net/url"
	"strings"
	"sync"
)

// URLTracker deduplicates detail-page URLs within one run. Two links that
// differ only in scheme, host case, a trailing slash or a fragment count as
// the same page.
type URLTracker struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewURLTracker() *URLTracker {
	return &URLTracker{seen: make(map[string]struct{})}
}

// Add records rawURL and reports whether its page had not been seen yet
func (t *URLTracker) Add(rawURL string) bool {
	key := pageKey(rawURL)

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, dup := t.seen[key]; dup {
		return false
	}
	t.seen[key] = struct{}{}
	return true
}

func (t *URLTracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.seen)
}

func pageKey(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return strings.TrimRight(rawURL, "/")
	}
	return strings.ToLower(u.Host) + strings.TrimRight(u.EscapedPath(), "/") + "?" + u.RawQuery
}
