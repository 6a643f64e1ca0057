// pkg/memcache/generation_cache.go
package mem

import (
	"sync"
	"time"
)

const maxCachedResponses = 1000

type cachedResponse struct {
	content   string
	expiresAt time.Time
}

// ResponseCache is a TTL cache for raw generation responses, keyed by
// a prompt digest. It lives inside the transport client; orchestration
// code above it never sees cached vs fresh results differently.
type ResponseCache struct {
	mu   sync.RWMutex
	ttl  time.Duration
	data map[string]cachedResponse
}

func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ResponseCache{
		ttl:  ttl,
		data: make(map[string]cachedResponse),
	}
}

func (s *ResponseCache) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok || time.Now().After(e.expiresAt) {
		return "", false
	}
	return e.content, true
}

func (s *ResponseCache) Set(key, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = cachedResponse{
		content:   content,
		expiresAt: time.Now().Add(s.ttl),
	}

	// Cheap cleanup: drop expired entries once the map grows large.
	if len(s.data) > maxCachedResponses {
		now := time.Now()
		for k, e := range s.data {
			if now.After(e.expiresAt) {
				delete(s.data, k)
			}
		}
	}
}

func (s *ResponseCache) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
