package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// RateLimitOptions configura o limitador por cliente.
type RateLimitOptions struct {
	RPS          float64
	Burst        int
	RejectStatus int
}

type limiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func (s *limiterStore) get(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.limiters[key]
	if !ok {
		l = rate.NewLimiter(s.rps, s.burst)
		s.limiters[key] = l
	}
	return l
}

// clientKey identifica o chamador pelo host do RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// RateLimit aplica um token bucket por cliente sobre o handler seguinte.
func RateLimit(opts RateLimitOptions) func(next http.Handler) http.Handler {
	if opts.RPS <= 0 {
		opts.RPS = 20
	}
	if opts.Burst <= 0 {
		opts.Burst = 40
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}

	store := &limiterStore{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(opts.RPS),
		burst:    opts.Burst,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.get(clientKey(r)).Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Limite de requisições excedido", opts.RejectStatus)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
