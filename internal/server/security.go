package server

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/osse101/StockDesk_Go/internal/logger"
)

// TrustedProxies is the set of peers whose X-Forwarded-For header is honored.
type TrustedProxies []netip.Prefix

// ParseTrustedProxies accepts bare addresses and CIDR ranges. Entries that
// parse as neither are skipped with a warning.
func ParseTrustedProxies(entries []string) TrustedProxies {
	var proxies TrustedProxies
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if prefix, err := netip.ParsePrefix(entry); err == nil {
			proxies = append(proxies, prefix.Masked())
			continue
		}
		if addr, err := netip.ParseAddr(entry); err == nil {
			addr = addr.Unmap()
			proxies = append(proxies, netip.PrefixFrom(addr, addr.BitLen()))
			continue
		}
		slog.Warn(LogMsgBadTrustedProxy, "entry", entry)
	}
	return proxies
}

// Contains reports whether ip falls inside any trusted range.
func (p TrustedProxies) Contains(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, prefix := range p {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}

// writeError mirrors the handler package's {"error": "..."} body
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// APIKeyMiddleware requires a matching X-API-Key header.
// An empty apiKey disables the check.
func APIKeyMiddleware(apiKey string, proxies TrustedProxies, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	expected := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), expected) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r, proxies)
			detector.RecordFailedAuth(ip)
			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", provided != "",
				"ip", ip)
			writeError(w, http.StatusUnauthorized, ErrMsgUnauthorized)
		})
	}
}

// RequestSizeLimitMiddleware caps the readable request body at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				writeError(w, http.StatusRequestEntityTooLarge, ErrMsgBodyTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipCounters holds per-client tallies for one window
type ipCounters struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector counts requests and failed API key checks per
// client over a fixed window.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	counters    map[string]*ipCounters
	windowStart time.Time
	window      time.Duration
	maxRequests int
	now         func() time.Time
}

// NewSuspiciousActivityDetector creates a detector with the default window and budget
func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		counters:    make(map[string]*ipCounters),
		windowStart: time.Now(),
		window:      RateLimitWindow,
		maxRequests: RateLimitMaxRequests,
		now:         time.Now,
	}
}

// counterFor rolls the window when needed and returns the tally for ip.
// Caller must hold the mutex.
func (s *SuspiciousActivityDetector) counterFor(ip string) *ipCounters {
	if now := s.now(); now.Sub(s.windowStart) > s.window {
		s.counters = make(map[string]*ipCounters)
		s.windowStart = now
	}
	c, ok := s.counters[ip]
	if !ok {
		c = &ipCounters{}
		s.counters[ip] = c
	}
	return c
}

// RecordFailedAuth records a failed API key check
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.counterFor(ip)
	c.failedAuth++
	if c.failedAuth >= FailedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", c.failedAuth)
	}
}

// RecordRequest counts a request and returns false once ip is over budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.counterFor(ip)
	c.requests++
	if c.requests <= s.maxRequests {
		return true
	}
	if c.requests%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", c.requests)
	}
	return false
}

// snapshot returns the current tallies for ip
func (s *SuspiciousActivityDetector) snapshot(ip string) ipCounters {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.counters[ip]; ok {
		return *c
	}
	return ipCounters{}
}

// RateLimitMiddleware rejects clients that exceed the detector's request budget
func RateLimitMiddleware(proxies TrustedProxies, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(clientIP(r, proxies)) {
				w.Header().Set(HeaderRetryAfter, retryAfterSeconds)
				writeError(w, http.StatusTooManyRequests, ErrMsgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the caller's address. X-Forwarded-For is only read when
// the direct peer is a trusted proxy, and then its rightmost hop wins.
func clientIP(r *http.Request, proxies TrustedProxies) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !proxies.Contains(peer) {
		return peer
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return peer
	}
	hops := strings.Split(forwarded, ",")
	if hop := strings.TrimSpace(hops[len(hops)-1]); hop != "" {
		return hop
	}
	return peer
}

// SecurityHeadersMiddleware sets the static hardening headers on every response
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			for name, value := range securityHeaders {
				h.Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
