package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Limiter counts hits per key within a window. cache.Client satisfies it.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

type RateLimitConfig struct {
	Limit  int
	Window time.Duration
	// TrustedProxies are the hops allowed to set X-Forwarded-For.
	TrustedProxies TrustedProxies
}

// RateLimit rejects clients above cfg.Limit requests per window with 429.
// Limiter errors let the request through.
func RateLimit(l Limiter, cfg RateLimitConfig, logger *zap.Logger) Middleware {
	if cfg.Limit <= 0 {
		cfg.Limit = 60
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	limit := strconv.Itoa(cfg.Limit)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := cfg.TrustedProxies.ClientIP(r)
			ok, err := l.Allow(r.Context(), ip, cfg.Limit, cfg.Window)
			if err != nil {
				logger.Warn("rate limiter unavailable", zap.String("ip", ip), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", limit)
			if !ok {
				w.Header().Set("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrustedProxies lists the networks whose X-Forwarded-For entries are
// believed. The zero value trusts nobody.
type TrustedProxies []*net.IPNet

// ParseTrustedProxies accepts CIDR blocks and bare IP addresses.
func ParseTrustedProxies(entries []string) (TrustedProxies, error) {
	var out TrustedProxies
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.Contains(e, "/") {
			ip := net.ParseIP(e)
			if ip == nil {
				return nil, fmt.Errorf("trusted proxy %q is not an IP address", e)
			}
			bits := 8 * net.IPv6len
			if ip.To4() != nil {
				ip, bits = ip.To4(), 8*net.IPv4len
			}
			out = append(out, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, n, err := net.ParseCIDR(e)
		if err != nil {
			return nil, fmt.Errorf("trusted proxy %q: %w", e, err)
		}
		out = append(out, n)
	}
	return out, nil
}

func (p TrustedProxies) trusts(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range p {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP returns the socket peer unless it is a trusted proxy. Behind
// trusted proxies X-Forwarded-For is walked from the right and the first
// untrusted hop wins.
func (p TrustedProxies) ClientIP(r *http.Request) string {
	peer, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		peer = r.RemoteAddr
	}
	if !p.trusts(peer) {
		return peer
	}

	hops := strings.Split(r.Header.Get("X-Forwarded-For"), ",")
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if hop == "" {
			continue
		}
		if net.ParseIP(hop) == nil {
			return peer
		}
		if !p.trusts(hop) {
			return hop
		}
		peer = hop
	}
	return peer
}

// ClientIP is the socket peer address of r.
func ClientIP(r *http.Request) string {
	return TrustedProxies(nil).ClientIP(r)
}
