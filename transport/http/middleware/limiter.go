package middleware

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"travel/shared"
	"travel/shared/cache"
	"travel/shared/constant"
	"travel/transport/http/response"

	"github.com/rs/zerolog/log"
)

const unknownClient = "unknown"

// RateLimit counts requests per client in a fixed window kept in the cache.
// The health probe is never limited. When the cache is unreachable the
// request goes through unlimited.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	limiter := a.config.App.RateLimiter

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Enable || r.URL.Path == constant.PathHealth {
				next.ServeHTTP(w, r)

				return
			}

			key := a.rateLimitKey(r)

			count, err := a.requestCount(r.Context(), key)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable")
				next.ServeHTTP(w, r)

				return
			}

			count++

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limiter.MaxRequests))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, limiter.MaxRequests-count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(limiter.WindowSeconds))

			if count > limiter.MaxRequests {
				response.WithRequestLimitExceeded(w, limiter.WindowSeconds)

				return
			}

			if err := a.cache.Save(r.Context(), key, count, limiter.WindowSeconds); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("failed to store request count")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestCount returns how many requests the key made in the current window.
func (a *appMiddleware) requestCount(ctx context.Context, key string) (int, error) {
	var count int

	err := a.cache.Get(ctx, key, &count)
	if errors.Is(err, cache.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to read request count: %w", err)
	}

	return count, nil
}

// rateLimitKey scopes counters to the app, so several deployments can share
// one Redis without throttling each other.
func (a *appMiddleware) rateLimitKey(r *http.Request) string {
	return shared.BuildCacheKey(constant.CacheKeyRateLimit, a.config.App.Name, a.getClientIP(r), a.getUA(r))
}

func (a *appMiddleware) getUA(r *http.Request) string {
	if ua := r.Header.Get(constant.RequestHeaderUserAgent); ua != "" {
		return ua
	}

	return unknownClient
}

// getClientIP prefers the first proxy hop, then X-Real-IP, then the socket
// address without its port.
func (a *appMiddleware) getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		first, _, _ := strings.Cut(xff, ",")

		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return unknownClient
}
