// Copyright (c) 2026 Clinicore. All rights reserved.
// Author: dev@clinicore.health

package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clinicore/clinicore/internal/platform/apperr"
	"github.com/clinicore/clinicore/internal/platform/constants"
	"github.com/clinicore/clinicore/internal/platform/ctxutil"
	"github.com/clinicore/clinicore/internal/platform/respond"
)

// # Login Throttling

// Throttle limits attempts per client IP on brute-forceable endpoints using
// TTL'd Redis counters.
//
// # Why Redis and not the in-process bucket?
//
// The [RateLimit] bucket protects the process; credential guessing must be
// limited across ALL replicas of the API, which requires shared state. Each
// (scope, ip) pair gets an INCR + EXPIRE counter that decays after the window.
//
// # Failure Mode
//
// If Redis is unreachable the middleware fails open: availability of login
// outranks the throttle, and the outage itself is logged and alertable.
func Throttle(client *redis.Client, scope string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			key := fmt.Sprintf("%s%s:%s", constants.RedisPrefixThrottle, scope, RealIP(request))

			// Counter and expiry in one round trip.
			pipe := client.TxPipeline()
			count := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, window)

			if _, err := pipe.Exec(ctx); err != nil {
				ctxutil.GetLogger(ctx).WarnContext(ctx, "throttle_unavailable",
					slog.String("scope", scope),
					slog.Any("error", err),
				)
				next.ServeHTTP(writer, request)
				return
			}

			if count.Val() > int64(limit) {
				respond.Error(writer, request, apperr.RateLimited(int(window.Seconds())))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
