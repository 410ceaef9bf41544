package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"smartstudy/pkg/response"
)

// RateLimit returns a per-client-IP token bucket limiter. Used on the
// auth routes to slow down credential stuffing.
func (mw Middleware) RateLimit(perMinute int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	limit := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok {
			cl = &client{limiter: rate.NewLimiter(limit, perMinute)}
			clients[ip] = cl
		}
		cl.lastSeen = time.Now()

		// Opportunistic cleanup of idle entries.
		if len(clients) > 1024 {
			for key, other := range clients {
				if time.Since(other.lastSeen) > 10*time.Minute {
					delete(clients, key)
				}
			}
		}
		mu.Unlock()

		if !cl.limiter.Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
