package middleware

import (
	"maps"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ldanie38/geniuscrm/pkg/errors"
	"golang.org/x/time/rate"
)

// pruneThreshold is the number of tracked keys above which idle limiters are
// dropped
const pruneThreshold = 1024

// KeyFunc picks the bucket a request is counted against
type KeyFunc func(c *gin.Context) string

// ByIP counts requests per client address
func ByIP(c *gin.Context) string {
	return "ip:" + c.ClientIP()
}

// ByUser counts requests per authenticated user, falling back to the client
// address for anonymous requests
func ByUser(c *gin.Context) string {
	if user := CurrentUser(c); user != nil {
		return "user:" + strconv.FormatInt(user.ID, 10)
	}
	return ByIP(c)
}

// Throttler holds one token bucket per key for a scope
type Throttler struct {
	scope string
	limit rate.Limit
	burst int
	key   KeyFunc

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewThrottler allows requests per window for each key, e.g. 5 per 15 minutes
func NewThrottler(scope string, requests int, window time.Duration, key KeyFunc) *Throttler {
	if key == nil {
		key = ByIP
	}
	return &Throttler{
		scope:    scope,
		limit:    rate.Every(window / time.Duration(requests)),
		burst:    requests,
		key:      key,
		limiters: make(map[string]*rate.Limiter),
	}
}

func (t *Throttler) limiter(key string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()

	lim, ok := t.limiters[key]
	if !ok {
		if len(t.limiters) >= pruneThreshold {
			t.prune()
		}
		lim = rate.NewLimiter(t.limit, t.burst)
		t.limiters[key] = lim
	}
	return lim
}

// prune deletes limiters whose buckets have refilled. Callers hold mu.
func (t *Throttler) prune() {
	maps.DeleteFunc(t.limiters, func(_ string, lim *rate.Limiter) bool {
		return int(lim.Tokens()) >= lim.Burst()
	})
}

// Middleware rejects requests over the limit with 429 and a Retry-After header
func (t *Throttler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		r := t.limiter(t.key(c)).Reserve()
		if delay := r.Delay(); delay > 0 {
			r.Cancel()
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			abortWith(c, errors.NewThrottledError(t.scope))
			return
		}
		c.Next()
	}
}

// Throttle is shorthand for NewThrottler(...).Middleware()
func Throttle(scope string, requests int, window time.Duration, key KeyFunc) gin.HandlerFunc {
	return NewThrottler(scope, requests, window, key).Middleware()
}
