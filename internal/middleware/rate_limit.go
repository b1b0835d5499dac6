package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-onboarding/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// limiterIdleTTL: limiter yang tidak dipakai selama ini dibuang saat sweep berikutnya.
const limiterIdleTTL = 30 * time.Minute

type keyedLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyedRateLimiter menyimpan token bucket per key (IP atau user id).
type KeyedRateLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*keyedLimiter
	r         rate.Limit // request per detik
	b         int        // burst
	lastSweep time.Time
}

func NewKeyedRateLimiter(r rate.Limit, b int) *KeyedRateLimiter {
	return &KeyedRateLimiter{
		limiters:  make(map[string]*keyedLimiter),
		r:         r,
		b:         b,
		lastSweep: time.Now(),
	}
}

// Allow memakai satu token untuk key. Jika habis, retryAfter adalah waktu tunggu sampai token berikutnya.
func (k *KeyedRateLimiter) Allow(key string) (ok bool, retryAfter time.Duration) {
	now := time.Now()

	k.mu.Lock()
	if now.Sub(k.lastSweep) > limiterIdleTTL {
		for key, l := range k.limiters {
			if now.Sub(l.lastSeen) > limiterIdleTTL {
				delete(k.limiters, key)
			}
		}
		k.lastSweep = now
	}
	l, exists := k.limiters[key]
	if !exists {
		l = &keyedLimiter{limiter: rate.NewLimiter(k.r, k.b)}
		k.limiters[key] = l
	}
	l.lastSeen = now
	k.mu.Unlock()

	res := l.limiter.ReserveN(now, 1)
	if !res.OK() {
		return false, 0
	}
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

func tooManyRequests(c *gin.Context, retryAfter time.Duration, message string) {
	if retryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
	}
	abortWith(c, http.StatusTooManyRequests, apperror.CodeTooManyRequests, message)
}

func RateLimitByIP(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		if ok, wait := limiter.Allow(c.ClientIP()); !ok {
			tooManyRequests(c, wait, "Too many requests from this IP, please try again later")
			return
		}
		c.Next()
	}
}

// RateLimitWindow mengizinkan max request per window per IP, misal 100 per 15 menit.
// max atau window nol mematikan limit.
func RateLimitWindow(max int, window time.Duration) gin.HandlerFunc {
	if max <= 0 || window <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return RateLimitByIP(rate.Every(window/time.Duration(max)), max)
}

// RateLimitByUser: r = request per detik, b = burst. Request tanpa user_id tidak dibatasi di sini.
func RateLimitByUser(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewKeyedRateLimiter(r, b)
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.Next()
			return
		}
		if ok, wait := limiter.Allow(userID); !ok {
			tooManyRequests(c, wait, "Too many requests, please slow down")
			return
		}
		c.Next()
	}
}
