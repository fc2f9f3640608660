package middleware

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"restaurant-review-server/internal/locale"
	"restaurant-review-server/internal/platform/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const MsgTooManyRequests = "Too many requests, please try again later."

const (
	limiterCleanupInterval = time.Minute
	limiterIdleTimeout     = 3 * time.Minute
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func (c *client) touch() {
	c.lastSeen.Store(time.Now().UnixNano())
}

func NewIPRateLimiter(r rate.Limit, b int) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop()

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch()
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch()
	i.ips.Store(ip, c)

	return c.limiter
}

func (i *IPRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()
	for range ticker.C {
		i.ips.Range(func(key, value any) bool {
			c := value.(*client)
			if time.Since(time.Unix(0, c.lastSeen.Load())) > limiterIdleTimeout {
				i.ips.Delete(key)
			}
			return true
		})
	}
}

// RateLimitMiddleware 按来源 IP 限流，参数每次请求从配置读取
// 每次调用返回的中间件各自持有一个 IPRateLimiter
func RateLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	var limiter *IPRateLimiter
	var once sync.Once

	return func(c *gin.Context) {
		cfg := appService.Config().Security.RateLimit
		if !cfg.Enabled {
			c.Next()
			return
		}

		once.Do(func() {
			limiter = NewIPRateLimiter(rate.Limit(cfg.RPS), cfg.Burst)
		})

		l := limiter.getLimiter(c.ClientIP())

		// 配置变更时动态更新 limit 和 burst
		if l.Limit() != rate.Limit(cfg.RPS) {
			l.SetLimit(rate.Limit(cfg.RPS))
		}
		if l.Burst() != cfg.Burst {
			l.SetBurst(cfg.Burst)
		}

		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": locale.T(c, MsgTooManyRequests)})
			return
		}
		c.Next()
	}
}
