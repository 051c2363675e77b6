package server

import (
	"net"
	"sync"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"go.uber.org/zap"
)

const (
	defaultRatePerMinute = 30
	defaultBurst         = 10
)

type ipBucket struct {
	tokens float64
	last   time.Time
}

// rateLimiter is a per-IP token bucket. Buckets idle long enough to have
// refilled completely are swept, so the map only holds recent clients.
type rateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]ipBucket
	rate      float64 // tokens per second
	burst     float64
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newRateLimiter(limitPerMinute, burst int) *rateLimiter {
	if limitPerMinute <= 0 {
		limitPerMinute = defaultRatePerMinute
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	rate := float64(limitPerMinute) / 60.0
	return &rateLimiter{
		buckets: make(map[string]ipBucket),
		rate:    rate,
		burst:   float64(burst),
		idle:    time.Duration(float64(burst) / rate * float64(time.Second)),
		now:     time.Now,
	}
}

func (l *rateLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	bucket, ok := l.buckets[ip]
	if !ok {
		bucket = ipBucket{tokens: l.burst, last: now}
	}

	if elapsed := now.Sub(bucket.last).Seconds(); elapsed > 0 {
		bucket.tokens = min(bucket.tokens+elapsed*l.rate, l.burst)
		bucket.last = now
	}

	if bucket.tokens < 1 {
		l.buckets[ip] = bucket
		return false
	}
	bucket.tokens--
	l.buckets[ip] = bucket
	return true
}

// sweep drops buckets untouched for at least idle. A full bucket behaves
// exactly like a missing one. Runs at most once per idle period.
func (l *rateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idle {
		return
	}
	l.lastSweep = now
	for ip, b := range l.buckets {
		if now.Sub(b.last) >= l.idle {
			delete(l.buckets, ip)
		}
	}
}

// RateLimitMiddleware enforces per-IP connection limits using a token bucket.
func RateLimitMiddleware(limitPerMinute, burst int, logger *zap.Logger) wish.Middleware {
	return rateLimitMiddleware(newRateLimiter(limitPerMinute, burst), logger)
}

func rateLimitMiddleware(l *rateLimiter, logger *zap.Logger) wish.Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			ip := remoteIP(s)
			if !l.allow(ip) {
				logger.Warn("ssh session throttled", zap.String("remote_ip", ip))
				_, _ = s.Write([]byte("rate limit exceeded\n"))
				return
			}
			next(s)
		}
	}
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}

	if host == "" {
		return "unknown"
	}
	return host
}
