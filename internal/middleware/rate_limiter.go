package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// RateLimitConfig はクライアントIPごとの上限。Window の間に Max 回まで。
type RateLimitConfig struct {
	Window time.Duration
	Max    int
	// この完全一致パスは数えない
	SkipPaths []string
}

// RateLimiter は固定ウィンドウで数える。Window の間に Max 回を超えたら429。
// OPTIONS（CORSプリフライト）は常に通す。
func RateLimiter(cfg RateLimitConfig) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = struct{}{}
	}

	store := NewWindowStore(cfg.Window, cfg.Max)

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			if c.Request().Method == http.MethodOptions {
				return true
			}
			_, ok := skip[c.Request().URL.Path]
			return ok
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, errorJSON("Unable to identify client"))
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, errorJSON("Too many requests, please try again later."))
		},
	})
}

// WindowStore は echomw.RateLimiterStore の固定ウィンドウ実装。
// 識別子ごとに最初のリクエストから Window の間だけ数え、期限が来たら0に戻す。
type WindowStore struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	clients   map[string]*windowCounter
	lastSweep time.Time
	now       func() time.Time
}

type windowCounter struct {
	count   int
	resetAt time.Time
}

var _ echomw.RateLimiterStore = (*WindowStore)(nil)

func NewWindowStore(window time.Duration, max int) *WindowStore {
	return &WindowStore{
		window:  window,
		max:     max,
		clients: make(map[string]*windowCounter),
		now:     time.Now,
	}
}

func (s *WindowStore) Allow(identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweep(now)

	c, ok := s.clients[identifier]
	if !ok || !now.Before(c.resetAt) {
		c = &windowCounter{resetAt: now.Add(s.window)}
		s.clients[identifier] = c
	}
	if c.count >= s.max {
		return false, nil
	}
	c.count++
	return true, nil
}

// 期限切れのエントリを消す（Window に1回まで）
func (s *WindowStore) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.window {
		return
	}
	for id, c := range s.clients {
		if !now.Before(c.resetAt) {
			delete(s.clients, id)
		}
	}
	s.lastSweep = now
}
