package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Blocks An IP That Exhausts Its Burst", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute, 5*time.Minute)
		handler := limiter.Limit(okHandler)

		var last int
		for i := 0; i < 4; i++ {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "1.2.3.4:5678"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			last = rec.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, last)

		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("Other IPs Are Unaffected", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, 5*time.Minute)
		handler := limiter.Limit(okHandler)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "1.2.3.4:5678"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
		}

		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "5.6.7.8:5678"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Idle And Expired Entries Are Pruned", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute, 5*time.Minute)
		handler := limiter.Limit(okHandler)

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			req.RemoteAddr = "1.2.3.4:5678"
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
		}

		limiter.mu.Lock()
		assert.Len(t, limiter.limiters, 1)
		assert.Len(t, limiter.blocked, 1)
		limiter.mu.Unlock()

		limiter.prune(time.Now().Add(time.Hour))

		limiter.mu.Lock()
		assert.Empty(t, limiter.limiters)
		assert.Empty(t, limiter.blocked)
		limiter.mu.Unlock()

		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "1.2.3.4:5678"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
