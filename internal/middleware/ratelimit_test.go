package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestDailyQuotaAllow(t *testing.T) {
	quota := NewDailyQuota(2)

	if !quota.Allow() {
		t.Error("first request should be allowed")
	}
	if !quota.Allow() {
		t.Error("second request should be allowed")
	}
	if quota.Allow() {
		t.Error("third request should exceed the quota")
	}
	if got := quota.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
	if got := quota.Remaining(); got != 0 {
		t.Errorf("Remaining() = %d, want 0", got)
	}
}

func TestIPRateLimiterIsolatesIPs(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Every(time.Hour), 1)

	if !limiter.GetLimiter("10.0.0.1").Allow() {
		t.Error("first request from 10.0.0.1 should be allowed")
	}
	if limiter.GetLimiter("10.0.0.1").Allow() {
		t.Error("second request from 10.0.0.1 should be limited")
	}
	// A different IP has its own bucket
	if !limiter.GetLimiter("10.0.0.2").Allow() {
		t.Error("first request from 10.0.0.2 should be allowed")
	}
}

func newLimitedRouter(ipLimiter *IPRateLimiter, quota *DailyQuota) *gin.Engine {
	r := gin.New()
	r.POST("/x", RateLimitMiddleware(ipLimiter, quota), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimitMiddlewareDailyQuota(t *testing.T) {
	ipLimiter := NewIPRateLimiter(rate.Every(time.Nanosecond), 100)
	quota := NewDailyQuota(1)
	r := newLimitedRouter(ipLimiter, quota)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request: status = %d, want 429", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("429 response is missing Retry-After")
	}
}

func TestRateLimitMiddlewarePerIP(t *testing.T) {
	ipLimiter := NewIPRateLimiter(rate.Every(time.Hour), 1)
	quota := NewDailyQuota(1000)
	r := newLimitedRouter(ipLimiter, quota)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("first request: status = %d, want 200", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request from same IP: status = %d, want 429", w.Code)
	}
}
