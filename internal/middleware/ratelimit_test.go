package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"quick-capture/config"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Info(ctx context.Context, arg ...any)                     {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (noopLogger) Error(ctx context.Context, arg ...any)                    {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (noopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (noopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newRateLimitedRouter(cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := New(noopLogger{}, cfg)

	r := gin.New()
	r.Use(mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doPing(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Real-IP", ip)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitDisabled(t *testing.T) {
	r := newRateLimitedRouter(config.RateLimitConfig{Enabled: false})

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusOK, doPing(r, "1.2.3.4"))
	}
}

func TestRateLimitRejectsBurst(t *testing.T) {
	// 60/min = 1/sec with burst 6.
	r := newRateLimitedRouter(config.RateLimitConfig{Enabled: true, PerMin: 60})

	limited := false
	for i := 0; i < 20; i++ {
		if doPing(r, "1.2.3.4") == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited, "expected burst to hit the rate limit")
}

func TestRateLimitPerClient(t *testing.T) {
	r := newRateLimitedRouter(config.RateLimitConfig{Enabled: true, PerMin: 60})

	// Exhaust the first client.
	for i := 0; i < 20; i++ {
		doPing(r, "1.2.3.4")
	}
	assert.Equal(t, http.StatusTooManyRequests, doPing(r, "1.2.3.4"))

	// A different client still gets through.
	assert.Equal(t, http.StatusOK, doPing(r, "5.6.7.8"))
}

func TestExtractIPHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"x-forwarded-for first hop", map[string]string{"X-Forwarded-For": "9.9.9.9, 10.0.0.1"}, "127.0.0.1:1234", "9.9.9.9"},
		{"x-real-ip", map[string]string{"X-Real-IP": "8.8.8.8"}, "127.0.0.1:1234", "8.8.8.8"},
		{"remote addr", nil, "127.0.0.1:1234", "127.0.0.1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tc.want, extractIP(c))
		})
	}
}
