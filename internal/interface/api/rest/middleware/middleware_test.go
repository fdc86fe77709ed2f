package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"identity-api/internal/infrastructure/jwt"
)

func newCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func TestRequestLogGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name      string
		level     zapcore.Level
		method    string
		path      string
		body      string
		wantLogs  int
		wantLevel zapcore.Level
		wantBody  bool
	}{
		{name: "ok is info", level: zapcore.InfoLevel, method: http.MethodGet, path: "/ok", wantLogs: 1, wantLevel: zapcore.InfoLevel},
		{name: "4xx is warn", level: zapcore.InfoLevel, method: http.MethodGet, path: "/missing", wantLogs: 1, wantLevel: zapcore.WarnLevel},
		{name: "5xx is error", level: zapcore.InfoLevel, method: http.MethodGet, path: "/boom", wantLogs: 1, wantLevel: zapcore.ErrorLevel},
		{name: "healthz skipped", level: zapcore.InfoLevel, method: http.MethodGet, path: "/healthz"},
		{name: "metrics skipped", level: zapcore.InfoLevel, method: http.MethodGet, path: "/metrics"},
		{
			name:      "debug captures body",
			level:     zapcore.DebugLevel,
			method:    http.MethodPost,
			path:      "/echo",
			body:      `{"primary_email":"a@b.com"}`,
			wantLogs:  1,
			wantLevel: zapcore.InfoLevel,
			wantBody:  true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(tt.level)
			counter := newCounter()

			r := gin.New()
			r.Use(RequestLogGin(zap.New(core), counter))
			r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
			r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
			r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
			r.GET("/metrics", func(c *gin.Context) { c.Status(http.StatusOK) })
			var echoed string
			r.POST("/echo", func(c *gin.Context) {
				b, _ := c.GetRawData()
				echoed = string(b)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			r.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.FilterMessage("HTTP request").All()
			require.Len(t, entries, tt.wantLogs)
			assert.Equal(t, float64(tt.wantLogs), testutil.ToFloat64(counter.WithLabelValues("app_requests_total")))
			if tt.wantLogs == 0 {
				return
			}
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			_, hasBody := entries[0].ContextMap()["body"]
			assert.Equal(t, tt.wantBody, hasBody)
			if tt.wantBody {
				assert.Equal(t, tt.body, entries[0].ContextMap()["body"])
				assert.Equal(t, tt.body, echoed)
			}
		})
	}
}

func TestAuthMiddleware_SetsCaller(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := jwt.New("secret")
	token, err := svc.GenerateJWT("backoffice", time.Minute)
	require.NoError(t, err)

	var caller any
	r := gin.New()
	r.POST("/cmd", AuthMiddleware(svc), func(c *gin.Context) {
		caller, _ = c.Get(CtxCaller)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/cmd", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "backoffice", caller)
}
