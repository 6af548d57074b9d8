package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func performRequest(router *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	router.ServeHTTP(w, req)
	return w
}

func findEntry(t *testing.T, recorded *observer.ObservedLogs, msg string) observer.LoggedEntry {
	t.Helper()
	for _, entry := range recorded.All() {
		if entry.Message == msg {
			return entry
		}
	}
	t.Fatalf("no log entry with message %q", msg)
	return observer.LoggedEntry{}
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	w := performRequest(router, http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	entry := findEntry(t, recorded, "HTTP Request")
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
}

func TestGinMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("request_id", "req-abc-123")
		c.Next()
	})
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	performRequest(router, http.MethodGet, "/ping", nil)

	entry := findEntry(t, recorded, "HTTP Request")
	fields := entry.ContextMap()
	assert.Equal(t, "req-abc-123", fields["request_id"])
}

func TestGinMiddlewareStatusLevels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{name: "success logs info", status: http.StatusOK, level: zapcore.InfoLevel},
		{name: "client error logs warn", status: http.StatusUnprocessableEntity, level: zapcore.WarnLevel},
		{name: "server error logs error", status: http.StatusBadGateway, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, recorded := observer.New(zapcore.DebugLevel)

			router := gin.New()
			router.Use(GinMiddleware(zap.New(core)))
			router.GET("/status", func(c *gin.Context) {
				c.Status(tt.status)
			})

			performRequest(router, http.MethodGet, "/status", nil)

			entry := findEntry(t, recorded, "HTTP Request")
			assert.Equal(t, tt.level, entry.Level)
		})
	}
}

func TestGinMiddlewareQueryString(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/deliveries", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	performRequest(router, http.MethodGet, "/deliveries?page=2&page_size=10", nil)

	entry := findEntry(t, recorded, "HTTP Request")
	fields := entry.ContextMap()
	assert.Contains(t, fields["query"], "page=2")
}

func TestGinMiddlewareFieldSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.POST("/orders", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	header := http.Header{}
	header.Set("User-Agent", "pos-terminal/1.0")
	performRequest(router, http.MethodPost, "/orders", header)

	entry := findEntry(t, recorded, "HTTP Request")
	fields := entry.ContextMap()
	for _, key := range []string{"status", "latency", "client_ip", "user_agent", "body_size", "method", "path"} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "pos-terminal/1.0", fields["user_agent"])
}

func TestRecoveryHandlesPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, recorded := observer.New(zapcore.ErrorLevel)

	router := gin.New()
	router.Use(Recovery(zap.New(core)))
	router.GET("/boom", func(c *gin.Context) {
		panic("spooler exploded")
	})

	var w *httptest.ResponseRecorder
	assert.NotPanics(t, func() {
		w = performRequest(router, http.MethodGet, "/boom", nil)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entry := findEntry(t, recorded, "Panic recovered")
	assert.Equal(t, "spooler exploded", entry.ContextMap()["error"])
}

func TestGetGinLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, _ := observer.New(zapcore.InfoLevel)

	var fromContext *zap.Logger

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) {
		fromContext = GetGinLogger(c)
		c.Status(http.StatusOK)
	})

	performRequest(router, http.MethodGet, "/ping", nil)

	require.NotNil(t, fromContext)
}

func TestGetGinLoggerWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var fromContext *zap.Logger

	router := gin.New()
	router.GET("/ping", func(c *gin.Context) {
		fromContext = GetGinLogger(c)
		c.Status(http.StatusOK)
	})

	performRequest(router, http.MethodGet, "/ping", nil)

	require.NotNil(t, fromContext)
	assert.NotPanics(t, func() {
		fromContext.Info("noop logger accepts writes")
	})
}
