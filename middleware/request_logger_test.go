package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestLoggerSetsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestLogger(zap.NewNop()))

	var fromCtx interface{}
	var exists bool
	router.GET("/ping", func(c *gin.Context) {
		fromCtx, exists = c.Get(CtxLogger)
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.True(t, exists, "handlers should find a request-scoped logger")
	_, ok := fromCtx.(*zap.Logger)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
