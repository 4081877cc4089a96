package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func requestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestClientIPPrefersForwardedFor(t *testing.T) {
	c := requestContext(t, "10.0.0.5:443", map[string]string{
		"X-Forwarded-For": "203.0.113.9, 10.0.0.1",
		"X-Real-IP":       "198.51.100.2",
	})
	assert.Equal(t, "203.0.113.9", clientIP(c))
}

func TestClientIPFallsBackToRealIP(t *testing.T) {
	c := requestContext(t, "10.0.0.5:443", map[string]string{
		"X-Real-IP": "198.51.100.2",
	})
	assert.Equal(t, "198.51.100.2", clientIP(c))
}

func TestClientIPStripsPeerPort(t *testing.T) {
	c := requestContext(t, "192.0.2.7:52114", nil)
	assert.Equal(t, "192.0.2.7", clientIP(c))
}

func TestClientIPEmptyForwardedForIsIgnored(t *testing.T) {
	c := requestContext(t, "192.0.2.7:52114", map[string]string{
		"X-Forwarded-For": " , ",
	})
	assert.Equal(t, "192.0.2.7", clientIP(c))
}
