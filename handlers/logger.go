package handlers

import (
	"glowdesk/middleware"
	"glowdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the request-scoped logger set by the logging middleware,
// or the process logger when called outside a request pipeline.
func getLogger(c *gin.Context) *zap.Logger {
	if l, exists := c.Get(middleware.CtxLogger); exists {
		if logger, ok := l.(*zap.Logger); ok {
			return logger
		}
	}
	return utils.GetLogger()
}
