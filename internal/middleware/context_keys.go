package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mindcare-app/mindcare_backend/internal/core/domain"
)

// callerKey is the key used to store the authenticated caller in the request
// context.
const callerKey = contextKey("caller")

// GetCallerFromContext retrieves the authenticated caller from the Gin
// context. The boolean reports whether auth middleware ran for this request.
func GetCallerFromContext(c *gin.Context) (domain.Caller, bool) {
	caller, ok := c.Request.Context().Value(callerKey).(domain.Caller)
	return caller, ok
}
