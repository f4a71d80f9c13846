package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/core/domain"
)

const scopeHeader = "X-User-ID"

// ScopeMiddleware resolves the account boundary for the request. An
// absent header means the shared unauthenticated local scope.
func ScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := domain.ScopeLocal
		if value := c.GetHeader(scopeHeader); value != "" {
			scope = domain.Scope(value)
		}
		c.Set("scope", scope)
		c.Next()
	}
}

func GetScope(c *gin.Context) domain.Scope {
	if value, exists := c.Get("scope"); exists {
		if scope, ok := value.(domain.Scope); ok {
			return scope
		}
	}
	return domain.ScopeLocal
}
