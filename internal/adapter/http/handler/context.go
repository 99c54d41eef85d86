package handler

import (
	"time"

	"ar-engine/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// timeLayout formats timestamps in API responses.
const timeLayout = time.RFC3339

// tenantIDFromContext reads the tenant ID set by JWTAuth. It is never
// trusted from a path or body parameter (spec §7).
func tenantIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxTenantID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
