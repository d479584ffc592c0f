// Package http provides the Gin handlers of the recipe cost API.
package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/recipe-cost-service/internal/domain/dto"
	"github.com/guttosm/recipe-cost-service/internal/middleware"
	"github.com/guttosm/recipe-cost-service/internal/service"
)

// loggingServiceFrom returns the logging service injected by the router, or
// nil when audit logging is disabled.
func loggingServiceFrom(c *gin.Context) service.LoggingService {
	if v, exists := c.Get("logging_service"); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// auditLog records a user action when audit logging is enabled.
func auditLog(c *gin.Context, actionType, message string, fields map[string]interface{}) {
	if ls := loggingServiceFrom(c); ls != nil {
		middleware.AuditLog(ls, c, actionType, message, fields)
	}
}

// bindListRequest reads the common listing query parameters. Out-of-range
// values never fail the request; the service clamps and falls back.
func bindListRequest(c *gin.Context) service.PageQuery {
	var req dto.ListRequest
	_ = c.ShouldBindQuery(&req)
	return service.PageQuery{
		Filter:    req.Filter,
		PageIndex: req.Page,
		Direction: req.Direction,
		SortBy:    req.Sort,
	}
}
