// Package responses centralizes error replies so every route reports failures
// the same way.
package responses

import (
	"github.com/gin-gonic/gin"

	"lingkod-server/services/assistant-api/internal/infrastructure/logger"
	"lingkod-server/services/assistant-api/internal/interfaces/httpserver/dto"
	"lingkod-server/services/assistant-api/internal/utils/platformerrors"
)

// HandleError writes a platform error as a JSON reply with the mapped status.
func HandleError(c *gin.Context, err error) {
	platformErr, ok := err.(*platformerrors.PlatformError)
	if !ok {
		platformErr = platformerrors.AsError(c.Request.Context(), platformerrors.LayerRoute, err, "unexpected error")
	}

	platformerrors.LogError(logger.GetLogger(), platformErr)

	status := platformerrors.ErrorTypeToHTTPStatus(platformErr.Type)
	c.AbortWithStatusJSON(status, dto.Response{
		Success: false,
		Error: &dto.ErrorInfo{
			Code:    platformErr.UUID,
			Message: platformErr.Message,
		},
	})
}

// HandleNewError builds and writes a fresh platform error.
func HandleNewError(c *gin.Context, errorType platformerrors.ErrorType, message string, customUUID string) {
	err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerRoute, errorType, message, nil, customUUID)
	HandleError(c, err)
}
