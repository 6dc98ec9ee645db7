package middleware

import (
	"errors"
	"net/http"

	"github.com/Iqura-Alam/HireUp/internal/delivery/http/response"
	"github.com/Iqura-Alam/HireUp/pkg/apperror"
	"github.com/Iqura-Alam/HireUp/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= 500 {
					logger.Log.Error("request failed",
						"path", c.FullPath(),
						"status", appErr.Code,
						"error", err.Error())
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				// Never expose internal error details to clients.
				logger.Log.Error("unhandled error",
					"path", c.FullPath(),
					"error", err.Error())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
