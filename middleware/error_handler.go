package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jalanjalan/jalanjalan-backend/errors"
	"github.com/jalanjalan/jalanjalan-backend/logger"
)

// ErrorResponse is the JSON shape every error leaves the API in.
type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler converts errors attached to the gin context into structured
// JSON responses. AppErrors keep their type and status; anything else is
// sanitized to a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appErr, ok := err.(*apperrors.AppError); ok {
			status := appErr.GetHTTPStatus()
			log.Infow("Request failed",
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"status", status,
				"errorType", appErr.Type,
				"error", appErr.Error(),
			)

			response := ErrorResponse{
				Type:    string(appErr.Type),
				Message: appErr.Message,
			}
			// Details are user-correctable for validation and not-found;
			// everything else keeps them server-side.
			if appErr.Detail != "" &&
				(appErr.Type == apperrors.ValidationError ||
					appErr.Type == apperrors.NotFoundError ||
					appErr.Type == apperrors.ConflictError) {
				response.Details = appErr.Detail
			}
			c.JSON(status, response)
			return
		}

		log.Errorw("Unhandled error",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Type:    string(apperrors.ServerError),
			Message: "Internal server error",
		})
	}
}
