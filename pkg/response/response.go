package response

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcus024/ssu-alumni-tracker/internal/survey"
	"github.com/marcus024/ssu-alumni-tracker/pkg/apperror"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr.(string))
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

// ResponseError standardized error response. Validation failures carry the
// whole field batch so the form can surface every problem at once.
func ResponseError(c *gin.Context, err error) {
	var vErr *survey.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": vErr.Fields,
		})
		return
	}

	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
