package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/izmirulasim/talep-takip-api/pkg/errors"
)

// The browser client consumes the legacy wire shapes: success responses are
// the bare resource (or list), failures are {"error": "<message>"}.

// JSON sends a success response.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// OK responds with HTTP 200 and the given payload.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Success responds with the {"success": true} shape used by delete endpoints.
func Success(c *gin.Context) {
	JSON(c, http.StatusOK, gin.H{"success": true})
}

// Error sends an error response converting the error to the wire shape.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
