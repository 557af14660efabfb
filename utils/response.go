// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondWithError writes the standard error body. Internal causes are logged
// by the caller, never echoed to the client.
func RespondWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
