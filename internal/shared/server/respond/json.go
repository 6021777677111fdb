// Package respond centralizes the JSON bodies the screening API sends, so
// handlers never shape success or error payloads ad hoc.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes payload with 200. Screening results go out through here.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}
