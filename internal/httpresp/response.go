package httpresp

import "github.com/gin-gonic/gin"

// OK writes a 200 with the payload as-is (arrays stay arrays).
func OK(c *gin.Context, data any) {
	c.JSON(200, data)
}

// Success writes a 200 with {"success": true} merged over extra
// fields, the envelope used by all mutating endpoints.
func Success(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(200, body)
}
