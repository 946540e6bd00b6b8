package api

import "github.com/gin-gonic/gin"

// SecurityHeaders sets baseline response headers on every request.
// No Content-Security-Policy is emitted; the rendered pages inline nothing
// and a policy would only complicate the templates.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Next()
	}
}
