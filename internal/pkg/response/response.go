package response

import "github.com/gin-gonic/gin"

// OK writes data as the whole JSON body. The gallery front-end expects
// bare records and arrays, not an envelope.
func OK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Success(c *gin.Context) {
	c.JSON(200, gin.H{"success": true})
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

// Abort writes the error body and stops the handler chain.
func Abort(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"error": message})
}
