package params

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ID parses the ":id" path parameter. Only positive integers are valid.
func ID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
