package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health responds 200 as long as the process serves requests.
func Health(c *gin.Context) {
	// swagger:route GET /health health
	//
	// Service health
	//
	// responses:
	//   200:
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}
