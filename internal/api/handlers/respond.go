// internal/api/handlers/respond.go
package handlers

import (
	"donorlink-api-server/internal/api/middleware"
	"donorlink-api-server/internal/models"

	"github.com/gin-gonic/gin"
)

// respondData writes the success envelope.
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError writes the failure envelope with a human-readable message.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "error": message})
}

// principal returns the authenticated user bound by the Authenticate middleware.
func principal(c *gin.Context) *models.User {
	value, _ := c.Get(middleware.PrincipalKey)
	user, _ := value.(*models.User)
	return user
}

func summarize(donations []models.Donation) []models.DonationSummary {
	summaries := make([]models.DonationSummary, 0, len(donations))
	for _, d := range donations {
		summaries = append(summaries, d.Summary())
	}
	return summaries
}
