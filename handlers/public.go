package handlers

import (
	"net/http"

	"camisetas-api/models"

	"github.com/gin-gonic/gin"
)

// GetCatalog returns the order form options: designs, sizes and pickup
// points. The Wallapop pickup carries the contact note shown on the site.
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"designs":       models.Designs,
		"sizes":         models.Sizes,
		"pickup_points": models.PickupPoints,
		"pickup_notes": gin.H{
			"Wallapop": "Soy individual, nos pondremos en contacto contigo de inmediato para aclarar el producto de Wallapop.",
		},
	})
}
