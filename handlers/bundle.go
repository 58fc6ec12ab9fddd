package handlers

import (
	"net/http"

	"jojocolaresbeauty/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Public booking flow.
	GetSlots          gin.HandlerFunc
	CreateAppointment gin.HandlerFunc
	ListServices      gin.HandlerFunc
	ListPortfolio     gin.HandlerFunc
	ListTestimonials  gin.HandlerFunc
	GetLandingPage    gin.HandlerFunc

	// Back-office session.
	AdminLogin gin.HandlerFunc

	// Back-office operations.
	AdminHandler   *AdminHandler
	CatalogHandler *CatalogHandler
	ContentHandler *ContentHandler
	StorageHandler *StorageHandler
}

// HealthHandler reports the latest dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Mongo {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
