package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/JDigital-dev/phcleanpro/internal/catalog"
	"github.com/JDigital-dev/phcleanpro/internal/httperr"
	"github.com/JDigital-dev/phcleanpro/internal/httpresp"
)

// CatalogHandler serves the fixed reference tables the website renders:
// services, add-ons, neighborhoods and bookable time slots.
type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	httpresp.List(c, catalog.Services())
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	id := c.Param("id")

	svc, ok := catalog.ServiceByID(id)
	if !ok {
		httperr.NotFound(c, "service_not_found", "Unknown service.")
		return
	}

	httpresp.OK(c, svc)
}

func (h *CatalogHandler) ListAddons(c *gin.Context) {
	httpresp.List(c, catalog.Addons())
}

func (h *CatalogHandler) ListNeighborhoods(c *gin.Context) {
	httpresp.List(c, catalog.Neighborhoods())
}

func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	httpresp.List(c, catalog.TimeSlots())
}
