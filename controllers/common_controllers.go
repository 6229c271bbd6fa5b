package controllers

import (
	"net/http"

	"ebaypricing/models"
)

// Public pricing routes
const (
	PricingPath        = "/api/ebay-pricing"
	NetlifyPricingPath = "/.netlify/functions/ebay-pricing"
)

// HealthHandler provides a health check endpoint
func (c *Controller) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    models.StatusHealthy,
		Service:   c.serviceName,
		Version:   c.version,
		Endpoints: []string{NetlifyPricingPath, PricingPath, "/health", "/metrics"},
		Discord:   c.discordService.GetStatus(),
	})
}
