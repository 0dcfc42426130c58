package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Recommender string `json:"recommender"`
}

// HandleHealth returns the health status of the service
// Used for Cloud Run liveness probe
func HandleHealth(c *gin.Context) {
	recommenderMu.RLock()
	recommenderStatus := "unavailable"
	if bookRecommender != nil && mediaRecommender != nil {
		recommenderStatus = "ready"
	}
	recommenderMu.RUnlock()

	status := "healthy"
	if recommenderStatus == "unavailable" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:      status,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Recommender: recommenderStatus,
	})
}

// HandleReadiness returns whether the service is ready to accept traffic
// Used for Cloud Run startup probe - stricter than health
func HandleReadiness(c *gin.Context) {
	recommenderMu.RLock()
	ready := bookRecommender != nil && mediaRecommender != nil
	recommenderMu.RUnlock()

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "recommender_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
