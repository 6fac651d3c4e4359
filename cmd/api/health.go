package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const readinessTimeout = 2 * time.Second

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message string `json:"message" example:"pong"` // Response message
}

// ReadyResponse reports whether the forecast store is reachable
type ReadyResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"server selection timeout"`
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}

// handleReady godoc
// @Summary Readiness check
// @Description Check that the forecast store answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} ReadyResponse
// @Failure 503 {object} ReadyResponse
// @Router /ready [get]
func (app *App) handleReady(c *gin.Context) {
	if app.readinessCheck == nil {
		c.JSON(http.StatusOK, ReadyResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := app.readinessCheck(ctx); err != nil {
		app.logger.Warn("readiness check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, ReadyResponse{Status: "unavailable", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{Status: "ok"})
}
