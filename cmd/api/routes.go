package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)
	app.router.GET("/ready", app.handleReady)

	// Forecast endpoints
	forecasts := app.router.Group("/weatherforecast")
	forecasts.GET("", app.handleGetForecastByCoordinate)
	forecasts.POST("", app.handleAddForecast)
	forecasts.PUT("", app.handleUpdateLatestForecast)
	forecasts.DELETE("", app.handleDeleteForecast)
	forecasts.GET("/all", app.handleListForecasts)
	forecasts.GET("/:id", app.handleGetForecastByID)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
