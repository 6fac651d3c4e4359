package main

import (
	"errors"
	"net/http"

	"weatherapp/internal/forecast"
	"weatherapp/internal/types"

	"github.com/gin-gonic/gin"
)

// isInputError reports whether err came from validating client input
func isInputError(err error) bool {
	return errors.Is(err, types.ErrInvalidLongitude) ||
		errors.Is(err, types.ErrInvalidLatitude) ||
		errors.Is(err, forecast.ErrInvalidID)
}

// coordArgs renders bound coordinates as log attributes, marking absent values
func coordArgs(coords types.Coords) []any {
	args := make([]any, 0, 6)
	if coords.Longitude != nil {
		args = append(args, "longitude", *coords.Longitude)
	} else {
		args = append(args, "longitude", "missing")
	}
	if coords.Latitude != nil {
		args = append(args, "latitude", *coords.Latitude)
	} else {
		args = append(args, "latitude", "missing")
	}
	return args
}

// handleGetForecastByID godoc
// @Summary Get a stored forecast by id
// @Description Retrieve a stored forecast by its identifier. The store is not refreshed.
// @Tags forecast
// @Produce json
// @Param id path string true "Forecast id (24-character hex)" example(6632257e9f1c2a4b8d0e5f11)
// @Success 200 {object} forecast.ForecastDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weatherforecast/{id} [get]
func (app *App) handleGetForecastByID(c *gin.Context) {
	ctx, cancel := app.requestContext(c)
	defer cancel()

	id := c.Param("id")
	dto, err := app.forecastService.GetByID(ctx, id)
	if err != nil {
		switch {
		case isInputError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, forecast.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "forecast not found"})
		default:
			app.logger.Error("failed to get forecast", "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get forecast"})
		}
		return
	}

	c.JSON(http.StatusOK, dto)
}

// handleGetForecastByCoordinate godoc
// @Summary Get the forecast for a coordinate
// @Description Return the stored forecast at the given point. On a miss the forecast is fetched from Open-Meteo, stored and returned.
// @Tags forecast
// @Produce json
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(13.405)
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(52.52)
// @Success 200 {object} forecast.ForecastDTO
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weatherforecast [get]
func (app *App) handleGetForecastByCoordinate(c *gin.Context) {
	var coords types.Coords

	// Bind query parameters; range checks happen in the service
	if err := c.ShouldBindQuery(&coords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := app.requestContext(c)
	defer cancel()

	dto, err := app.forecastService.GetByCoordinate(ctx, coords)
	if err != nil {
		if isInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to get forecast by coordinate", append(coordArgs(coords), "error", err)...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred"})
		return
	}

	c.JSON(http.StatusOK, dto)
}

// handleAddForecast godoc
// @Summary Fetch and store a forecast
// @Description Fetch the latest forecast for the coordinate from Open-Meteo and store it
// @Tags forecast
// @Accept json
// @Produce json
// @Param coordinates body types.Coords true "Coordinate to track"
// @Success 201 {object} forecast.CreatedResponse
// @Header 201 {string} Location "/weatherforecast/{id}"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weatherforecast [post]
func (app *App) handleAddForecast(c *gin.Context) {
	var coords types.Coords
	if err := c.ShouldBindJSON(&coords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := app.requestContext(c)
	defer cancel()

	id, err := app.forecastService.Add(ctx, coords)
	if err != nil {
		if isInputError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to add forecast", append(coordArgs(coords), "error", err)...)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "an error occurred"})
		return
	}

	c.Header("Location", "/weatherforecast/"+id)
	c.JSON(http.StatusCreated, forecast.CreatedResponse{ID: id})
}

// handleUpdateLatestForecast godoc
// @Summary Refresh a tracked forecast
// @Description Replace the stored forecast at the coordinate with the latest data from Open-Meteo. Untracked coordinates are not fetched.
// @Tags forecast
// @Produce json
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(13.405)
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(52.52)
// @Success 200 {object} forecast.ForecastDTO
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weatherforecast [put]
func (app *App) handleUpdateLatestForecast(c *gin.Context) {
	var coords types.Coords
	if err := c.ShouldBindQuery(&coords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := app.requestContext(c)
	defer cancel()

	dto, err := app.forecastService.UpdateLatest(ctx, coords)
	if err != nil {
		switch {
		case isInputError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, forecast.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "forecast not found"})
		default:
			app.logger.Error("failed to update forecast", append(coordArgs(coords), "error", err)...)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		}
		return
	}

	c.JSON(http.StatusOK, dto)
}

// handleDeleteForecast godoc
// @Summary Delete a stored forecast
// @Description Delete the forecast stored at the coordinate
// @Tags forecast
// @Accept json
// @Produce json
// @Param coordinates body types.Coords true "Coordinate to delete"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /weatherforecast [delete]
func (app *App) handleDeleteForecast(c *gin.Context) {
	var coords types.Coords
	if err := c.ShouldBindJSON(&coords); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := app.requestContext(c)
	defer cancel()

	if err := app.forecastService.Delete(ctx, coords); err != nil {
		switch {
		case isInputError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, forecast.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		default:
			app.logger.Error("failed to delete forecast", append(coordArgs(coords), "error", err)...)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete forecast"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// handleListForecasts godoc
// @Summary List stored forecasts
// @Description List the id and coordinate of every stored forecast
// @Tags forecast
// @Produce json
// @Success 200 {array} forecast.ForecastSummary
// @Failure 500 {object} map[string]string
// @Router /weatherforecast/all [get]
func (app *App) handleListForecasts(c *gin.Context) {
	ctx, cancel := app.requestContext(c)
	defer cancel()

	summaries, err := app.forecastService.List(ctx)
	if err != nil {
		app.logger.Error("failed to list forecasts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list forecasts"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}
