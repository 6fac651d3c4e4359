package main

// @title Weather Forecast API
// @version 1.0
// @description Stores Open-Meteo forecasts in MongoDB, keyed by coordinate.
// @description A GET on an unknown coordinate fetches and stores the forecast; PUT refreshes a tracked one.

// @contact.name Weather Forecast API
// @license.name MIT

// @BasePath /

// @tag.name forecast
// @tag.description Stored forecast operations

// @tag.name health
// @tag.description Liveness checks
