package forecast

import (
	"github.com/paulmach/orb/geojson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Forecast is the persisted document. Location is stored as a GeoJSON Point
// and carries a unique 2dsphere index.
type Forecast struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Location             geojson.Point      `bson:"location"`
	GenerationtimeMs     float64            `bson:"generationtime_ms"`
	UtcOffsetSeconds     int                `bson:"utc_offset_seconds"`
	Timezone             string             `bson:"timezone"`
	TimezoneAbbreviation string             `bson:"timezone_abbreviation"`
	Elevation            float64            `bson:"elevation"`
	CurrentWeather       CurrentWeather     `bson:"current_weather"`
	HourlyUnits          HourlyUnits        `bson:"hourly_units"`
	Hourly               Hourly             `bson:"hourly"`
}

// ForecastDTO is the wire representation returned by the API.
type ForecastDTO struct {
	ID                   string         `json:"_id,omitempty" example:"6632257e9f1c2a4b8d0e5f11"`
	Latitude             float64        `json:"latitude" example:"52.52"`
	Longitude            float64        `json:"longitude" example:"13.405"`
	GenerationtimeMs     float64        `json:"generationtime_ms" example:"0.25"`
	UtcOffsetSeconds     int            `json:"utc_offset_seconds" example:"0"`
	Timezone             string         `json:"timezone" example:"GMT"`
	TimezoneAbbreviation string         `json:"timezone_abbreviation" example:"GMT"`
	Elevation            float64        `json:"elevation" example:"38"`
	CurrentWeather       CurrentWeather `json:"current_weather"`
	HourlyUnits          HourlyUnits    `json:"hourly_units"`
	Hourly               Hourly         `json:"hourly"`
}

// ForecastSummary is the list view of a stored forecast.
type ForecastSummary struct {
	ID        string  `json:"id" example:"6632257e9f1c2a4b8d0e5f11"`
	Longitude float64 `json:"longitude" example:"13.405"`
	Latitude  float64 `json:"latitude" example:"52.52"`
}

// CreatedResponse is returned after a forecast has been added.
type CreatedResponse struct {
	ID string `json:"id" example:"6632257e9f1c2a4b8d0e5f11"`
}

// CurrentWeather is the snapshot at request time.
type CurrentWeather struct {
	Temperature   float64 `json:"temperature" bson:"temperature" example:"15"`
	Windspeed     float64 `json:"windspeed" bson:"windspeed" example:"11.2"`
	Winddirection float64 `json:"winddirection" bson:"winddirection" example:"250"`
	Weathercode   int     `json:"weathercode" bson:"weathercode" example:"3"`
	IsDay         int     `json:"is_day" bson:"is_day" example:"1"`
	Time          string  `json:"time" bson:"time" example:"2024-05-01T12:00"`
}

type HourlyUnits struct {
	Time               string `json:"time" bson:"time" example:"iso8601"`
	Temperature2M      string `json:"temperature_2m" bson:"temperature_2m" example:"°C"`
	Relativehumidity2M string `json:"relativehumidity_2m" bson:"relativehumidity_2m" example:"%"`
	Windspeed10M       string `json:"windspeed_10m" bson:"windspeed_10m" example:"km/h"`
}

// Hourly holds index-aligned time and temperature series.
type Hourly struct {
	Time          []string  `json:"time" bson:"time"`
	Temperature2M []float64 `json:"temperature_2m" bson:"temperature_2m"`
}
