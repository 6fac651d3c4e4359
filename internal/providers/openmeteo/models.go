package openmeteo

// ForecastAPIResponse is the payload returned by the /v1/forecast endpoint for
// current_weather=true&hourly=temperature_2m,relativehumidity_2m,windspeed_10m.
// Latitude and Longitude are pointers so a missing value can be detected.
type ForecastAPIResponse struct {
	Latitude             *float64       `json:"latitude"`
	Longitude            *float64       `json:"longitude"`
	GenerationtimeMs     float64        `json:"generationtime_ms"`
	UtcOffsetSeconds     int            `json:"utc_offset_seconds"`
	Timezone             string         `json:"timezone"`
	TimezoneAbbreviation string         `json:"timezone_abbreviation"`
	Elevation            float64        `json:"elevation"`
	CurrentWeather       CurrentWeather `json:"current_weather"`
	HourlyUnits          HourlyUnits    `json:"hourly_units"`
	Hourly               Hourly         `json:"hourly"`
}

type CurrentWeather struct {
	Temperature   float64 `json:"temperature"`
	Windspeed     float64 `json:"windspeed"`
	Winddirection float64 `json:"winddirection"`
	Weathercode   int     `json:"weathercode"`
	IsDay         int     `json:"is_day"`
	Time          string  `json:"time"`
}

type HourlyUnits struct {
	Time               string `json:"time"`
	Temperature2M      string `json:"temperature_2m"`
	Relativehumidity2M string `json:"relativehumidity_2m"`
	Windspeed10M       string `json:"windspeed_10m"`
}

type Hourly struct {
	Time          []string  `json:"time"`
	Temperature2M []float64 `json:"temperature_2m"`
}
