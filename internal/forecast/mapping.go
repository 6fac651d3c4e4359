package forecast

import (
	"fmt"
	"slices"

	"weatherapp/internal/providers/openmeteo"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MapAPIResponseToForecast translates an Open-Meteo response into a new, unsaved Forecast.
// The location is taken from the coordinates reported by the response.
func MapAPIResponseToForecast(resp *openmeteo.ForecastAPIResponse) (*Forecast, error) {
	if resp == nil {
		return nil, fmt.Errorf("forecast response is nil")
	}
	if resp.Latitude == nil || resp.Longitude == nil {
		return nil, openmeteo.ErrIncompleteResponse
	}

	return &Forecast{
		Location:             geojson.Point(orb.Point{*resp.Longitude, *resp.Latitude}),
		GenerationtimeMs:     resp.GenerationtimeMs,
		UtcOffsetSeconds:     resp.UtcOffsetSeconds,
		Timezone:             resp.Timezone,
		TimezoneAbbreviation: resp.TimezoneAbbreviation,
		Elevation:            resp.Elevation,
		CurrentWeather: CurrentWeather{
			Temperature:   resp.CurrentWeather.Temperature,
			Windspeed:     resp.CurrentWeather.Windspeed,
			Winddirection: resp.CurrentWeather.Winddirection,
			Weathercode:   resp.CurrentWeather.Weathercode,
			IsDay:         resp.CurrentWeather.IsDay,
			Time:          resp.CurrentWeather.Time,
		},
		HourlyUnits: HourlyUnits{
			Time:               resp.HourlyUnits.Time,
			Temperature2M:      resp.HourlyUnits.Temperature2M,
			Relativehumidity2M: resp.HourlyUnits.Relativehumidity2M,
			Windspeed10M:       resp.HourlyUnits.Windspeed10M,
		},
		Hourly: Hourly{
			Time:          slices.Clone(resp.Hourly.Time),
			Temperature2M: slices.Clone(resp.Hourly.Temperature2M),
		},
	}, nil
}

// MapToDTO converts a stored Forecast to its wire form. A zero ID maps to an empty string.
func MapToDTO(f *Forecast) *ForecastDTO {
	dto := &ForecastDTO{
		Latitude:             f.Point().Lat(),
		Longitude:            f.Point().Lon(),
		GenerationtimeMs:     f.GenerationtimeMs,
		UtcOffsetSeconds:     f.UtcOffsetSeconds,
		Timezone:             f.Timezone,
		TimezoneAbbreviation: f.TimezoneAbbreviation,
		Elevation:            f.Elevation,
		CurrentWeather:       f.CurrentWeather,
		HourlyUnits:          f.HourlyUnits,
		Hourly:               cloneHourly(f.Hourly),
	}
	if !f.ID.IsZero() {
		dto.ID = f.ID.Hex()
	}
	return dto
}

// MapToForecast converts a wire DTO back into a Forecast.
// It fails with ErrInvalidID if a non-empty ID is not a valid ObjectID.
func MapToForecast(dto *ForecastDTO) (*Forecast, error) {
	f := &Forecast{
		Location:             geojson.Point(orb.Point{dto.Longitude, dto.Latitude}),
		GenerationtimeMs:     dto.GenerationtimeMs,
		UtcOffsetSeconds:     dto.UtcOffsetSeconds,
		Timezone:             dto.Timezone,
		TimezoneAbbreviation: dto.TimezoneAbbreviation,
		Elevation:            dto.Elevation,
		CurrentWeather:       dto.CurrentWeather,
		HourlyUnits:          dto.HourlyUnits,
		Hourly:               cloneHourly(dto.Hourly),
	}

	if dto.ID != "" {
		id, err := parseID(dto.ID)
		if err != nil {
			return nil, err
		}
		f.ID = id
	}

	return f, nil
}

// MapToSummary reduces a Forecast to its id and coordinates.
func MapToSummary(f *Forecast) ForecastSummary {
	return ForecastSummary{
		ID:        f.ID.Hex(),
		Longitude: f.Point().Lon(),
		Latitude:  f.Point().Lat(),
	}
}

// Point returns the stored location as [lon, lat].
func (f *Forecast) Point() orb.Point {
	return orb.Point(f.Location)
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func cloneHourly(h Hourly) Hourly {
	return Hourly{
		Time:          slices.Clone(h.Time),
		Temperature2M: slices.Clone(h.Temperature2M),
	}
}
