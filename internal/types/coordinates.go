package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
)

var (
	ErrInvalidLongitude = errors.New("invalid longitude: must be between -180 and 180")
	ErrInvalidLatitude  = errors.New("invalid latitude: must be between -90 and 90")
)

var validate = validator.New()

// Coords is a longitude/latitude pair in decimal degrees.
// A nil field means the value was not supplied.
type Coords struct {
	Longitude *float64 `form:"longitude" json:"longitude" validate:"required,gte=-180,lte=180" example:"13.405"`
	Latitude  *float64 `form:"latitude" json:"latitude" validate:"required,gte=-90,lte=90" example:"52.52"`
}

func NewCoords(longitude, latitude float64) Coords {
	return Coords{
		Longitude: &longitude,
		Latitude:  &latitude,
	}
}

// Point returns the coordinate as an orb.Point ([lon, lat]).
// Callers must validate first; a missing value panics.
func (c Coords) Point() orb.Point {
	return orb.Point{*c.Longitude, *c.Latitude}
}

// ValidateCoords reports whether both values are present and within range.
// The returned error wraps ErrInvalidLongitude or ErrInvalidLatitude.
func ValidateCoords(c Coords) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("failed to validate coordinates: %w", err)
	}

	// fields are reported in declaration order, longitude first
	fe := fieldErrs[0]
	sentinel := ErrInvalidLatitude
	if fe.StructField() == "Longitude" {
		sentinel = ErrInvalidLongitude
	}

	if fe.Tag() == "required" {
		return fmt.Errorf("%w: value is required", sentinel)
	}
	return sentinel
}
