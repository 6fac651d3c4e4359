package forecast

import "errors"

var (
	// ErrInvalidID is returned when an identifier is not a 24-character hex ObjectID.
	ErrInvalidID = errors.New("invalid forecast id")

	// ErrNotFound is returned when no forecast exists for the id or point.
	ErrNotFound = errors.New("forecast not found")

	// ErrUpstreamUnavailable is returned when Open-Meteo could not produce a forecast.
	ErrUpstreamUnavailable = errors.New("forecast source unavailable")

	// ErrStoreFault covers failed or unacknowledged writes and unexpected write results.
	ErrStoreFault = errors.New("forecast store fault")

	// ErrUpdateFailed is returned when the record vanished between lookup and replace.
	ErrUpdateFailed = errors.New("update failed")
)
