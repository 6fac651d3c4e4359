package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"weatherapp/internal/config"

	"github.com/sony/gobreaker"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.52&longitude=13.405&current_weather=true&hourly=temperature_2m,relativehumidity_2m,windspeed_10m
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

// ErrIncompleteResponse is returned when the payload lacks latitude or longitude.
var ErrIncompleteResponse = errors.New("response is missing latitude or longitude")

// callerGoneError marks a failure caused by the caller's context ending
// rather than by the upstream.
type callerGoneError struct {
	err error
}

func (e *callerGoneError) Error() string { return e.err.Error() }
func (e *callerGoneError) Unwrap() error { return e.err }

// isSuccessful keeps caller cancellations and deadlines out of the breaker's failure counts.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	var gone *callerGoneError
	return errors.As(err, &gone) || errors.Is(err, context.Canceled)
}

var hourlyVars = []string{
	"temperature_2m",
	"relativehumidity_2m",
	"windspeed_10m",
}

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewForecastClient creates a client that sends requests through httpClient.
// A nil breaker gets the gobreaker defaults; an empty baseURL uses the public API.
func NewForecastClient(httpClient *http.Client, baseURL string, breaker *gobreaker.CircuitBreaker, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = baseForecastURL
	}
	if breaker == nil {
		breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:         "openmeteo",
			IsSuccessful: isSuccessful,
		})
	}
	return &ForecastClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		breaker:    breaker,
		logger:     logger.With("component", "openmeteo-client"),
	}
}

// NewForecastClientFromConfig owns its http.Client and circuit breaker, both built from cfg.
func NewForecastClientFromConfig(cfg config.OpenMeteoConfig, logger *slog.Logger) *ForecastClient {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	return NewForecastClient(httpClient, cfg.BaseURL, NewCircuitBreaker(cfg.Breaker, logger), logger)
}

// NewCircuitBreaker builds the breaker guarding upstream calls.
func NewCircuitBreaker(cfg config.BreakerConfig, logger *slog.Logger) *gobreaker.CircuitBreaker {
	settings := gobreaker.Settings{
		Name:         "openmeteo",
		MaxRequests:  cfg.MaxRequests,
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}
	if threshold := cfg.FailureThreshold; threshold > 0 {
		settings.ReadyToTrip = func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		}
	}
	return gobreaker.NewCircuitBreaker(settings)
}

// GetForecast fetches current weather and hourly series for the given point.
// Every failure is logged here and returned as an error; callers treat any error as unavailable.
func (c *ForecastClient) GetForecast(ctx context.Context, longitude, latitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	q.Set("hourly", strings.Join(hourlyVars, ","))
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching forecast", "url", u.String())

	result, err := c.breaker.Execute(func() (interface{}, error) {
		apiResp, err := c.fetch(ctx, u.String())
		if err != nil && ctx.Err() != nil {
			return nil, &callerGoneError{err: err}
		}
		return apiResp, err
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Error("forecast request rejected by circuit breaker",
				"longitude", longitude,
				"latitude", latitude,
				"error", err,
			)
			return nil, fmt.Errorf("circuit breaker rejected request: %w", err)
		}
		c.logger.Error("failed to get forecast",
			"longitude", longitude,
			"latitude", latitude,
			"error", err,
		)
		return nil, err
	}

	apiResp, ok := result.(*ForecastAPIResponse)
	if !ok {
		return nil, fmt.Errorf("unexpected result type %T from circuit breaker", result)
	}

	c.logger.Debug("successfully fetched forecast",
		"longitude", *apiResp.Longitude,
		"latitude", *apiResp.Latitude,
		"hourly_points", len(apiResp.Hourly.Time),
	)

	return apiResp, nil
}

func (c *ForecastClient) fetch(ctx context.Context, rawURL string) (*ForecastAPIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Latitude == nil || apiResp.Longitude == nil {
		return nil, ErrIncompleteResponse
	}

	return &apiResp, nil
}
