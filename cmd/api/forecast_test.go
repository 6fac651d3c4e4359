package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weatherapp/internal/config"
	"weatherapp/internal/forecast"
	"weatherapp/internal/types"

	"github.com/google/go-cmp/cmp"
)

type fakeService struct {
	getByID         func(ctx context.Context, id string) (*forecast.ForecastDTO, error)
	getByCoordinate func(ctx context.Context, coords types.Coords) (*forecast.ForecastDTO, error)
	add             func(ctx context.Context, coords types.Coords) (string, error)
	updateLatest    func(ctx context.Context, coords types.Coords) (*forecast.ForecastDTO, error)
	delete          func(ctx context.Context, coords types.Coords) error
	list            func(ctx context.Context) ([]forecast.ForecastSummary, error)
}

func (f *fakeService) GetByID(ctx context.Context, id string) (*forecast.ForecastDTO, error) {
	if f.getByID == nil {
		return nil, errors.New("GetByID not expected")
	}
	return f.getByID(ctx, id)
}

func (f *fakeService) GetByCoordinate(ctx context.Context, coords types.Coords) (*forecast.ForecastDTO, error) {
	if f.getByCoordinate == nil {
		return nil, errors.New("GetByCoordinate not expected")
	}
	return f.getByCoordinate(ctx, coords)
}

func (f *fakeService) Add(ctx context.Context, coords types.Coords) (string, error) {
	if f.add == nil {
		return "", errors.New("Add not expected")
	}
	return f.add(ctx, coords)
}

func (f *fakeService) UpdateLatest(ctx context.Context, coords types.Coords) (*forecast.ForecastDTO, error) {
	if f.updateLatest == nil {
		return nil, errors.New("UpdateLatest not expected")
	}
	return f.updateLatest(ctx, coords)
}

func (f *fakeService) Delete(ctx context.Context, coords types.Coords) error {
	if f.delete == nil {
		return errors.New("Delete not expected")
	}
	return f.delete(ctx, coords)
}

func (f *fakeService) List(ctx context.Context) ([]forecast.ForecastSummary, error) {
	if f.list == nil {
		return nil, errors.New("List not expected")
	}
	return f.list(ctx)
}

const berlinID = "6632257e9f1c2a4b8d0e5f11"

func newTestApp(svc forecast.Service) *App {
	cfg := &config.Config{
		Server: config.ServerConfig{
			GinMode:        "test",
			RequestTimeout: time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewApp(cfg, logger, svc)
}

func serve(app *App, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)
	return rr
}

func berlinDTO() *forecast.ForecastDTO {
	return &forecast.ForecastDTO{
		ID:        berlinID,
		Longitude: 13.405,
		Latitude:  52.52,
		Timezone:  "GMT",
		CurrentWeather: forecast.CurrentWeather{
			Temperature: 15.0,
		},
	}
}

func assertCoords(t *testing.T, coords types.Coords, lon, lat float64) {
	t.Helper()
	if coords.Longitude == nil || coords.Latitude == nil {
		t.Fatalf("coords not bound: %+v", coords)
	}
	if *coords.Longitude != lon || *coords.Latitude != lat {
		t.Errorf("coords = (%v, %v), want (%v, %v)", *coords.Longitude, *coords.Latitude, lon, lat)
	}
}

func TestPing(t *testing.T) {
	app := newTestApp(&fakeService{})

	rr := serve(app, http.MethodGet, "/ping", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}

	var resp PingResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "pong" {
		t.Errorf("message = %q, want %q", resp.Message, "pong")
	}
	if rr.Header().Get(requestIDHeader) == "" {
		t.Error("expected a generated request id header")
	}
}

func TestRequestLogger_KeepsClientRequestID(t *testing.T) {
	app := newTestApp(&fakeService{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	app.router.ServeHTTP(rr, req)

	if got := rr.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("request id = %q, want %q", got, "abc-123")
	}
}

func TestHandleGetForecastByCoordinate(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "stored or fetched forecast",
			target:     "/weatherforecast?longitude=13.405&latitude=52.52",
			wantStatus: http.StatusOK,
		},
		{
			name:       "longitude out of range",
			target:     "/weatherforecast?longitude=200&latitude=52.52",
			serviceErr: fmt.Errorf("%w: got 200", types.ErrInvalidLongitude),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing latitude",
			target:     "/weatherforecast?longitude=13.405",
			serviceErr: fmt.Errorf("%w: value is required", types.ErrInvalidLatitude),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "upstream unavailable",
			target:     "/weatherforecast?longitude=13.405&latitude=52.52",
			serviceErr: fmt.Errorf("%w: timeout", forecast.ErrUpstreamUnavailable),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "store fault",
			target:     "/weatherforecast?longitude=13.405&latitude=52.52",
			serviceErr: fmt.Errorf("%w: insert: duplicate key", forecast.ErrStoreFault),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeService{
				getByCoordinate: func(ctx context.Context, coords types.Coords) (*forecast.ForecastDTO, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					assertCoords(t, coords, 13.405, 52.52)
					return berlinDTO(), nil
				},
			})

			rr := serve(app, http.MethodGet, tt.target, nil)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}

			if tt.wantStatus != http.StatusOK {
				return
			}
			var got forecast.ForecastDTO
			if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if diff := cmp.Diff(berlinDTO(), &got); diff != "" {
				t.Errorf("body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHandleGetForecastByCoordinate_MalformedQuery(t *testing.T) {
	app := newTestApp(&fakeService{})

	rr := serve(app, http.MethodGet, "/weatherforecast?longitude=east&latitude=52.52", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
}

func TestHandleGetForecastByID(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		serviceErr error
		wantStatus int
	}{
		{name: "found", id: berlinID, wantStatus: http.StatusOK},
		{name: "malformed id", id: "not-an-id", serviceErr: forecast.ErrInvalidID, wantStatus: http.StatusBadRequest},
		{name: "absent", id: "000000000000000000000000", serviceErr: forecast.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "store fault", id: berlinID, serviceErr: fmt.Errorf("%w: find: timeout", forecast.ErrStoreFault), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			app := newTestApp(&fakeService{
				getByID: func(ctx context.Context, id string) (*forecast.ForecastDTO, error) {
					gotID = id
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					return berlinDTO(), nil
				},
			})

			rr := serve(app, http.MethodGet, "/weatherforecast/"+tt.id, nil)
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if gotID != tt.id {
				t.Errorf("service got id %q, want %q", gotID, tt.id)
			}
		})
	}
}

func TestHandleAddForecast(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app := newTestApp(&fakeService{
			add: func(ctx context.Context, coords types.Coords) (string, error) {
				assertCoords(t, coords, 13.405, 52.52)
				return berlinID, nil
			},
		})

		rr := serve(app, http.MethodPost, "/weatherforecast", strings.NewReader(`{"longitude":13.405,"latitude":52.52}`))
		if rr.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusCreated, rr.Body.String())
		}
		if got, want := rr.Header().Get("Location"), "/weatherforecast/"+berlinID; got != want {
			t.Errorf("Location = %q, want %q", got, want)
		}

		var resp forecast.CreatedResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if resp.ID != berlinID {
			t.Errorf("id = %q, want %q", resp.ID, berlinID)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		app := newTestApp(&fakeService{})

		rr := serve(app, http.MethodPost, "/weatherforecast", strings.NewReader(`{"longitude":`))
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("invalid latitude", func(t *testing.T) {
		app := newTestApp(&fakeService{
			add: func(ctx context.Context, coords types.Coords) (string, error) {
				return "", fmt.Errorf("%w: got 91", types.ErrInvalidLatitude)
			},
		})

		rr := serve(app, http.MethodPost, "/weatherforecast", strings.NewReader(`{"longitude":13.405,"latitude":91}`))
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusBadRequest)
		}
	})

	t.Run("duplicate point", func(t *testing.T) {
		app := newTestApp(&fakeService{
			add: func(ctx context.Context, coords types.Coords) (string, error) {
				return "", fmt.Errorf("%w: insert: E11000 duplicate key", forecast.ErrStoreFault)
			},
		})

		rr := serve(app, http.MethodPost, "/weatherforecast", strings.NewReader(`{"longitude":13.405,"latitude":52.52}`))
		if rr.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
		}
		if rr.Header().Get("Location") != "" {
			t.Error("Location header set on failure")
		}
	})
}

func TestHandleUpdateLatestForecast(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "refreshed", wantStatus: http.StatusOK},
		{name: "untracked point", serviceErr: forecast.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "record vanished", serviceErr: forecast.ErrUpdateFailed, wantStatus: http.StatusInternalServerError},
		{name: "upstream unavailable", serviceErr: fmt.Errorf("%w: 503", forecast.ErrUpstreamUnavailable), wantStatus: http.StatusInternalServerError},
		{name: "invalid longitude", serviceErr: fmt.Errorf("%w: got -181", types.ErrInvalidLongitude), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeService{
				updateLatest: func(ctx context.Context, coords types.Coords) (*forecast.ForecastDTO, error) {
					if tt.serviceErr != nil {
						return nil, tt.serviceErr
					}
					assertCoords(t, coords, 13.405, 52.52)
					return berlinDTO(), nil
				},
			})

			rr := serve(app, http.MethodPut, "/weatherforecast?longitude=13.405&latitude=52.52", nil)
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
		})
	}
}

func TestHandleDeleteForecast(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", body: `{"longitude":13.405,"latitude":52.52}`, wantStatus: http.StatusNoContent},
		{name: "absent", body: `{"longitude":13.405,"latitude":52.52}`, serviceErr: forecast.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "missing longitude", body: `{"latitude":52.52}`, serviceErr: fmt.Errorf("%w: value is required", types.ErrInvalidLongitude), wantStatus: http.StatusBadRequest},
		{name: "store fault", body: `{"longitude":13.405,"latitude":52.52}`, serviceErr: fmt.Errorf("%w: delete: timeout", forecast.ErrStoreFault), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeService{
				delete: func(ctx context.Context, coords types.Coords) error {
					return tt.serviceErr
				},
			})

			rr := serve(app, http.MethodDelete, "/weatherforecast", strings.NewReader(tt.body))
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if tt.wantStatus == http.StatusNoContent && rr.Body.Len() != 0 {
				t.Errorf("expected empty body, got %q", rr.Body.String())
			}
		})
	}
}

func TestHandleListForecasts(t *testing.T) {
	want := []forecast.ForecastSummary{
		{ID: berlinID, Longitude: 13.405, Latitude: 52.52},
		{ID: "6632257e9f1c2a4b8d0e5f12", Longitude: 2.3522, Latitude: 48.8566},
	}

	// /all must not be routed to the id lookup
	app := newTestApp(&fakeService{
		list: func(ctx context.Context) ([]forecast.ForecastSummary, error) {
			return want, nil
		},
	})

	rr := serve(app, http.MethodGet, "/weatherforecast/all", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}

	var got []forecast.ForecastSummary
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("summaries mismatch (-want +got):\n%s", diff)
	}
}

func TestHandleListForecasts_Empty(t *testing.T) {
	app := newTestApp(&fakeService{
		list: func(ctx context.Context) ([]forecast.ForecastSummary, error) {
			return []forecast.ForecastSummary{}, nil
		},
	})

	rr := serve(app, http.MethodGet, "/weatherforecast/all", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Errorf("body = %s, want []", got)
	}
}

func TestRequestContext_AppliesTimeout(t *testing.T) {
	app := newTestApp(&fakeService{
		list: func(ctx context.Context) ([]forecast.ForecastSummary, error) {
			if _, ok := ctx.Deadline(); !ok {
				return nil, errors.New("no deadline on request context")
			}
			return nil, nil
		},
	})

	rr := serve(app, http.MethodGet, "/weatherforecast/all", nil)
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want %d (body %s)", rr.Code, http.StatusOK, rr.Body.String())
	}
}

func TestHandlers_LogCoordinateValues(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(&fakeService{
		getByCoordinate: func(ctx context.Context, coords types.Coords) (*forecast.ForecastDTO, error) {
			return nil, fmt.Errorf("%w: timeout", forecast.ErrUpstreamUnavailable)
		},
	})
	app.logger = slog.New(slog.NewTextHandler(&buf, nil))

	rr := serve(app, http.MethodGet, "/weatherforecast?longitude=13.405&latitude=52.52", nil)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}

	logged := buf.String()
	for _, want := range []string{"longitude=13.405", "latitude=52.52"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log output missing %q:\n%s", want, logged)
		}
	}
	if strings.Contains(logged, "=0xc") {
		t.Errorf("log output contains a pointer address:\n%s", logged)
	}
}

func TestCoordArgs_MissingValues(t *testing.T) {
	lon := 13.405
	got := coordArgs(types.Coords{Longitude: &lon})
	want := []any{"longitude", 13.405, "latitude", "missing"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("coordArgs() mismatch (-want +got):\n%s", diff)
	}
}
