package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/namefreezers/weather-console/internal/repository"
	"github.com/namefreezers/weather-console/internal/services"
	"github.com/namefreezers/weather-console/internal/weather/types"
)

const seoulJSON = `{
	"name": "Seoul",
	"sys": {"country": "KR"},
	"main": {"temp": 15.2, "feels_like": 14.8, "humidity": 65, "pressure": 1015},
	"weather": [{"description": "맑음"}],
	"wind": {"speed": 2.1}
}`

type fakeService struct {
	rec        types.Record
	err        error
	history    []repository.Lookup
	historyErr error
	limit      int
}

func (s *fakeService) Lookup(ctx context.Context, city string) (types.Record, error) {
	if strings.TrimSpace(city) == "" {
		return types.Record{}, services.ErrEmptyCity
	}
	return s.rec, s.err
}

func (s *fakeService) History(ctx context.Context, limit int) ([]repository.Lookup, error) {
	s.limit = limit
	return s.history, s.historyErr
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, svc services.LookupService, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	NewRouter(svc).ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return body
}

func TestWeatherHandler_Success(t *testing.T) {
	var rec types.Record
	if err := json.Unmarshal([]byte(seoulJSON), &rec); err != nil {
		t.Fatal(err)
	}

	w := serve(t, &fakeService{rec: rec}, httptest.NewRequest(http.MethodGet, "/api/weather?city=Seoul", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"city":"Seoul"`, `"temperature":15.2`, `"pressure":1015`, `"wind_speed":2.1`, `"report":`} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %s: %s", want, body)
		}
	}
}

func TestWeatherHandler_Errors(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		err     error
		rec     string
		status  int
		outcome string
	}{
		{name: "missing city", url: "/api/weather", status: http.StatusBadRequest, outcome: "invalid_request"},
		{name: "blank city", url: "/api/weather?city=%20%20", status: http.StatusBadRequest, outcome: "invalid_request"},
		{name: "not found", url: "/api/weather?city=Atlantis", err: &types.FetchError{Kind: types.KindNotFound, City: "Atlantis"}, status: http.StatusNotFound, outcome: "not_found"},
		{name: "timeout", url: "/api/weather?city=Seoul", err: &types.FetchError{Kind: types.KindTimeout}, status: http.StatusGatewayTimeout, outcome: "timeout"},
		{name: "unauthorized", url: "/api/weather?city=Seoul", err: &types.FetchError{Kind: types.KindUnauthorized}, status: http.StatusBadGateway, outcome: "unauthorized"},
		{name: "incomplete", url: "/api/weather?city=Seoul", rec: `{"name":"Seoul"}`, status: http.StatusBadGateway, outcome: "incomplete"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			if tt.rec != "" {
				if err := json.Unmarshal([]byte(tt.rec), &svc.rec); err != nil {
					t.Fatal(err)
				}
			}

			w := serve(t, svc, httptest.NewRequest(http.MethodGet, tt.url, nil))
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.status, w.Body.String())
			}
			if got := decodeBody(t, w)["outcome"]; got != tt.outcome {
				t.Errorf("outcome = %v, want %s", got, tt.outcome)
			}
		})
	}
}

func TestCalculateHandler(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		result float64
	}{
		{name: "add", body: `{"op":"add","x":2,"y":3}`, status: http.StatusOK, result: 5},
		{name: "multiply", body: `{"op":"multiply","x":-2,"y":3}`, status: http.StatusOK, result: -6},
		{name: "divide zero operand", body: `{"op":"divide","x":0,"y":4}`, status: http.StatusOK, result: 0},
		{name: "divide by zero", body: `{"op":"divide","x":1,"y":0}`, status: http.StatusBadRequest},
		{name: "unknown op", body: `{"op":"modulo","x":1,"y":2}`, status: http.StatusBadRequest},
		{name: "missing operand", body: `{"op":"add","x":1}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/calculate", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			w := serve(t, &fakeService{}, req)
			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d; body %s", w.Code, tt.status, w.Body.String())
			}
			if tt.status == http.StatusOK {
				if got := decodeBody(t, w)["result"]; got != tt.result {
					t.Errorf("result = %v, want %v", got, tt.result)
				}
			}
		})
	}
}

func TestHistoryHandler(t *testing.T) {
	svc := &fakeService{history: []repository.Lookup{{City: "Seoul", Outcome: "success", StatusCode: 200}}}

	w := serve(t, svc, httptest.NewRequest(http.MethodGet, "/api/history?limit=5", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
	}
	if svc.limit != 5 {
		t.Errorf("limit = %d, want 5", svc.limit)
	}
	if !strings.Contains(w.Body.String(), `"city":"Seoul"`) {
		t.Errorf("body = %s", w.Body.String())
	}

	w = serve(t, svc, httptest.NewRequest(http.MethodGet, "/api/history?limit=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid limit status = %d, want 400", w.Code)
	}

	w = serve(t, &fakeService{historyErr: sql.ErrConnDone}, httptest.NewRequest(http.MethodGet, "/api/history", nil))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("db error status = %d, want 500", w.Code)
	}
}
