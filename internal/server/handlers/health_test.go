package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(ctx context.Context) error {
	return s.err
}

func TestHealthHandlerReturnsHealthyStatus(t *testing.T) {
	manager := NewHealthManager("1.2.3")
	manager.RegisterChecker("dictionary", stubChecker{err: nil})
	manager.RegisterChecker("telemetry", stubChecker{err: nil})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	manager.HealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Status != "healthy" {
		t.Fatalf("expected healthy status, got %s", resp.Status)
	}

	if resp.Version != "1.2.3" {
		t.Fatalf("expected version 1.2.3, got %s", resp.Version)
	}

	if resp.Checks["dictionary"] != "healthy" {
		t.Fatalf("expected dictionary check to be healthy, got %s", resp.Checks["dictionary"])
	}
}

func TestHealthHandlerReturnsServiceUnavailableWhenUnhealthy(t *testing.T) {
	manager := NewHealthManager("1.2.3")
	manager.RegisterChecker("dictionary", stubChecker{err: errors.New("dictionary unreachable")})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	manager.HealthHandler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}

	var resp struct {
		Error struct {
			Code    string                 `json:"code"`
			Message string                 `json:"message"`
			Details map[string]interface{} `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error.Code != "SERVICE_UNAVAILABLE" {
		t.Fatalf("expected SERVICE_UNAVAILABLE error code, got %s", resp.Error.Code)
	}

	details := resp.Error.Details
	if details == nil {
		t.Fatalf("expected error details to include check context")
	}

	checks, ok := details["checks"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected checks in error details")
	}

	if status, ok := checks["dictionary"].(string); !ok || status != "unhealthy" {
		t.Fatalf("expected dictionary check to be unhealthy, got %v", checks["dictionary"])
	}
}

func TestHealthCheckerFuncAdapts(t *testing.T) {
	sentinel := errors.New("probe failed")
	checker := HealthCheckerFunc(func(ctx context.Context) error {
		return sentinel
	})

	if err := checker.CheckHealth(context.Background()); !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel error, got %v", err)
	}
}

func TestDetermineOverallStatusTreatsTimeoutAsDegraded(t *testing.T) {
	manager := NewHealthManager("dev")

	status := manager.determineOverallStatus(map[string]string{
		"dictionary": "timeout",
	})

	if status != "degraded" {
		t.Fatalf("expected degraded status, got %s", status)
	}
}

func TestDetermineOverallStatusUnhealthyWins(t *testing.T) {
	manager := NewHealthManager("dev")

	status := manager.determineOverallStatus(map[string]string{
		"dictionary": "healthy",
		"telemetry":  "unhealthy",
		"store":      "timeout",
	})

	if status != "unhealthy" {
		t.Fatalf("expected unhealthy status, got %s", status)
	}
}

func TestProbeHandlersReturnProbeResponse(t *testing.T) {
	manager := NewHealthManager("dev")
	manager.RegisterChecker("dictionary", stubChecker{err: nil})

	probes := map[string]http.HandlerFunc{
		"live":    manager.LivenessHandler,
		"ready":   manager.ReadinessHandler,
		"startup": manager.StartupHandler,
	}

	for name, handler := range probes {
		req := httptest.NewRequest(http.MethodGet, "/health/"+name, nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("probe %s: expected status 200, got %d", name, rec.Code)
		}

		var resp ProbeResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("probe %s: failed to decode response: %v", name, err)
		}

		if resp.Status != "healthy" {
			t.Fatalf("probe %s: expected healthy, got %s", name, resp.Status)
		}

		if resp.Timestamp.IsZero() {
			t.Fatalf("probe %s: expected timestamp to be set", name)
		}
	}
}

func TestPackageLevelHandlerWithoutManagerReturns503(t *testing.T) {
	previous := globalHealthManager
	globalHealthManager = nil
	defer func() { globalHealthManager = previous }()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	HealthHandler(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}

func TestPackageLevelHandlerUsesGlobalManager(t *testing.T) {
	previous := globalHealthManager
	defer func() { globalHealthManager = previous }()

	InitHealthManager("9.9.9")
	GetHealthManager().RegisterChecker("dictionary", stubChecker{err: nil})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	HealthHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Version != "9.9.9" {
		t.Fatalf("expected version 9.9.9, got %s", resp.Version)
	}
}
