package telemetry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"

	"github.com/ghuser/backoffice/pkg/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		ServiceName:      "test-service",
		ServiceVersion:   "test",
		Environment:      "testing",
		OtelEndpoint:     "", // disabled
		TraceSampleRatio: 1,
	}
}

func TestSetup_NoOtelEndpoint(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected non-nil shutdown")
	}
	if handler == nil {
		t.Fatal("expected non-nil metrics handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_MetricsHandlerServesPrometheusFormat(t *testing.T) {
	_, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	ct := rr.Header().Get("Content-Type")
	if !strings.Contains(ct, "text/plain") {
		t.Errorf("expected text/plain content-type, got %q", ct)
	}
}

func TestSetup_InstallsTraceContextPropagator(t *testing.T) {
	shutdown, _, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	fields := otel.GetTextMapPropagator().Fields()
	if !slices.Contains(fields, "traceparent") || !slices.Contains(fields, "baggage") {
		t.Fatalf("expected traceparent and baggage fields, got %v", fields)
	}
}

func TestSetup_ExportsSalesMetrics(t *testing.T) {
	shutdown, handler, err := Setup(context.Background(), baseConfig())
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer shutdown(context.Background()) //nolint:errcheck

	m, err := NewSalesMetrics(nil)
	if err != nil {
		t.Fatalf("NewSalesMetrics: %v", err)
	}
	m.SaleCreated(context.Background(), decimal.RequireFromString("12.50"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))
	if !strings.Contains(rr.Body.String(), "sales_writes") {
		t.Fatalf("expected sales_writes in scrape output:\n%s", rr.Body.String())
	}
}

func TestSetup_RepeatedCallsScrapeCleanly(t *testing.T) {
	var handlers []http.Handler
	for range 3 {
		shutdown, handler, err := Setup(context.Background(), baseConfig())
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		t.Cleanup(func() { _ = shutdown(context.Background()) })
		handlers = append(handlers, handler)
	}

	for i, handler := range handlers {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("GET", "/metrics", http.NoBody))
		body := rr.Body.String()
		if rr.Code != http.StatusOK || strings.Contains(body, "was collected before") {
			t.Fatalf("handler %d: status %d\n%s", i, rr.Code, body)
		}
		if strings.Count(body, "\ntarget_info{") > 1 {
			t.Fatalf("handler %d: duplicate target_info series\n%s", i, body)
		}
		if !strings.Contains(body, "go_goroutines") {
			t.Fatalf("handler %d: runtime collector missing", i)
		}
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1, "AlwaysOnSampler"},
		{2, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tt := range tests {
		if got := sampler(tt.ratio).Description(); !strings.Contains(got, tt.want) {
			t.Errorf("ratio %g: got %q, want it to mention %q", tt.ratio, got, tt.want)
		}
	}
}

func TestCaptureError_NilIsNoop(t *testing.T) {
	CaptureError(context.Background(), nil)
	CaptureError(context.Background(), errors.New("not initialised, dropped by the default hub"))
}
