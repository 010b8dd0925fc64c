package main

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"

	"github.com/ghuser/backoffice/pkg/config"
	"github.com/ghuser/backoffice/pkg/logger"
	saleEvents "github.com/ghuser/backoffice/services/sales/domain/events"
	"github.com/ghuser/backoffice/services/sales/domain/models"
)

type fakeInvalidator struct {
	calls int
	err   error
}

func (f *fakeInvalidator) Invalidate(context.Context) error {
	f.calls++
	return f.err
}

type fakeRefresher struct {
	calls atomic.Int32
}

func (f *fakeRefresher) RefreshDashboard(context.Context) (*models.DashboardStats, error) {
	f.calls.Add(1)
	return &models.DashboardStats{}, nil
}

func testLogger() logger.Logger {
	return logger.New(&config.Config{LogLevel: "error"})
}

func saleMessage(t *testing.T) *message.Message {
	t.Helper()
	payload, err := json.Marshal(saleEvents.NewSaleChangedEvent(7, 1, decimal.RequireFromString("35.00"), time.Now()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return message.NewMessage("msg-1", payload)
}

func TestHandleSaleChanged(t *testing.T) {
	boom := errors.New("redis down")
	tests := []struct {
		name      string
		msg       func(*testing.T) *message.Message
		cacheErr  error
		wantErr   error
		wantCalls int
	}{
		{"invalidates on sale event", saleMessage, nil, nil, 1},
		{"cache failure is retried", saleMessage, boom, boom, 1},
		{"malformed payload is acked", func(*testing.T) *message.Message {
			return message.NewMessage("msg-2", []byte("{"))
		}, nil, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &fakeInvalidator{err: tt.cacheErr}
			err := handleSaleChanged(testLogger(), inv)(context.Background(), tt.msg(t))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if inv.calls != tt.wantCalls {
				t.Fatalf("expected %d invalidations, got %d", tt.wantCalls, inv.calls)
			}
		})
	}
}

func TestStartScheduler(t *testing.T) {
	t.Run("rejects a bad schedule", func(t *testing.T) {
		cfg := &config.Config{ReportTimezone: "UTC", DashboardRefreshSchedule: "every tuesday"}
		if _, err := startScheduler(cfg, testLogger(), &fakeRefresher{}); err == nil {
			t.Fatal("expected an error for an unparseable schedule")
		}
	})

	t.Run("runs the refresh", func(t *testing.T) {
		cfg := &config.Config{ReportTimezone: "UTC", DashboardRefreshSchedule: "@every 1s"}
		ref := &fakeRefresher{}
		c, err := startScheduler(cfg, testLogger(), ref)
		if err != nil {
			t.Fatalf("startScheduler: %v", err)
		}
		defer c.Stop()

		deadline := time.Now().Add(3 * time.Second)
		for ref.calls.Load() == 0 && time.Now().Before(deadline) {
			time.Sleep(50 * time.Millisecond)
		}
		if ref.calls.Load() == 0 {
			t.Fatal("dashboard refresh never ran")
		}
	})
}
