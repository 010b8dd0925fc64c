package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Watermill topics published by the sale transaction manager.
const (
	TopicSaleCreated = "sale.created"
	TopicSaleUpdated = "sale.updated"
	TopicSaleDeleted = "sale.deleted"
)

// SaleTopics lists every topic a read-model consumer should subscribe to.
var SaleTopics = []string{TopicSaleCreated, TopicSaleUpdated, TopicSaleDeleted}

// saleEventVersion is bumped on breaking payload changes.
const saleEventVersion = 1

// SaleChangedEvent is published in the same transaction as the sale write.
// Total is serialized as a decimal string.
type SaleChangedEvent struct {
	EventID    uuid.UUID       `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int             `json:"version"`
	SaleID     int64           `json:"sale_id"`
	ClientID   int64           `json:"client_id"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
	OperatorID *uuid.UUID      `json:"operator_id,omitempty"` // Set when an authenticated operator made the write
}

// NewSaleChangedEvent stamps a fresh event id and schema version.
func NewSaleChangedEvent(saleID, clientID int64, total decimal.Decimal, at time.Time) SaleChangedEvent {
	return SaleChangedEvent{
		EventID:    uuid.New(),
		Version:    saleEventVersion,
		SaleID:     saleID,
		ClientID:   clientID,
		Total:      total,
		OccurredAt: at.UTC(),
	}
}
