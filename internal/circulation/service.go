// internal/circulation/service.go
package circulation

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service defines the interface for the circulation service.
type Service interface {
	OpenTransaction(ctx context.Context, borrowerID, itemID string, daysLate int) (*Transaction, error)
	Process(ctx context.Context, id uuid.UUID) (decimal.Decimal, error)
	GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Events() []Event
}
