// internal/circulation/implementation.go
package circulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"circulib/internal/catalog"
	"circulib/internal/membership"
)

var (
	// ErrTransactionNotFound is returned when no transaction carries the requested ID.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrNegativeDaysLate is returned when lateness is negative. A negative
	// duration would compute a negative fee and credit the borrower through
	// the clamp-free deduction, so it is rejected at the boundary.
	ErrNegativeDaysLate = errors.New("days late must not be negative")
)

// service implements the Service interface. It resolves borrowers and items
// through the membership and catalog services instead of holding copies.
type service struct {
	members      membership.Service
	items        catalog.Service
	transactions map[uuid.UUID]*Transaction
	events       []Event
}

// NewService creates a new circulation service instance.
func NewService(members membership.Service, items catalog.Service) Service {
	return &service{
		members:      members,
		items:        items,
		transactions: make(map[uuid.UUID]*Transaction),
	}
}

// OpenTransaction validates the borrower, the item, and the lateness, then
// opens a transaction referencing both.
func (s *service) OpenTransaction(ctx context.Context, borrowerID, itemID string, daysLate int) (*Transaction, error) {
	if daysLate < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDaysLate, daysLate)
	}

	borrower, err := s.members.GetUser(ctx, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get borrower: %w", err)
	}

	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	tx := NewTransaction(borrower, item, daysLate)
	s.transactions[tx.ID()] = tx
	s.events = append(s.events, Event{
		Type: "TransactionOpened",
		Data: TransactionOpenedEvent{
			TransactionID: tx.ID(),
			UserID:        borrowerID,
			ItemID:        itemID,
			DaysLate:      daysLate,
		},
	})
	return tx, nil
}

// Process settles the identified transaction and returns the charged fee.
// Settling an already-closed transaction returns the recorded fee and
// records no second event.
func (s *service) Process(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	tx, err := s.GetTransaction(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}

	wasOpen := tx.IsOpen()
	fee := tx.Process(ctx)
	if wasOpen {
		s.events = append(s.events, Event{
			Type: "TransactionSettled",
			Data: TransactionSettledEvent{
				TransactionID: tx.ID(),
				UserID:        tx.UserID(),
				ItemID:        tx.ItemID(),
				LateFeeCost:   fee,
			},
		})
	}
	return fee, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *service) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	tx, ok := s.transactions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	return tx, nil
}

// Events returns the recorded domain events in order.
func (s *service) Events() []Event {
	return s.events
}
