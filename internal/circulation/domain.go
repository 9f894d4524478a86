// internal/circulation/domain.go
package circulation

import (
	"context"

	"github.com/dmitrymomot/saaskit/pkg/statemachine"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"circulib/internal/catalog"
	"circulib/internal/membership"
)

const (
	// StatusOpen is the initial transaction state.
	StatusOpen = "open"
	// StatusClosed is the terminal transaction state.
	StatusClosed = "closed"
)

var (
	stateOpen   = statemachine.StringState(StatusOpen)
	stateClosed = statemachine.StringState(StatusClosed)
	eventSettle = statemachine.StringEvent("settle")
)

// Transaction is a one-shot late-fee settlement between one borrower and one
// item. It holds non-owning references; both must outlive the transaction.
// The lifecycle is a single open -> closed transition, and the deduction
// rides on that transition, so it happens at most once per instance.
type Transaction struct {
	id        uuid.UUID
	borrower  *membership.User
	item      *catalog.Item
	daysLate  int
	lifecycle statemachine.StateMachine
	lateFee   decimal.Decimal
}

// NewTransaction creates an open transaction. daysLate is taken as given;
// the service boundary rejects negative lateness before construction.
func NewTransaction(borrower *membership.User, item *catalog.Item, daysLate int) *Transaction {
	t := &Transaction{
		id:       uuid.New(),
		borrower: borrower,
		item:     item,
		daysLate: daysLate,
		lateFee:  decimal.Zero,
	}
	t.lifecycle = statemachine.MustNew(stateOpen,
		statemachine.WithTransition(stateOpen, stateClosed, eventSettle,
			statemachine.WithAction(t.applyFee)))
	return t
}

// applyFee runs as the settle transition's action: compute the item fee,
// apply the Student discount when the borrower carries that capability, and
// deduct the result from the borrower's balance.
func (t *Transaction) applyFee(ctx context.Context, from, to statemachine.State, event statemachine.Event, data any) error {
	cost := t.item.LateFee(t.daysLate)
	if role, ok := t.borrower.StudentRole(); ok {
		cost = cost.Mul(role.DiscountFactor)
	}
	t.borrower.Deduct(cost)
	t.lateFee = cost
	return nil
}

// Process settles the transaction and returns the charged fee. Once closed,
// there is no transition left to fire, so repeated calls return the recorded
// fee without recomputing or deducting again. All paths succeed.
func (t *Transaction) Process(ctx context.Context) decimal.Decimal {
	if err := t.lifecycle.Fire(ctx, eventSettle, nil); err != nil {
		return t.lateFee
	}
	return t.lateFee
}

func (t *Transaction) ID() uuid.UUID { return t.id }

// UserID reports the borrower's identifier for transaction summaries.
func (t *Transaction) UserID() string { return t.borrower.ID() }

// ItemID reports the item's identifier for transaction summaries.
func (t *Transaction) ItemID() string { return t.item.ID() }

func (t *Transaction) DaysLate() int { return t.daysLate }

// LateFeeCost returns the fee recorded at settlement, zero while open.
func (t *Transaction) LateFeeCost() decimal.Decimal { return t.lateFee }

// IsOpen reports whether the transaction has not yet been settled.
func (t *Transaction) IsOpen() bool {
	return t.lifecycle.Current().Name() == StatusOpen
}

// Event represents a domain event related to circulation.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// TransactionOpenedEvent is recorded when a transaction is opened.
type TransactionOpenedEvent struct {
	TransactionID uuid.UUID `json:"transaction_id"`
	UserID        string    `json:"user_id"`
	ItemID        string    `json:"item_id"`
	DaysLate      int       `json:"days_late"`
}

// TransactionSettledEvent is recorded when a transaction settles.
type TransactionSettledEvent struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	UserID        string          `json:"user_id"`
	ItemID        string          `json:"item_id"`
	LateFeeCost   decimal.Decimal `json:"late_fee_cost"`
}
