// internal/membership/implementation.go
package membership

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrUserNotFound is returned when no user carries the requested ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when registering an ID that is already taken.
	ErrDuplicateUser = errors.New("user ID already registered")
	// ErrInvalidAmount is returned for non-positive deposit amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// service implements the Service interface over process-scoped storage.
// Users live for the lifetime of the process; there is no persistence.
type service struct {
	users  map[string]*User
	order  []string
	events []Event
}

// NewService creates a new in-memory membership service instance.
func NewService() Service {
	return &service{users: make(map[string]*User)}
}

// RegisterStudent registers a user carrying the Student capability.
func (s *service) RegisterStudent(ctx context.Context, id, name, email string, balance decimal.Decimal, role StudentRole) (*User, error) {
	return s.register(NewStudent(id, name, email, balance, role))
}

// RegisterStaff registers a user carrying the Staff capability.
func (s *service) RegisterStaff(ctx context.Context, id, name, email string, balance decimal.Decimal, role StaffRole) (*User, error) {
	return s.register(NewStaff(id, name, email, balance, role))
}

// RegisterTeachingAssistant registers a user carrying both capabilities over
// one shared account.
func (s *service) RegisterTeachingAssistant(ctx context.Context, id, name, email string, balance decimal.Decimal, student StudentRole, staff StaffRole) (*User, error) {
	return s.register(NewTeachingAssistant(id, name, email, balance, student, staff))
}

func (s *service) register(u *User) (*User, error) {
	if _, ok := s.users[u.ID()]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateUser, u.ID())
	}
	s.users[u.ID()] = u
	s.order = append(s.order, u.ID())
	s.events = append(s.events, Event{
		Type: "UserRegistered",
		Data: UserRegisteredEvent{
			ID:    u.ID(),
			Name:  u.Account().Name(),
			Email: u.Account().Email(),
			Role:  u.RoleLabel(),
		},
	})
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}
	return u, nil
}

// AddFunds credits a user's balance. Unlike Account.AddFunds, the service
// boundary rejects non-positive amounts instead of silently ignoring them.
func (s *service) AddFunds(ctx context.Context, id string, amount decimal.Decimal) error {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, amount.String())
	}
	u.AddFunds(amount)
	s.events = append(s.events, Event{
		Type: "FundsAdded",
		Data: FundsAddedEvent{ID: id, Amount: amount, NewBalance: u.Balance()},
	})
	return nil
}

// ListUsers returns all users in registration order.
func (s *service) ListUsers(ctx context.Context) ([]*User, error) {
	users := make([]*User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id])
	}
	return users, nil
}

// Events returns the recorded domain events in order.
func (s *service) Events() []Event {
	return s.events
}
