// internal/membership/service.go
package membership

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service defines the interface for the membership service.
type Service interface {
	RegisterStudent(ctx context.Context, id, name, email string, balance decimal.Decimal, role StudentRole) (*User, error)
	RegisterStaff(ctx context.Context, id, name, email string, balance decimal.Decimal, role StaffRole) (*User, error)
	RegisterTeachingAssistant(ctx context.Context, id, name, email string, balance decimal.Decimal, student StudentRole, staff StaffRole) (*User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	AddFunds(ctx context.Context, id string, amount decimal.Decimal) error
	ListUsers(ctx context.Context) ([]*User, error)
	Events() []Event
}
