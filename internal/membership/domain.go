// internal/membership/domain.go
package membership

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"circulib/internal/identity"
)

// Both the account record and the user aggregate satisfy the identity
// contract, so circulation can report either without knowing which it holds.
var (
	_ identity.Identifiable = (*Account)(nil)
	_ identity.Identifiable = (*User)(nil)
)

// Account is the single identity-and-balance record behind a library user.
// Role capabilities are layered over it; they never copy it. However many
// roles a user carries, there is exactly one Account.
type Account struct {
	id      string
	name    string
	email   string
	balance decimal.Decimal
}

// NewAccount creates an account with an initial balance.
func NewAccount(id, name, email string, balance decimal.Decimal) *Account {
	return &Account{id: id, name: name, email: email, balance: balance}
}

func (a *Account) ID() string { return a.id }

func (a *Account) Name() string { return a.name }

func (a *Account) Email() string { return a.email }

func (a *Account) Balance() decimal.Decimal { return a.balance }

// AddFunds credits the balance. Non-positive amounts are ignored without
// signal; validation happens at the service boundary, not here.
func (a *Account) AddFunds(amount decimal.Decimal) {
	if amount.IsPositive() {
		a.balance = a.balance.Add(amount)
	}
}

// Deduct debits the balance unconditionally and clamps the result at zero.
// The balance never goes negative.
func (a *Account) Deduct(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
	if a.balance.IsNegative() {
		a.balance = decimal.Zero
	}
}

// StudentRole grants a borrowing limit and a late-fee discount.
// MaxConcurrentBorrows is informational and enforced nowhere.
type StudentRole struct {
	MaxConcurrentBorrows int             `json:"max_concurrent_borrows"`
	DiscountFactor       decimal.Decimal `json:"discount_factor"`
}

// StaffRole optionally grants purchase approval. The flag is informational.
type StaffRole struct {
	CanApprovePurchases bool `json:"can_approve_purchases"`
}

// User is one Account plus the role capabilities attached to it. A
// teaching assistant carries both roles over the same account, so combined
// roles never duplicate identity or balance state.
type User struct {
	account *Account
	student *StudentRole
	staff   *StaffRole
}

// NewStudent creates a user carrying the Student capability.
func NewStudent(id, name, email string, balance decimal.Decimal, role StudentRole) *User {
	return &User{account: NewAccount(id, name, email, balance), student: &role}
}

// NewStaff creates a user carrying the Staff capability.
func NewStaff(id, name, email string, balance decimal.Decimal, role StaffRole) *User {
	return &User{account: NewAccount(id, name, email, balance), staff: &role}
}

// NewTeachingAssistant creates a user carrying both capabilities over a
// single shared account.
func NewTeachingAssistant(id, name, email string, balance decimal.Decimal, student StudentRole, staff StaffRole) *User {
	return &User{
		account: NewAccount(id, name, email, balance),
		student: &student,
		staff:   &staff,
	}
}

func (u *User) ID() string { return u.account.id }

// Account exposes the single shared identity-and-balance record.
func (u *User) Account() *Account { return u.account }

func (u *User) Balance() decimal.Decimal { return u.account.balance }

// AddFunds delegates to the one shared account.
func (u *User) AddFunds(amount decimal.Decimal) { u.account.AddFunds(amount) }

// Deduct delegates to the one shared account.
func (u *User) Deduct(amount decimal.Decimal) { u.account.Deduct(amount) }

// StudentRole reports whether the user carries the Student capability. This
// query decides late-fee discount eligibility.
func (u *User) StudentRole() (StudentRole, bool) {
	if u.student == nil {
		return StudentRole{}, false
	}
	return *u.student, true
}

// StaffRole reports whether the user carries the Staff capability.
func (u *User) StaffRole() (StaffRole, bool) {
	if u.staff == nil {
		return StaffRole{}, false
	}
	return *u.staff, true
}

// RoleLabel derives the displayed role from the capability set.
func (u *User) RoleLabel() string {
	switch {
	case u.student != nil && u.staff != nil:
		return "TeachingAssistant"
	case u.student != nil:
		return "Student"
	case u.staff != nil:
		return "Staff"
	default:
		return "Patron"
	}
}

// Describe renders the user's display block: the account line, then one
// indented role line merging whatever capabilities the user carries.
func (u *User) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s) | Email: %s | Balance: %s\n",
		u.account.name, u.account.id, u.account.email, u.account.balance.String())

	switch {
	case u.student != nil && u.staff != nil:
		fmt.Fprintf(&b, "  Role: TeachingAssistant | MaxBorrows: %d | Discount: %s | PurchaseApproval: %s\n",
			u.student.MaxConcurrentBorrows, u.student.DiscountFactor.String(), yesNo(u.staff.CanApprovePurchases))
	case u.student != nil:
		fmt.Fprintf(&b, "  Role: Student | MaxBorrows: %d | Discount: %s\n",
			u.student.MaxConcurrentBorrows, u.student.DiscountFactor.String())
	case u.staff != nil:
		fmt.Fprintf(&b, "  Role: Staff | PurchaseApproval: %s\n", yesNo(u.staff.CanApprovePurchases))
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Event represents a domain event related to a user.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// UserRegisteredEvent is recorded when a new user registers.
type UserRegisteredEvent struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FundsAddedEvent is recorded when a deposit is accepted.
type FundsAddedEvent struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"new_balance"`
}
