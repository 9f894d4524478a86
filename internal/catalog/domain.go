// internal/catalog/domain.go
package catalog

import (
	"github.com/shopspring/decimal"

	"circulib/internal/identity"
)

var _ identity.Identifiable = (*Item)(nil)

// Kind identifies a catalog item variant. Each kind carries a fixed per-day
// late-fee rate; all kinds share the same linear fee rule and differ only in
// rate and label. The parity is intentional, not an accident of refactoring.
type Kind string

const (
	KindBook     Kind = "Book"
	KindMagazine Kind = "Magazine"
	KindDVD      Kind = "DVD"
)

var (
	bookRate     = decimal.NewFromInt(1)
	magazineRate = decimal.RequireFromString("0.5")
	dvdRate      = decimal.NewFromInt(2)
)

// LateFeePerDay returns the kind's fixed per-day late-fee rate.
func (k Kind) LateFeePerDay() decimal.Decimal {
	switch k {
	case KindBook:
		return bookRate
	case KindMagazine:
		return magazineRate
	case KindDVD:
		return dvdRate
	default:
		return decimal.Zero
	}
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	switch k {
	case KindBook, KindMagazine, KindDVD:
		return true
	}
	return false
}

// Item represents a borrowable catalog item. Immutable after construction.
type Item struct {
	id    string
	title string
	kind  Kind
}

// NewItem creates a catalog item of the given kind.
func NewItem(id, title string, kind Kind) *Item {
	return &Item{id: id, title: title, kind: kind}
}

func (i *Item) ID() string { return i.id }

func (i *Item) Title() string { return i.title }

func (i *Item) Kind() Kind { return i.kind }

// TypeName returns the variant label.
func (i *Item) TypeName() string { return string(i.kind) }

// LateFeePerDay returns the item's fixed per-day rate.
func (i *Item) LateFeePerDay() decimal.Decimal { return i.kind.LateFeePerDay() }

// LateFee computes daysLate * lateFeePerDay. Negative input is not clamped;
// callers validate lateness before it reaches this rule.
func (i *Item) LateFee(daysLate int) decimal.Decimal {
	return decimal.NewFromInt(int64(daysLate)).Mul(i.kind.LateFeePerDay())
}

// Event represents a domain event related to a catalog item.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ItemAddedEvent is recorded when a new item is added.
type ItemAddedEvent struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  Kind   `json:"kind"`
}
