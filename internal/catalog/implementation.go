// internal/catalog/implementation.go
package catalog

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound is returned when no item carries the requested ID.
	ErrItemNotFound = errors.New("item not found")
	// ErrDuplicateItem is returned when adding an ID that is already cataloged.
	ErrDuplicateItem = errors.New("item ID already cataloged")
	// ErrUnknownKind is returned for kinds outside the known variants.
	ErrUnknownKind = errors.New("unknown item kind")
)

// service implements the Service interface over process-scoped storage.
type service struct {
	items  map[string]*Item
	order  []string
	events []Event
}

// NewService creates a new in-memory catalog service instance.
func NewService() Service {
	return &service{items: make(map[string]*Item)}
}

// AddItem catalogs a new item of the given kind.
func (s *service) AddItem(ctx context.Context, id, title string, kind Kind) (*Item, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if _, ok := s.items[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, id)
	}

	item := NewItem(id, title, kind)
	s.items[id] = item
	s.order = append(s.order, id)
	s.events = append(s.events, Event{
		Type: "ItemAdded",
		Data: ItemAddedEvent{ID: id, Title: title, Kind: kind},
	})
	return item, nil
}

// GetItem retrieves an item by ID.
func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return item, nil
}

// ListItems returns all items in catalog order.
func (s *service) ListItems(ctx context.Context) ([]*Item, error) {
	items := make([]*Item, 0, len(s.order))
	for _, id := range s.order {
		items = append(items, s.items[id])
	}
	return items, nil
}

// Events returns the recorded domain events in order.
func (s *service) Events() []Event {
	return s.events
}
