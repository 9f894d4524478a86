// internal/identity/identity.go
package identity

// Identifiable is implemented by every entity that carries a stable, unique
// string identifier. Transactions report identifiers through this contract
// without caring whether they reference a user or a catalog item.
type Identifiable interface {
	ID() string
}
