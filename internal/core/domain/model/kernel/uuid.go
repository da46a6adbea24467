package kernel

import (
	"fmt"

	"bistro/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not initialized through one of
// the constructor functions. It is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is a value object representing a universally unique identifier.
// It wraps github.com/google/uuid to keep the identifier immutable and to give
// it domain-specific behavior. Order tickets are identified by UUIDs, and any
// future aggregate that needs identity should use this type as well.
//
// The zero value is invalid; construct a UUID with NewUUID, UUIDFromString,
// or UUIDFromBytes. Once constructed a UUID never changes, so it is safe to
// share across goroutines.
//
// Example usage:
//
//	// Mint a fresh ticket identifier
//	ticketID := kernel.NewUUID()
//
//	// Reconstruct one from its text form
//	ticketID, err := kernel.UUIDFromString("3f2504e0-4f89-41d3-9a0c-0305e82c3301")
//	if err != nil {
//	    // handle error
//	}
//
//	// Use as an entity identifier
//	type Ticket struct {
//	    ID kernel.UUID
//	    // other fields...
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random UUID (version 4).
// This is how ticket identifiers are minted when an order is placed.
// The generated value is valid and unique with extremely high probability.
//
// Example:
//
//	ticketID := kernel.NewUUID()
//	fmt.Println(ticketID.String()) // e.g., "3f2504e0-4f89-41d3-9a0c-0305e82c3301"
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its string representation.
// Standard forms are accepted, including:
//   - "67e55044-10b1-426f-9247-bb680e5fe0c8"
//   - "{67e55044-10b1-426f-9247-bb680e5fe0c8}"
//   - "urn:uuid:67e55044-10b1-426f-9247-bb680e5fe0c8"
//
// Returns an error when the string is not a valid UUID. Use this when
// rebuilding identifiers from persistence or from request payloads.
//
// Example:
//
//	id, err := kernel.UUIDFromString("3f2504e0-4f89-41d3-9a0c-0305e82c3301")
//	if err != nil {
//	    return fmt.Errorf("invalid ticket ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a byte slice, which must be exactly
// 16 bytes long. Returns an error when the slice cannot form a valid,
// non-nil UUID. Useful when identifiers travel through binary protocols
// or are stored as raw bytes.
//
// Example:
//
//	bytes := []byte{0x67, 0xe5, 0x50, 0x44, 0x10, 0xb1, 0x42, 0x6f,
//	                 0x92, 0x47, 0xbb, 0x68, 0x0e, 0x5f, 0xe0, 0xc8}
//	id, err := kernel.UUIDFromBytes(bytes)
//	if err != nil {
//	    return fmt.Errorf("invalid ticket ID bytes: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical text form of the UUID,
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" with hexadecimal digits.
// A zero value renders as "00000000-0000-0000-0000-000000000000".
//
// Used for logging, JSON serialization, and anywhere an identifier
// is shown to a person.
//
// Example:
//
//	id := kernel.NewUUID()
//	fmt.Printf("ticket queued with ID: %s\n", id.String())
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns the underlying UUID value.
// Note: this returns the wrapped uuid.UUID, not a byte slice.
// For a byte slice, take id.Bytes()[:].
//
// Intended for integration with libraries that speak the google/uuid
// type directly; prefer the domain type everywhere else.
//
// Example:
//
//	id := kernel.NewUUID()
//	googleUUID := id.Bytes()
//	byteSlice := googleUUID[:]
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs carry the same value.
//
// Example:
//
//	a := kernel.NewUUID()
//	b := kernel.NewUUID()
//	c := a
//
//	fmt.Println(a.IsEqual(b)) // false (different UUIDs)
//	fmt.Println(a.IsEqual(c)) // true (same UUID)
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate checks that the UUID was built through a constructor.
// Returns ErrUUIDIsNotConstructed for the zero (nil) UUID.
//
// Entities call this from their own constructors to reject
// identifiers that were never minted.
//
// Example:
//
//	type Ticket struct {
//	    ID kernel.UUID
//	}
//
//	func NewTicket(id kernel.UUID) (*Ticket, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid ticket ID: %w", err)
//	    }
//	    return &Ticket{ID: id}, nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
