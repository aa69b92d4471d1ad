package core

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

/**
 * DOMAIN
 */

// Address is a stored client mailing address. All six identifying fields are
// nullable: a nil pointer means the field is absent, which is a different
// value than the empty string.
type Address struct {
	ID           AddressID
	FirstName    *string
	LastName     *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	PostCode     *string
}

type (
	AddressID uint
)

func (id AddressID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// NewAddressID parses an address id from any unsigned integer.
func NewAddressID(id uint) (AddressID, error) {
	if id == 0 {
		return 0, errors.New("AddressID cannot be 0")
	}
	return AddressID(id), nil
}

// ParseAddressID parses a string into an address id.
func ParseAddressID(id string) (AddressID, error) {
	integerID, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("cannot parse address id: %w", err)
	}
	if integerID < 0 {
		return 0, errors.New("cannot parse address id: address ids cannot be negative")
	}
	addressID, err := NewAddressID(uint(integerID))
	if err != nil {
		return 0, fmt.Errorf("cannot parse address id: %w", err)
	}
	return addressID, nil
}

// Data returns the identifying fields of the address, without its id.
func (a Address) Data() AddressData {
	return AddressData{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		City:         a.City,
		PostCode:     a.PostCode,
	}
}

/**
 * APPLICATION
 */

// AddressData holds the six identifying fields of an address.
// It is both the creation payload and the identity used for duplicate
// detection: two addresses are duplicates iff all six fields are equal.
type AddressData struct {
	FirstName    *string
	LastName     *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	PostCode     *string
}

// NullText is a text field value with explicit presence. Unlike *string it is
// comparable, so AddressKey can be used as a map key.
type NullText struct {
	Text  string
	Valid bool
}

func toNullText(s *string) NullText {
	if s == nil {
		return NullText{}
	}
	return NullText{Text: *s, Valid: true}
}

// AddressKey is the canonical identity of an address: the six identifying
// fields with presence tracked explicitly. Two AddressKeys are equal exactly
// when the store considers the addresses duplicates; an absent field equals
// another absent field and nothing else, so nil and "" never collide.
// Comparison is exact text equality, no canonicalization: case and whitespace
// are significant exactly as stored.
type AddressKey struct {
	FirstName    NullText
	LastName     NullText
	AddressLine1 NullText
	AddressLine2 NullText
	City         NullText
	PostCode     NullText
}

// Key computes the composite identity key of the address data.
func (d AddressData) Key() AddressKey {
	return AddressKey{
		FirstName:    toNullText(d.FirstName),
		LastName:     toNullText(d.LastName),
		AddressLine1: toNullText(d.AddressLine1),
		AddressLine2: toNullText(d.AddressLine2),
		City:         toNullText(d.City),
		PostCode:     toNullText(d.PostCode),
	}
}

type AddressStore interface {
	// Create a new address with the specified data and return it with its
	// assigned id. Returns ErrDuplicateAddress, without modifying the store,
	// if an address with an equal identity key already exists. The duplicate
	// check and the write are atomic with respect to concurrent calls: of two
	// concurrent creates with equal keys, exactly one succeeds.
	CreateAddress(ctx context.Context, data AddressData) (*Address, error)
	// Report whether an address with an identity key equal to data already
	// exists. Pure query, no side effect.
	AddressExists(ctx context.Context, data AddressData) (bool, error)
	// Retrieve the address with the specified id or ErrNotFound if no such
	// address exists.
	GetAddress(ctx context.Context, id AddressID) (*Address, error)
	// Retrieve all existing addresses.
	ListAddresses(ctx context.Context) ([]Address, error)
	// Retrieve the amount of existing addresses.
	GetAmountOfAddresses(ctx context.Context) (uint64, error)
	// Retrieve all addresses whose first and last name exactly match the
	// specified values.
	SearchAddresses(ctx context.Context, firstName, lastName string) ([]Address, error)
	// Delete the address with the specified id or ErrNotFound if no such
	// address exists.
	DeleteAddress(ctx context.Context, id AddressID) error
	// Delete the address whose identity key equals data or ErrNotFound if no
	// such address exists.
	RemoveAddress(ctx context.Context, data AddressData) error
}
