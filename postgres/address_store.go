package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jmholzer/outvoice-api/core"
)

const addressColumns = `id, first_name, last_name, address_line_1, address_line_2, city, post_code`

// Matches a row on the full six-field identity key. IS NOT DISTINCT FROM
// instead of = so that a NULL argument matches a NULL column, mirroring the
// NULLS NOT DISTINCT unique constraint.
const addressIdentityPredicate = `
	first_name IS NOT DISTINCT FROM $1
	AND last_name IS NOT DISTINCT FROM $2
	AND address_line_1 IS NOT DISTINCT FROM $3
	AND address_line_2 IS NOT DISTINCT FROM $4
	AND city IS NOT DISTINCT FROM $5
	AND post_code IS NOT DISTINCT FROM $6`

func NewAddressStore(db *DB) *AddressStore {
	return &AddressStore{db}
}

// Postgres implementation of the core AddressStore interface.
// The duplicate check is not performed in Go: the insert relies on the
// addresses_identity_key unique constraint, so check-then-insert is atomic at
// the storage layer and concurrent inserts of the same address race safely.
type AddressStore struct {
	db *DB
}

// Force struct to implement the core interface
var _ core.AddressStore = &AddressStore{}

// CreateAddress implements core.AddressStore.CreateAddress
func (s *AddressStore) CreateAddress(
	ctx context.Context,
	data core.AddressData,
) (*core.Address, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO addresses (first_name, last_name, address_line_1, address_line_2, city, post_code)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+addressColumns,
		data.FirstName, data.LastName, data.AddressLine1, data.AddressLine2, data.City, data.PostCode,
	)
	address, err := scanAddress(row)
	if err != nil {
		return nil, ConvertPgError(err)
	}
	return address, nil
}

// AddressExists implements core.AddressStore.AddressExists
func (s *AddressStore) AddressExists(ctx context.Context, data core.AddressData) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM addresses WHERE `+addressIdentityPredicate+`)`,
		data.FirstName, data.LastName, data.AddressLine1, data.AddressLine2, data.City, data.PostCode,
	).Scan(&exists)
	if err != nil {
		return false, ConvertPgError(err)
	}
	return exists, nil
}

// GetAddress implements core.AddressStore.GetAddress
func (s *AddressStore) GetAddress(ctx context.Context, id core.AddressID) (*core.Address, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+addressColumns+` FROM addresses WHERE id = $1`,
		int64(id),
	)
	address, err := scanAddress(row)
	if err != nil {
		return nil, ConvertPgError(err)
	}
	return address, nil
}

// ListAddresses implements core.AddressStore.ListAddresses
func (s *AddressStore) ListAddresses(ctx context.Context) ([]core.Address, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+addressColumns+` FROM addresses ORDER BY id`)
	if err != nil {
		return nil, ConvertPgError(err)
	}
	return collectAddresses(rows)
}

// GetAmountOfAddresses implements core.AddressStore.GetAmountOfAddresses
func (s *AddressStore) GetAmountOfAddresses(ctx context.Context) (uint64, error) {
	var amount int64
	err := s.db.QueryRow(ctx, `SELECT count(*) FROM addresses`).Scan(&amount)
	if err != nil {
		return 0, ConvertPgError(err)
	}
	return uint64(amount), nil
}

// SearchAddresses implements core.AddressStore.SearchAddresses
func (s *AddressStore) SearchAddresses(
	ctx context.Context,
	firstName, lastName string,
) ([]core.Address, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+addressColumns+` FROM addresses
		WHERE first_name = $1 AND last_name = $2
		ORDER BY id`,
		firstName, lastName,
	)
	if err != nil {
		return nil, ConvertPgError(err)
	}
	return collectAddresses(rows)
}

// DeleteAddress implements core.AddressStore.DeleteAddress
func (s *AddressStore) DeleteAddress(ctx context.Context, id core.AddressID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM addresses WHERE id = $1`, int64(id))
	if err != nil {
		return ConvertPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// RemoveAddress implements core.AddressStore.RemoveAddress
func (s *AddressStore) RemoveAddress(ctx context.Context, data core.AddressData) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM addresses WHERE `+addressIdentityPredicate,
		data.FirstName, data.LastName, data.AddressLine1, data.AddressLine2, data.City, data.PostCode,
	)
	if err != nil {
		return ConvertPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

func scanAddress(row pgx.Row) (*core.Address, error) {
	var (
		id      int64
		address core.Address
	)
	err := row.Scan(
		&id,
		&address.FirstName,
		&address.LastName,
		&address.AddressLine1,
		&address.AddressLine2,
		&address.City,
		&address.PostCode,
	)
	if err != nil {
		return nil, err
	}
	addressID, err := core.NewAddressID(uint(id))
	if err != nil {
		return nil, fmt.Errorf("invalid stored address id %v: %w", id, err)
	}
	address.ID = addressID
	return &address, nil
}

func collectAddresses(rows pgx.Rows) ([]core.Address, error) {
	defer rows.Close()
	list := make([]core.Address, 0)
	for rows.Next() {
		address, err := scanAddress(rows)
		if err != nil {
			return nil, ConvertPgError(err)
		}
		list = append(list, *address)
	}
	if err := rows.Err(); err != nil {
		return nil, ConvertPgError(err)
	}
	return list, nil
}
