// Package memory provides an in-memory implementation of the core address
// store, used for tests and ephemeral runs without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jmholzer/outvoice-api/core"
)

func NewAddressStore() *AddressStore {
	return &AddressStore{
		records: make(map[core.AddressID]core.Address),
		index:   make(map[core.AddressKey]core.AddressID),
	}
}

// In-memory implementation of the core AddressStore interface.
// A single mutex guards both maps, so the duplicate check and the write of
// CreateAddress happen in one critical section: of two concurrent creates
// with equal keys, exactly one succeeds.
type AddressStore struct {
	mu      sync.Mutex
	lastID  core.AddressID
	records map[core.AddressID]core.Address
	// index maps the composite identity key of every stored record to its id,
	// for O(1) duplicate detection.
	index map[core.AddressKey]core.AddressID
}

// Force struct to implement the core interface
var _ core.AddressStore = &AddressStore{}

// CreateAddress implements core.AddressStore.CreateAddress
func (s *AddressStore) CreateAddress(
	_ context.Context,
	data core.AddressData,
) (*core.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := data.Key()
	if _, ok := s.index[key]; ok {
		return nil, core.ErrDuplicateAddress
	}

	s.lastID++
	address := core.Address{
		ID:           s.lastID,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		City:         data.City,
		PostCode:     data.PostCode,
	}
	s.records[address.ID] = address
	s.index[key] = address.ID
	return &address, nil
}

// AddressExists implements core.AddressStore.AddressExists
func (s *AddressStore) AddressExists(_ context.Context, data core.AddressData) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.index[data.Key()]
	return ok, nil
}

// GetAddress implements core.AddressStore.GetAddress
func (s *AddressStore) GetAddress(_ context.Context, id core.AddressID) (*core.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	address, ok := s.records[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	return &address, nil
}

// ListAddresses implements core.AddressStore.ListAddresses
func (s *AddressStore) ListAddresses(_ context.Context) ([]core.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]core.Address, 0, len(s.records))
	for _, address := range s.records {
		list = append(list, address)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// GetAmountOfAddresses implements core.AddressStore.GetAmountOfAddresses
func (s *AddressStore) GetAmountOfAddresses(_ context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return uint64(len(s.records)), nil
}

// SearchAddresses implements core.AddressStore.SearchAddresses
func (s *AddressStore) SearchAddresses(
	_ context.Context,
	firstName, lastName string,
) ([]core.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]core.Address, 0)
	for _, address := range s.records {
		if address.FirstName != nil && *address.FirstName == firstName &&
			address.LastName != nil && *address.LastName == lastName {
			list = append(list, address)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// DeleteAddress implements core.AddressStore.DeleteAddress
func (s *AddressStore) DeleteAddress(_ context.Context, id core.AddressID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	address, ok := s.records[id]
	if !ok {
		return core.ErrNotFound
	}
	delete(s.records, id)
	delete(s.index, address.Data().Key())
	return nil
}

// RemoveAddress implements core.AddressStore.RemoveAddress
func (s *AddressStore) RemoveAddress(_ context.Context, data core.AddressData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.index[data.Key()]
	if !ok {
		return core.ErrNotFound
	}
	delete(s.records, id)
	delete(s.index, data.Key())
	return nil
}
