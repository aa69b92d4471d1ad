package postgres_test

import (
	"context"
	"testing"

	"github.com/jmholzer/outvoice-api/core"
	"github.com/jmholzer/outvoice-api/postgres"
	"github.com/jmholzer/outvoice-api/tests"
	"github.com/stretchr/testify/assert"
)

func TestAddressStore(t *testing.T) {
	db := tests.DB(t)
	store := postgres.NewAddressStore(db)
	ctx := context.Background()
	defer tests.DeleteAllAddresses(store)

	t.Run("ok: create address", func(t *testing.T) {
		data := tests.FakeAddressData()
		address, err := store.CreateAddress(ctx, data)
		tests.Check(err)
		assert.NotNil(t, address, "The address should be created correctly")
		assert.NotZero(t, address.ID)
		assert.Equal(t, data.Key(), address.Data().Key())

		data.AddressLine2 = nil
		address, err = store.CreateAddress(ctx, data)
		tests.Check(err)
		assert.NotNil(t, address, "The second address should be created correctly")
		assert.Nil(t, address.AddressLine2, "AddressLine2 field should be nil")
	})

	t.Run("err: duplicate address is rejected", func(t *testing.T) {
		data := tests.FakeAddressData()
		data.AddressLine2 = nil

		_, err := store.CreateAddress(ctx, data)
		tests.Check(err)
		before, err := store.GetAmountOfAddresses(ctx)
		tests.Check(err)

		duplicate, err := store.CreateAddress(ctx, data)
		assert.Nil(t, duplicate)
		assert.ErrorIs(
			t,
			err,
			core.ErrDuplicateAddress,
			"Creating the same address twice should return ErrDuplicateAddress",
		)

		after, err := store.GetAmountOfAddresses(ctx)
		tests.Check(err)
		assert.Equal(t, before, after, "The rejected insert should not change the store")
	})

	t.Run("ok: absent field and empty text are distinct", func(t *testing.T) {
		withNull := tests.FakeAddressData()
		withNull.AddressLine2 = nil
		withEmpty := withNull
		withEmpty.AddressLine2 = tests.Ptr("")

		_, err := store.CreateAddress(ctx, withNull)
		tests.Check(err)
		_, err = store.CreateAddress(ctx, withEmpty)
		assert.Nil(t, err, "NULL and empty text should not collide on the unique constraint")
	})

	t.Run("ok: one differing field admits insertion", func(t *testing.T) {
		data := tests.FakeAddressData()
		moved := data
		moved.PostCode = tests.Ptr(*data.PostCode + "1")

		_, err := store.CreateAddress(ctx, data)
		tests.Check(err)
		_, err = store.CreateAddress(ctx, moved)
		tests.Check(err)
	})

	t.Run("ok: exists", func(t *testing.T) {
		data := tests.FakeAddressData()
		exists, err := store.AddressExists(ctx, data)
		tests.Check(err)
		assert.False(t, exists)

		_, err = store.CreateAddress(ctx, data)
		tests.Check(err)

		exists, err = store.AddressExists(ctx, data)
		tests.Check(err)
		assert.True(t, exists)
	})

	t.Run("ok: get returns the stored record", func(t *testing.T) {
		data := tests.FakeAddressData()
		created, err := store.CreateAddress(ctx, data)
		tests.Check(err)

		address, err := store.GetAddress(ctx, created.ID)
		tests.Check(err)
		assert.Equal(t, created, address)
	})

	t.Run("ok: delete address", func(t *testing.T) {
		data := tests.FakeAddressData()
		created, err := store.CreateAddress(ctx, data)
		tests.Check(err)

		tests.Check(store.DeleteAddress(ctx, created.ID))

		address, err := store.GetAddress(ctx, created.ID)
		assert.NotNil(t, err, "Getting a deleted address should return an error")
		assert.Nil(t, address, "Getting a deleted address should return nil for the address")
		assert.ErrorIs(
			t,
			err,
			core.ErrNotFound,
			"Getting a deleted address should return ErrNotFound",
		)

		err = store.DeleteAddress(ctx, created.ID)
		assert.ErrorIs(t, err, core.ErrNotFound, "Deleting twice should return ErrNotFound")
	})

	t.Run("ok: remove by identity", func(t *testing.T) {
		data := tests.FakeAddressData()
		_, err := store.CreateAddress(ctx, data)
		tests.Check(err)

		tests.Check(store.RemoveAddress(ctx, data))

		err = store.RemoveAddress(ctx, data)
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("ok: search matches first and last name exactly", func(t *testing.T) {
		data := tests.FakeAddressData()
		data.FirstName = tests.Ptr("Jane")
		data.LastName = tests.Ptr("Doe")
		created, err := store.CreateAddress(ctx, data)
		tests.Check(err)

		results, err := store.SearchAddresses(ctx, "Jane", "Doe")
		tests.Check(err)
		assert.Len(t, results, 1)
		assert.Equal(t, created.ID, results[0].ID)

		results, err = store.SearchAddresses(ctx, "jane", "Doe")
		tests.Check(err)
		assert.Empty(t, results, "Search should be case-sensitive")
	})
}
