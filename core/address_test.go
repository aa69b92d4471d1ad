package core_test

import (
	"testing"

	"github.com/jmholzer/outvoice-api/core"
	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string {
	return &s
}

func testAddressData() core.AddressData {
	return core.AddressData{
		FirstName:    ptr("Jane"),
		LastName:     ptr("Doe"),
		AddressLine1: ptr("1 Main St"),
		AddressLine2: nil,
		City:         ptr("Springfield"),
		PostCode:     ptr("00000"),
	}
}

func TestAddressKey(t *testing.T) {
	t.Run("ok: equal data produces equal keys", func(t *testing.T) {
		a := testAddressData()
		b := testAddressData()
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("ok: separate allocations of the same text are equal", func(t *testing.T) {
		a := testAddressData()
		b := testAddressData()
		b.FirstName = ptr("Jane")
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("ok: absent field equals absent field", func(t *testing.T) {
		a := testAddressData()
		b := testAddressData()
		a.AddressLine2 = nil
		b.AddressLine2 = nil
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("ok: absent field does not equal empty text", func(t *testing.T) {
		a := testAddressData()
		b := testAddressData()
		a.AddressLine2 = nil
		b.AddressLine2 = ptr("")
		assert.NotEqual(t, a.Key(), b.Key())
	})

	t.Run("ok: case and whitespace are significant", func(t *testing.T) {
		a := testAddressData()
		b := testAddressData()
		b.City = ptr("springfield")
		assert.NotEqual(t, a.Key(), b.Key())

		c := testAddressData()
		c.City = ptr("Springfield ")
		assert.NotEqual(t, a.Key(), c.Key())
	})

	t.Run("ok: every field participates in the key", func(t *testing.T) {
		base := testAddressData()
		for name, change := range map[string]func(*core.AddressData){
			"FirstName":    func(d *core.AddressData) { d.FirstName = ptr("John") },
			"LastName":     func(d *core.AddressData) { d.LastName = ptr("Smith") },
			"AddressLine1": func(d *core.AddressData) { d.AddressLine1 = ptr("2 Main St") },
			"AddressLine2": func(d *core.AddressData) { d.AddressLine2 = ptr("Flat 2") },
			"City":         func(d *core.AddressData) { d.City = ptr("Shelbyville") },
			"PostCode":     func(d *core.AddressData) { d.PostCode = ptr("11111") },
		} {
			changed := testAddressData()
			change(&changed)
			assert.NotEqual(t, base.Key(), changed.Key(),
				"changing %v should change the key", name)
		}
	})

	t.Run("ok: key survives a Data round trip", func(t *testing.T) {
		data := testAddressData()
		address := core.Address{
			ID:           1,
			FirstName:    data.FirstName,
			LastName:     data.LastName,
			AddressLine1: data.AddressLine1,
			AddressLine2: data.AddressLine2,
			City:         data.City,
			PostCode:     data.PostCode,
		}
		assert.Equal(t, data.Key(), address.Data().Key())
	})
}

func TestAddressID(t *testing.T) {
	t.Run("err: zero is not a valid id", func(t *testing.T) {
		_, err := core.NewAddressID(0)
		assert.NotNil(t, err)
	})

	t.Run("ok: parse valid id", func(t *testing.T) {
		id, err := core.ParseAddressID("42")
		assert.Nil(t, err)
		assert.Equal(t, core.AddressID(42), id)
		assert.Equal(t, "42", id.String())
	})

	t.Run("err: invalid ids", func(t *testing.T) {
		for _, value := range []string{"", "abc", "-1", "0", "1.5"} {
			_, err := core.ParseAddressID(value)
			assert.NotNil(t, err, "%q should not be a valid address id", value)
		}
	})
}
