package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jmholzer/outvoice-api/core"
)

// clientForm is the wire form of a client record, camelCase like the
// frontend sends it. Nullable fields stay pointers: absent and empty are
// different values and both round-trip.
type clientForm struct {
	Method       string  `json:"method"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	PostCode     *string `json:"postCode"`
}

func (f clientForm) addressData() core.AddressData {
	return core.AddressData{
		FirstName:    f.FirstName,
		LastName:     f.LastName,
		AddressLine1: f.AddressLine1,
		AddressLine2: f.AddressLine2,
		City:         f.City,
		PostCode:     f.PostCode,
	}
}

type addressResponse struct {
	ID           string  `json:"id"`
	FirstName    *string `json:"firstName"`
	LastName     *string `json:"lastName"`
	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	City         *string `json:"city"`
	PostCode     *string `json:"postCode"`
}

func newAddressResponse(address core.Address) addressResponse {
	return addressResponse{
		ID:           address.ID.String(),
		FirstName:    address.FirstName,
		LastName:     address.LastName,
		AddressLine1: address.AddressLine1,
		AddressLine2: address.AddressLine2,
		City:         address.City,
		PostCode:     address.PostCode,
	}
}

func newAddressListResponse(addresses []core.Address) []addressResponse {
	list := make([]addressResponse, len(addresses))
	for i, address := range addresses {
		list[i] = newAddressResponse(address)
	}
	return list
}

type successResponse struct {
	Success bool `json:"success"`
}

// handleClient dispatches on the form's method field: add, search or remove.
func (server *Server) handleClient(w http.ResponseWriter, r *http.Request) error {
	var form clientForm
	if err := render.DecodeJSON(r.Body, &form); err != nil {
		return fmt.Errorf("%w: cannot decode client form: %w", ErrBadRequest, err)
	}

	switch form.Method {
	case "add":
		return server.addClient(w, r, form)
	case "search":
		return server.searchClients(w, r, form)
	case "remove":
		return server.removeClient(w, r, form)
	}
	return fmt.Errorf("%w: unknown client method %q", ErrBadRequest, form.Method)
}

func (server *Server) addClient(w http.ResponseWriter, r *http.Request, form clientForm) error {
	address, err := server.store.CreateAddress(r.Context(), form.addressData())
	if err != nil {
		return err
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, newAddressResponse(*address))
	return nil
}

func (server *Server) searchClients(w http.ResponseWriter, r *http.Request, form clientForm) error {
	if form.FirstName == nil || form.LastName == nil {
		return fmt.Errorf("%w: search requires firstName and lastName", ErrBadRequest)
	}
	addresses, err := server.store.SearchAddresses(r.Context(), *form.FirstName, *form.LastName)
	if err != nil {
		return err
	}
	render.JSON(w, r, newAddressListResponse(addresses))
	return nil
}

func (server *Server) removeClient(w http.ResponseWriter, r *http.Request, form clientForm) error {
	err := server.store.RemoveAddress(r.Context(), form.addressData())
	switch {
	case err == nil:
		render.JSON(w, r, successResponse{Success: true})
	case errors.Is(err, core.ErrNotFound):
		// Removing a record that is not there is not an error on this
		// surface, the caller only learns that nothing matched.
		render.JSON(w, r, successResponse{Success: false})
	default:
		return err
	}
	return nil
}
