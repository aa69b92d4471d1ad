package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/jmholzer/outvoice-api/core"
)

// ErrBadRequest marks caller mistakes (malformed body, unknown method).
// Wrap it with context: fmt.Errorf("%w: unknown method %q", ErrBadRequest, m).
var ErrBadRequest = errors.New("bad request")

// ErrNotConfigured is returned for endpoints whose collaborator (e.g. the
// mailer) is not configured on this instance.
var ErrNotConfigured = errors.New("not configured on this server")

type errorResponse struct {
	Error string `json:"error"`
}

func (server *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := func() (int, string) {
		switch {
		case errors.Is(err, ErrBadRequest), errors.Is(err, core.ErrInvalidEmailAddress):
			return http.StatusBadRequest, err.Error()
		case errors.Is(err, core.ErrDuplicateAddress):
			return http.StatusConflict, "an identical address already exists"
		case errors.Is(err, core.ErrNotFound):
			return http.StatusNotFound, "not found"
		case errors.Is(err, ErrNotConfigured):
			return http.StatusNotImplemented, err.Error()
		case errors.Is(err, core.ErrStorageUnavailable):
			return http.StatusServiceUnavailable, "storage unavailable"
		}
		return http.StatusInternalServerError, "internal server error"
	}()

	if code >= http.StatusInternalServerError {
		server.logger.Error("Server error", "error", err)
	} else {
		server.logger.Debug("Request rejected", "status", code, "error", err)
	}

	render.Status(r, code)
	render.JSON(w, r, errorResponse{Error: msg})
}
