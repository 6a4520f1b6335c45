package handlers

import (
	"errors"
	"net/http"

	"github.com/querylens/querylens/framework/web"
	"github.com/querylens/querylens/querytemplates/service"
)

var ErrInvalidLimit = errors.New("limit must be a non-negative integer")

// scanError maps scan failures onto HTTP statuses: unknown project is the
// caller's problem, missing permissions are forbidden, a broken source is a
// bad gateway.
func scanError(err error) error {
	switch {
	case errors.Is(err, service.ErrProjectNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	case errors.Is(err, service.ErrNoJobHistoryAccess):
		return web.NewRequestError(err, http.StatusForbidden)
	case errors.Is(err, service.ErrSourceUnavailable):
		return web.NewRequestError(err, http.StatusBadGateway)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}

func serviceError(err error) error {
	switch {
	case errors.Is(err, service.ErrProjectNotFound), errors.Is(err, service.ErrTemplateNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	default:
		return web.NewRequestError(err, http.StatusInternalServerError)
	}
}
