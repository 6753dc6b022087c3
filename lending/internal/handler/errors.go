package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/pkg/circuit_breaker"
)

var statusByErr = []struct {
	err  error
	code int
}{
	{errs.ErrUnauthorized, http.StatusForbidden},
	{errs.ErrNotOwner, http.StatusForbidden},
	{errs.ErrInvalidParams, http.StatusBadRequest},
	{errs.ErrInvalidTitle, http.StatusBadRequest},
	{errs.ErrInvalidAuthor, http.StatusBadRequest},
	{errs.ErrInvalidBookId, http.StatusBadRequest},
	{errs.ErrInvalidReturn, http.StatusBadRequest},
	{errs.ErrBookUnavailable, http.StatusConflict},
	{errs.ErrLimitExceeded, http.StatusConflict},
	{errs.ErrInsufficientFunds, http.StatusPaymentRequired},
	{errs.ErrInsufficientDeposit, http.StatusPaymentRequired},
	{circuit_breaker.ErrOpenCB, http.StatusServiceUnavailable},
}

func (h *Handler) httpError(err error) error {
	for _, m := range statusByErr {
		if errors.Is(err, m.err) {
			return echo.NewHTTPError(m.code, m.err.Error())
		}
	}
	h.log.Error("internal", zap.Error(err))
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// readError reports an unknown book as not found.
func (h *Handler) readError(err error) error {
	if errors.Is(err, errs.ErrInvalidBookId) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return h.httpError(err)
}
