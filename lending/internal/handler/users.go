package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

func identityParam(c echo.Context) (model.Identity, error) {
	id := c.Param("identity")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, "empty identity")
	}
	return id, nil
}

// ListUserBooks
// @Summary books owned by an identity, in listing order
// @Tags users
// @Produce json
// @Param identity path string true "identity"
// @Success 200 {array} model.BookRecord
// @Router /api/v1/users/{identity}/books [get]
func (h *Handler) ListUserBooks(c echo.Context) error {
	id, err := identityParam(c)
	if err != nil {
		return err
	}
	books := h.lendingSvc.ListUserBooks(c.Request().Context(), id)
	if books == nil {
		books = []model.BookRecord{}
	}
	return c.JSON(http.StatusOK, books)
}

func (h *Handler) GetUserBooks(c echo.Context) error {
	id, err := identityParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.lendingSvc.GetUserBooks(c.Request().Context(), id))
}

func (h *Handler) GetUserDeposit(c echo.Context) error {
	id, err := identityParam(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, model.AmountResponse{
		Identity: id,
		Amount:   h.lendingSvc.GetUserDeposit(c.Request().Context(), id),
	})
}

// GetBalance is open to the identity itself and to the operator.
func (h *Handler) GetBalance(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	id, err := identityParam(c)
	if err != nil {
		return err
	}
	if caller.Identity != id && !h.lendingSvc.IsOperator(caller.Identity) {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrUnauthorized.Error())
	}
	balance, err := h.lendingSvc.GetBalance(c.Request().Context(), id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.AmountResponse{Identity: id, Amount: balance})
}

// CreditAccount
// @Summary mint value into an account, operator only
// @Tags admin
// @Accept json
// @Produce json
// @Param request body model.CreditRequest true "credit"
// @Success 200 {object} model.AmountResponse
// @Failure 400,403 {object} errs.ErrorResponse
// @Router /api/v1/admin/credit [post]
func (h *Handler) CreditAccount(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	var req model.CreditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	balance, err := h.lendingSvc.CreditAccount(c.Request().Context(), caller, req.Identity, req.Amount)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, model.AmountResponse{Identity: req.Identity, Amount: balance})
}

func (h *Handler) GetStats(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	if !h.lendingSvc.IsOperator(caller.Identity) {
		return echo.NewHTTPError(http.StatusForbidden, errs.ErrUnauthorized.Error())
	}
	info, err := h.statsSvc.GetStats(c.Request().Context())
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}
