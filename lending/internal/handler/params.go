package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

type paramSetter func(ctx context.Context, caller model.Caller, v uint64) (model.Params, error)

// GetParams
// @Summary current system parameters
// @Tags params
// @Produce json
// @Success 200 {object} model.Params
// @Router /api/v1/params [get]
func (h *Handler) GetParams(c echo.Context) error {
	return c.JSON(http.StatusOK, h.lendingSvc.GetParams(c.Request().Context()))
}

// SetLendingFee
// @Summary set the lending fee percent, operator only
// @Tags params
// @Accept json
// @Produce json
// @Param request body model.ParamRequest true "percent, 0..100"
// @Success 200 {object} model.Params
// @Failure 400,403 {object} errs.ErrorResponse
// @Router /api/v1/params/fee [put]
func (h *Handler) SetLendingFee(c echo.Context) error {
	return h.setParam(c, h.lendingSvc.SetLendingFee)
}

func (h *Handler) SetMaxLendingPeriod(c echo.Context) error {
	return h.setParam(c, h.lendingSvc.SetMaxLendingPeriod)
}

func (h *Handler) SetDepositRequirement(c echo.Context) error {
	return h.setParam(c, h.lendingSvc.SetDepositRequirement)
}

func (h *Handler) SetMaxBooksPerUser(c echo.Context) error {
	return h.setParam(c, h.lendingSvc.SetMaxBooksPerUser)
}

func (h *Handler) setParam(c echo.Context, set paramSetter) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	var req model.ParamRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	params, err := set(c.Request().Context(), caller, *req.Value)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, params)
}
