package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/lending-registry/lending/internal/model"
)

// ListBook
// @Summary list a book for lending
// @Tags books
// @Accept json
// @Produce json
// @Param request body model.ListBookRequest true "book"
// @Success 201 {object} model.BookRecord
// @Failure 400,409 {object} errs.ErrorResponse
// @Router /api/v1/books [post]
func (h *Handler) ListBook(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	var req model.ListBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lendingSvc.ListBook(c.Request().Context(), caller, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// DonateBook
// @Summary donate a book to the operator
// @Tags books
// @Accept json
// @Produce json
// @Param request body model.DonateBookRequest true "book"
// @Success 201 {object} model.BookRecord
// @Failure 400 {object} errs.ErrorResponse
// @Router /api/v1/books/donations [post]
func (h *Handler) DonateBook(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	var req model.DonateBookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lendingSvc.DonateBook(c.Request().Context(), caller, req)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, book)
}

// BorrowBook
// @Summary borrow a book, paying price and fee; balance must cover price plus deposit
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookRecord
// @Failure 400,402,409 {object} errs.ErrorResponse
// @Router /api/v1/books/{id}/borrow [post]
func (h *Handler) BorrowBook(c echo.Context) error {
	return h.transition(c, h.lendingSvc.BorrowBook)
}

// ReturnBook
// @Summary return a borrowed book; the operator refunds the deposit
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookRecord
// @Failure 400,402 {object} errs.ErrorResponse
// @Router /api/v1/books/{id}/return [post]
func (h *Handler) ReturnBook(c echo.Context) error {
	return h.transition(c, h.lendingSvc.ReturnBook)
}

// RemoveBook
// @Summary retire an available book
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookRecord
// @Failure 400,403,409 {object} errs.ErrorResponse
// @Router /api/v1/books/{id} [delete]
func (h *Handler) RemoveBook(c echo.Context) error {
	return h.transition(c, h.lendingSvc.RemoveBook)
}

func (h *Handler) transition(c echo.Context, op func(ctx context.Context, caller model.Caller, id uint64) (model.BookRecord, error)) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	id, err := bookID(c)
	if err != nil {
		return err
	}
	book, err := op(c.Request().Context(), caller, id)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// UpdateLendingPrice
// @Summary change the lending price of an owned book
// @Tags books
// @Accept json
// @Produce json
// @Param id path int true "book id"
// @Param request body model.UpdatePriceRequest true "price"
// @Success 200 {object} model.BookRecord
// @Failure 400,403 {object} errs.ErrorResponse
// @Router /api/v1/books/{id}/price [patch]
func (h *Handler) UpdateLendingPrice(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	id, err := bookID(c)
	if err != nil {
		return err
	}
	var req model.UpdatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lendingSvc.UpdateLendingPrice(c.Request().Context(), caller, id, req.Price)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) ChangeBookTitle(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	id, err := bookID(c)
	if err != nil {
		return err
	}
	var req model.ChangeTitleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	book, err := h.lendingSvc.ChangeBookTitle(c.Request().Context(), caller, id, req.Title)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, book)
}

// GetBookDetails
// @Summary book record by id
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BookRecord
// @Failure 404 {object} errs.ErrorResponse
// @Router /api/v1/books/{id} [get]
func (h *Handler) GetBookDetails(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	book, err := h.lendingSvc.GetBookDetails(c.Request().Context(), id)
	if err != nil {
		return h.readError(err)
	}
	return c.JSON(http.StatusOK, book)
}

func (h *Handler) CheckBookStatus(c echo.Context) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	status, err := h.lendingSvc.CheckBookStatus(c.Request().Context(), id)
	if err != nil {
		return h.readError(err)
	}
	return c.JSON(http.StatusOK, model.BookStatusResponse{ID: id, Status: status})
}

func (h *Handler) IsBookBorrowed(c echo.Context) error {
	return h.flag(c, h.lendingSvc.IsBookBorrowed)
}

func (h *Handler) IsBookBorrowable(c echo.Context) error {
	return h.flag(c, h.lendingSvc.IsBookBorrowable)
}

func (h *Handler) flag(c echo.Context, query func(ctx context.Context, id uint64) (bool, error)) error {
	id, err := bookID(c)
	if err != nil {
		return err
	}
	v, err := query(c.Request().Context(), id)
	if err != nil {
		return h.readError(err)
	}
	return c.JSON(http.StatusOK, model.FlagResponse{ID: id, Value: v})
}

// GetBorrowerDetails
// @Summary current loan of a book, null borrower when not borrowed
// @Tags books
// @Produce json
// @Param id path int true "book id"
// @Success 200 {object} model.BorrowerResponse
// @Failure 404 {object} errs.ErrorResponse
// @Router /api/v1/books/{id}/borrower [get]
func (h *Handler) GetBorrowerDetails(c echo.Context) error {
	caller, err := h.caller(c)
	if err != nil {
		return err
	}
	id, err := bookID(c)
	if err != nil {
		return err
	}
	details, err := h.lendingSvc.GetBorrowerDetails(c.Request().Context(), caller, id)
	if err != nil {
		return h.readError(err)
	}
	return c.JSON(http.StatusOK, model.BorrowerResponse{ID: id, Borrower: details})
}

func (h *Handler) GetTotalBooks(c echo.Context) error {
	return c.JSON(http.StatusOK, model.TotalResponse{Total: h.lendingSvc.GetTotalBooks(c.Request().Context())})
}
