package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	_ "github.com/Astemirdum/lending-registry/lending/docs"
	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/lending/internal/model"
	"github.com/Astemirdum/lending-registry/pkg/auth"
	md "github.com/Astemirdum/lending-registry/pkg/middleware"
	"github.com/Astemirdum/lending-registry/pkg/validate"
)

type Handler struct {
	lendingSvc LendingService
	statsSvc   StatsService
	blocks     BlockSource
	log        *zap.Logger
}

// New builds the http layer. statsSvc may be nil when the stats
// projection is not running.
func New(lendingSvc LendingService, statsSvc StatsService, blocks BlockSource, log *zap.Logger) *Handler {
	return &Handler{
		lendingSvc: lendingSvc,
		statsSvc:   statsSvc,
		blocks:     blocks,
		log:        log.Named("handler"),
	}
}

// NewRouter mounts the api behind authMW, which must put the caller
// identity into the request context.
func (h *Handler) NewRouter(authMW echo.MiddlewareFunc) *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
		authMW,
	)

	api.POST("/books", h.ListBook)
	api.POST("/books/donations", h.DonateBook)
	api.GET("/books/total", h.GetTotalBooks)
	api.GET("/books/:id", h.GetBookDetails)
	api.GET("/books/:id/status", h.CheckBookStatus)
	api.GET("/books/:id/borrowed", h.IsBookBorrowed)
	api.GET("/books/:id/borrowable", h.IsBookBorrowable)
	api.GET("/books/:id/borrower", h.GetBorrowerDetails)
	api.POST("/books/:id/borrow", h.BorrowBook)
	api.POST("/books/:id/return", h.ReturnBook)
	api.DELETE("/books/:id", h.RemoveBook)
	api.PATCH("/books/:id/price", h.UpdateLendingPrice)
	api.PATCH("/books/:id/title", h.ChangeBookTitle)

	api.GET("/users/:identity/books", h.ListUserBooks)
	api.GET("/users/:identity/account", h.GetUserBooks)
	api.GET("/users/:identity/deposit", h.GetUserDeposit)
	api.GET("/users/:identity/balance", h.GetBalance)

	api.GET("/params", h.GetParams)
	api.PUT("/params/fee", h.SetLendingFee)
	api.PUT("/params/lending-period", h.SetMaxLendingPeriod)
	api.PUT("/params/deposit", h.SetDepositRequirement)
	api.PUT("/params/max-books", h.SetMaxBooksPerUser)

	api.POST("/admin/credit", h.CreditAccount)
	if h.statsSvc != nil {
		api.GET("/stats", h.GetStats)
	}

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// caller stamps the authenticated identity with the current block height.
func (h *Handler) caller(c echo.Context) (model.Caller, error) {
	userName, err := auth.GetUserName(c.Request().Context())
	if err != nil {
		return model.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	}
	return model.Caller{Identity: userName, Block: h.blocks.Height()}, nil
}

func bookID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errs.ErrInvalidBookId.Error())
	}
	return id, nil
}
