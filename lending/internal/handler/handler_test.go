package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/lending-registry/lending/internal/errs"
	"github.com/Astemirdum/lending-registry/lending/internal/handler"
	"github.com/Astemirdum/lending-registry/lending/internal/model"
	"github.com/Astemirdum/lending-registry/pkg/auth"
	"github.com/Astemirdum/lending-registry/pkg/middleware"

	service_mocks "github.com/Astemirdum/lending-registry/lending/internal/handler/mocks"
)

const (
	alice    = "alice"
	bob      = "bob"
	operator = "operator"
	block    = uint64(42)
)

type response struct {
	expectedCode int
	expectedBody string
}

type env struct {
	svc    *service_mocks.MockLendingService
	stats  *service_mocks.MockStatsService
	router *echo.Echo
}

func newEnv(t *testing.T) env {
	c := gomock.NewController(t)
	svc := service_mocks.NewMockLendingService(c)
	stats := service_mocks.NewMockStatsService(c)
	blocks := service_mocks.NewMockBlockSource(c)
	blocks.EXPECT().Height().Return(block).AnyTimes()

	h := handler.New(svc, stats, blocks, zap.NewExample().Named("test"))
	return env{svc: svc, stats: stats, router: h.NewRouter(middleware.AuthContext)}
}

func (e env) do(method, target, user, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, http.NoBody)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if user != "" {
		r.Header.Set(auth.XUserNameHeader, user)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

func requireResponse(t *testing.T, want response, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want.expectedCode, w.Code)
	if want.expectedBody != "" {
		require.Equal(t, want.expectedBody, strings.Trim(w.Body.String(), "\n"))
	}
}

func borrowedDune() model.BookRecord {
	return model.BookRecord{
		ID:           3,
		Owner:        bob,
		Title:        "Dune",
		Author:       "Frank Herbert",
		LendingPrice: 100,
		State: model.Borrowed(model.Loan{
			Borrower:    alice,
			BorrowBlock: block,
			DueBlock:    block + 100,
			Deposit:     10,
		}),
	}
}

func TestHandler_BorrowBook(t *testing.T) {
	t.Parallel()
	type input struct {
		id   string
		user string
	}
	type mockBehavior func(r *service_mocks.MockLendingService, inp input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockLendingService, inp input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), model.Caller{Identity: inp.user, Block: block}, uint64(3)).
					Return(borrowedDune(), nil)
			},
			input: input{id: "3", user: alice},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"owner":"bob","title":"Dune","author":"Frank Herbert","lendingPrice":100,"donated":false,"status":"BORROWED","borrower":"alice","borrowBlock":42}`,
			},
		},
		{
			name:         "err. malformed id",
			mockBehavior: func(r *service_mocks.MockLendingService, inp input) {},
			input:        input{id: "abc", user: alice},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid book id"}`,
			},
		},
		{
			name:         "err. no identity",
			mockBehavior: func(r *service_mocks.MockLendingService, inp input) {},
			input:        input{id: "3"},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user-name is empty"}`,
			},
		},
		{
			name: "err. unavailable",
			mockBehavior: func(r *service_mocks.MockLendingService, inp input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), gomock.Any(), uint64(3)).
					Return(model.BookRecord{}, errs.ErrBookUnavailable)
			},
			input: input{id: "3", user: alice},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"book unavailable"}`,
			},
		},
		{
			name: "err. insufficient funds",
			mockBehavior: func(r *service_mocks.MockLendingService, inp input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), gomock.Any(), uint64(3)).
					Return(model.BookRecord{}, errs.ErrInsufficientFunds)
			},
			input: input{id: "3", user: alice},
			response: response{
				expectedCode: http.StatusPaymentRequired,
				expectedBody: `{"message":"insufficient funds"}`,
			},
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockLendingService, inp input) {
				r.EXPECT().
					BorrowBook(gomock.Any(), gomock.Any(), uint64(3)).
					Return(model.BookRecord{}, errors.New("ledger down"))
			},
			input: input{id: "3", user: alice},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"ledger down"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			tt.mockBehavior(e.svc, tt.input)

			w := e.do(http.MethodPost, fmt.Sprintf("/api/v1/books/%s/borrow", tt.input.id), tt.input.user, "")
			requireResponse(t, tt.response, w)
		})
	}
}

func TestHandler_ListBook(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"title":"Dune","author":"Frank Herbert","price":100}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ListBook(gomock.Any(), model.Caller{Identity: bob, Block: block},
						model.ListBookRequest{Title: "Dune", Author: "Frank Herbert", Price: 100}).
					Return(model.BookRecord{
						ID:           1,
						Owner:        bob,
						Title:        "Dune",
						Author:       "Frank Herbert",
						LendingPrice: 100,
						State:        model.Available(),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"owner":"bob","title":"Dune","author":"Frank Herbert","lendingPrice":100,"donated":false,"status":"AVAILABLE","borrower":null,"borrowBlock":null}`,
			},
		},
		{
			name:         "err. bad json",
			body:         `{"title":`,
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name: "err. invalid title",
			body: `{"title":"","author":"Frank Herbert","price":100}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ListBook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.BookRecord{}, errs.ErrInvalidTitle)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid title"}`,
			},
		},
		{
			name: "err. limit exceeded",
			body: `{"title":"Dune","author":"Frank Herbert","price":100}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					ListBook(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(model.BookRecord{}, errs.ErrLimitExceeded)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"listing limit exceeded"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			tt.mockBehavior(e.svc)

			w := e.do(http.MethodPost, "/api/v1/books", bob, tt.body)
			requireResponse(t, tt.response, w)
		})
	}
}

func TestHandler_Reads(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		target       string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "details",
			target: "/api/v1/books/3",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().GetBookDetails(gomock.Any(), uint64(3)).Return(borrowedDune(), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"owner":"bob","title":"Dune","author":"Frank Herbert","lendingPrice":100,"donated":false,"status":"BORROWED","borrower":"alice","borrowBlock":42}`,
			},
		},
		{
			name:   "details. unknown book",
			target: "/api/v1/books/9",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().GetBookDetails(gomock.Any(), uint64(9)).Return(model.BookRecord{}, errs.ErrInvalidBookId)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"invalid book id"}`,
			},
		},
		{
			name:   "status",
			target: "/api/v1/books/3/status",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().CheckBookStatus(gomock.Any(), uint64(3)).Return(model.StatusInactive, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"status":"INACTIVE"}`,
			},
		},
		{
			name:   "borrowable",
			target: "/api/v1/books/3/borrowable",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().IsBookBorrowable(gomock.Any(), uint64(3)).Return(true, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"value":true}`,
			},
		},
		{
			name:   "borrower. not borrowed",
			target: "/api/v1/books/1/borrower",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					GetBorrowerDetails(gomock.Any(), model.Caller{Identity: alice, Block: block}, uint64(1)).
					Return(nil, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"borrower":null}`,
			},
		},
		{
			name:   "borrower. overdue",
			target: "/api/v1/books/3/borrower",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					GetBorrowerDetails(gomock.Any(), gomock.Any(), uint64(3)).
					Return(&model.BorrowerDetails{Borrower: alice, BorrowBlock: 1, DueBlock: 11, Deposit: 10, Overdue: true}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":3,"borrower":{"borrower":"alice","borrowBlock":1,"dueBlock":11,"deposit":10,"overdue":true}}`,
			},
		},
		{
			name:   "total",
			target: "/api/v1/books/total",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().GetTotalBooks(gomock.Any()).Return(uint64(7))
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"total":7}`,
			},
		},
		{
			name:   "user books. none",
			target: "/api/v1/users/carol/books",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().ListUserBooks(gomock.Any(), "carol").Return(nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
		},
		{
			name:   "account",
			target: "/api/v1/users/bob/account",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().GetUserBooks(gomock.Any(), bob).Return(model.UserAccount{BookCount: 2, BorrowedCount: 1})
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"bookCount":2,"borrowedCount":1}`,
			},
		},
		{
			name:   "deposit",
			target: "/api/v1/users/alice/deposit",
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().GetUserDeposit(gomock.Any(), alice).Return(uint64(20))
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"identity":"alice","amount":20}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			tt.mockBehavior(e.svc)

			w := e.do(http.MethodGet, tt.target, alice, "")
			requireResponse(t, tt.response, w)
		})
	}
}

func TestHandler_SetParams(t *testing.T) {
	t.Parallel()
	params := model.Params{
		LendingFeePercent:  10,
		MaxLendingPeriod:   100,
		DepositRequirement: 10,
		MaxBooksPerUser:    5,
		Operator:           operator,
	}
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		target       string
		user         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:   "fee. ok",
			target: "/api/v1/params/fee",
			user:   operator,
			body:   `{"value":10}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					SetLendingFee(gomock.Any(), model.Caller{Identity: operator, Block: block}, uint64(10)).
					Return(params, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"lendingFeePercent":10,"maxLendingPeriod":100,"depositRequirement":10,"maxBooksPerUser":5,"totalBooks":0,"operator":"operator"}`,
			},
		},
		{
			name:         "fee. value required",
			target:       "/api/v1/params/fee",
			user:         operator,
			body:         `{}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {},
			response:     response{expectedCode: http.StatusBadRequest},
		},
		{
			name:   "deposit. zero",
			target: "/api/v1/params/deposit",
			user:   operator,
			body:   `{"value":0}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					SetDepositRequirement(gomock.Any(), gomock.Any(), uint64(0)).
					Return(model.Params{}, errs.ErrInvalidParams)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"invalid params"}`,
			},
		},
		{
			name:   "max books. not operator",
			target: "/api/v1/params/max-books",
			user:   alice,
			body:   `{"value":3}`,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().
					SetMaxBooksPerUser(gomock.Any(), model.Caller{Identity: alice, Block: block}, uint64(3)).
					Return(model.Params{}, errs.ErrUnauthorized)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"unauthorized"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			tt.mockBehavior(e.svc)

			w := e.do(http.MethodPut, tt.target, tt.user, tt.body)
			requireResponse(t, tt.response, w)
		})
	}
}

func TestHandler_GetBalance(t *testing.T) {
	t.Parallel()
	type mockBehavior func(r *service_mocks.MockLendingService)

	var tests = []struct {
		name         string
		user         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "self",
			user: alice,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().GetBalance(gomock.Any(), alice).Return(uint64(500), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"identity":"alice","amount":500}`,
			},
		},
		{
			name: "operator",
			user: operator,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().IsOperator(operator).Return(true)
				r.EXPECT().GetBalance(gomock.Any(), alice).Return(uint64(500), nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"identity":"alice","amount":500}`,
			},
		},
		{
			name: "someone else",
			user: bob,
			mockBehavior: func(r *service_mocks.MockLendingService) {
				r.EXPECT().IsOperator(bob).Return(false)
			},
			response: response{
				expectedCode: http.StatusForbidden,
				expectedBody: `{"message":"unauthorized"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newEnv(t)
			tt.mockBehavior(e.svc)

			w := e.do(http.MethodGet, "/api/v1/users/alice/balance", tt.user, "")
			requireResponse(t, tt.response, w)
		})
	}
}

func TestHandler_CreditAccount(t *testing.T) {
	t.Parallel()
	e := newEnv(t)
	e.svc.EXPECT().
		CreditAccount(gomock.Any(), model.Caller{Identity: operator, Block: block}, alice, uint64(250)).
		Return(uint64(750), nil)

	w := e.do(http.MethodPost, "/api/v1/admin/credit", operator, `{"identity":"alice","amount":250}`)
	requireResponse(t, response{
		expectedCode: http.StatusOK,
		expectedBody: `{"identity":"alice","amount":750}`,
	}, w)

	w = e.do(http.MethodPost, "/api/v1/admin/credit", operator, `{"identity":"alice","amount":0}`)
	requireResponse(t, response{expectedCode: http.StatusBadRequest}, w)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	e := newEnv(t)

	w := e.do(http.MethodGet, "/manage/health", "", "")
	requireResponse(t, response{expectedCode: http.StatusOK, expectedBody: "OK"}, w)
}
