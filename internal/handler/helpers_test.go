package handler

import (
	"context"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/dafibh/fortuna/fortuna-planner/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/dafibh/fortuna/fortuna-planner/internal/testutil"
	"github.com/labstack/echo/v4"
)

const testUserID = "auth0|test"

// Helper to set up auth context the way Authenticate leaves it
func setupAuthContext(c echo.Context, userID string) {
	claims := &validator.ValidatedClaims{
		RegisteredClaims: validator.RegisteredClaims{
			Subject: userID,
		},
		CustomClaims: &middleware.CustomClaims{Email: "test@example.com", Name: "Test User"},
	}
	ctx := context.WithValue(c.Request().Context(), middleware.ClaimsKey, claims)
	ctx = context.WithValue(ctx, middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

type cycleHandlerFixture struct {
	handler      *CycleHandler
	cycles       *testutil.MockBudgetCycleRepository
	categories   *testutil.MockBudgetCategoryRepository
	transactions *testutil.MockBudgetTransactionRepository
}

func setupCycleHandler() *cycleHandlerFixture {
	cycles := testutil.NewMockBudgetCycleRepository()
	categories := testutil.NewMockBudgetCategoryRepository()
	transactions := testutil.NewMockBudgetTransactionRepository()
	svc := service.NewBudgetCycleService(cycles, categories, transactions, service.NewAllocationScorer(nil))

	return &cycleHandlerFixture{
		handler:      NewCycleHandler(svc),
		cycles:       cycles,
		categories:   categories,
		transactions: transactions,
	}
}

// newRequest builds an authenticated echo context; body may be empty
func newRequest(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	setupAuthContext(c, testUserID)
	return c, rec
}

func noon(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
