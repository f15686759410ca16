package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func seedCycle(f *cycleHandlerFixture) *domain.BudgetCycle {
	cycle := &domain.BudgetCycle{
		ID:         uuid.New(),
		UserID:     testUserID,
		StartDate:  noon(2026, time.September, 25),
		EndDate:    noon(2026, time.October, 24),
		PaydayDay:  25,
		NeedsPct:   0.5,
		WantsPct:   0.3,
		SavingsPct: 0.2,
		NetIncome:  decimal.NewFromInt(5000),
		Status:     domain.CycleStatusActive,
	}
	f.cycles.AddCycle(cycle)
	return cycle
}

func seedSpend(f *cycleHandlerFixture, cycle *domain.BudgetCycle, needs, wants, savings int64) {
	for bucket, amount := range map[domain.Bucket]int64{
		domain.BucketNeeds:   needs,
		domain.BucketWants:   wants,
		domain.BucketSavings: savings,
	} {
		f.transactions.AddTransaction(&domain.BudgetTransaction{
			CycleID:    cycle.ID,
			Bucket:     bucket,
			Amount:     decimal.NewFromInt(amount),
			OccurredAt: noon(2026, time.October, 1),
		})
	}
}

func TestGetWindow(t *testing.T) {
	f := setupCycleHandler()

	c, rec := newRequest(http.MethodGet, "/api/v1/cycles/window?date=2026-03-15&payday=31", "")
	if err := f.handler.GetWindow(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response CycleWindowResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Start != "2026-02-28" || response.End != "2026-03-30" {
		t.Errorf("Expected 2026-02-28..2026-03-30, got %s..%s", response.Start, response.End)
	}
}

func TestGetWindow_InvalidQuery(t *testing.T) {
	f := setupCycleHandler()

	for _, target := range []string{
		"/api/v1/cycles/window",
		"/api/v1/cycles/window?payday=0",
		"/api/v1/cycles/window?payday=32",
		"/api/v1/cycles/window?payday=5&date=15-03-2026",
	} {
		c, rec := newRequest(http.MethodGet, target, "")
		if err := f.handler.GetWindow(c); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected status 400, got %d", target, rec.Code)
		}
	}
}

func TestStartCycle_Success(t *testing.T) {
	f := setupCycleHandler()

	reqBody := `{"profile": {"stableSalary": "5000", "rent": "1500"}, "paydayDay": 25, "referenceDate": "2026-10-14", "strategy": "balanced"}`
	c, rec := newRequest(http.MethodPost, "/api/v1/cycles", reqBody)

	if err := f.handler.StartCycle(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response StartCycleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Cycle.StartDate != "2026-09-25" || response.Cycle.EndDate != "2026-10-24" {
		t.Errorf("Unexpected window %s..%s", response.Cycle.StartDate, response.Cycle.EndDate)
	}
	if response.Cycle.Allocation != (AllocationResponse{NeedsPct: 0.5, WantsPct: 0.3, SavingsPct: 0.2}) {
		t.Errorf("Expected balanced allocation, got %+v", response.Cycle.Allocation)
	}
	if response.Cycle.NetIncome != "5000.00" {
		t.Errorf("Expected net income '5000.00', got %s", response.Cycle.NetIncome)
	}
	if response.Cycle.Status != "active" {
		t.Errorf("Expected status active, got %s", response.Cycle.Status)
	}
}

func TestStartCycle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		seed       bool
		wantStatus int
	}{
		{"invalid payday", `{"profile": {"stableSalary": "5000"}, "paydayDay": 40}`, false, http.StatusBadRequest},
		{"unknown strategy", `{"profile": {"stableSalary": "5000"}, "paydayDay": 1, "strategy": "yolo"}`, false, http.StatusBadRequest},
		{"bad reference date", `{"profile": {"stableSalary": "5000"}, "paydayDay": 1, "referenceDate": "yesterday"}`, false, http.StatusBadRequest},
		{"bad profile", `{"profile": {}, "paydayDay": 1}`, false, http.StatusBadRequest},
		{"already active", `{"profile": {"stableSalary": "5000"}, "paydayDay": 1}`, true, http.StatusConflict},
		{"malformed body", `{"profile": `, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupCycleHandler()
			if tt.seed {
				seedCycle(f)
			}

			c, rec := newRequest(http.MethodPost, "/api/v1/cycles", tt.body)
			if err := f.handler.StartCycle(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestGetCycle(t *testing.T) {
	f := setupCycleHandler()
	cycle := seedCycle(f)

	c, rec := newRequest(http.MethodGet, "/api/v1/cycles/"+cycle.ID.String(), "", "id", cycle.ID.String())
	if err := f.handler.GetCycle(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	c, rec = newRequest(http.MethodGet, "/api/v1/cycles/not-a-uuid", "", "id", "not-a-uuid")
	if err := f.handler.GetCycle(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	missing := uuid.New().String()
	c, rec = newRequest(http.MethodGet, "/api/v1/cycles/"+missing, "", "id", missing)
	if err := f.handler.GetCycle(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestGetCurrentCycle_None(t *testing.T) {
	f := setupCycleHandler()

	c, rec := newRequest(http.MethodGet, "/api/v1/cycles/current", "")
	if err := f.handler.GetCurrentCycle(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

func TestListCycles(t *testing.T) {
	f := setupCycleHandler()
	seedCycle(f)

	c, rec := newRequest(http.MethodGet, "/api/v1/cycles", "")
	if err := f.handler.ListCycles(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response []CycleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(response) != 1 {
		t.Errorf("Expected 1 cycle, got %d", len(response))
	}
}

func TestCreateCategoryAndRecordTransaction(t *testing.T) {
	f := setupCycleHandler()
	cycle := seedCycle(f)
	id := cycle.ID.String()

	c, rec := newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/categories", `{"bucket": "wants", "name": "Dining", "limit": "400"}`, "id", id)
	if err := f.handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var category CategoryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &category); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if category.Limit != "400.00" {
		t.Errorf("Expected limit '400.00', got %s", category.Limit)
	}

	c, rec = newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/categories", `{"bucket": "wants", "name": "Dining", "limit": "10"}`, "id", id)
	if err := f.handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate, got %d", rec.Code)
	}

	txBody := `{"bucket": "wants", "categoryId": "` + category.ID + `", "description": "Ramen", "amount": "24.50", "occurredAt": "2026-10-02"}`
	c, rec = newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/transactions", txBody, "id", id)
	if err := f.handler.RecordTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var tx TransactionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &tx); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if tx.Amount != "24.50" || tx.OccurredAt != "2026-10-02" {
		t.Errorf("Unexpected transaction %+v", tx)
	}
	if tx.CategoryID == nil || *tx.CategoryID != category.ID {
		t.Errorf("Expected category %s, got %v", category.ID, tx.CategoryID)
	}

	mismatch := `{"bucket": "needs", "categoryId": "` + category.ID + `", "amount": "5"}`
	c, rec = newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/transactions", mismatch, "id", id)
	if err := f.handler.RecordTransaction(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for bucket mismatch, got %d", rec.Code)
	}
}

func TestRecordTransaction_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad amount", `{"bucket": "needs", "amount": "abc"}`},
		{"negative amount", `{"bucket": "needs", "amount": "-3"}`},
		{"bad bucket", `{"bucket": "fun", "amount": "3"}`},
		{"bad category id", `{"bucket": "needs", "categoryId": "nope", "amount": "3"}`},
		{"bad date", `{"bucket": "needs", "amount": "3", "occurredAt": "Oct 2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupCycleHandler()
			id := seedCycle(f).ID.String()

			c, rec := newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/transactions", tt.body, "id", id)
			if err := f.handler.RecordTransaction(c); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", rec.Code)
			}
		})
	}
}

func TestGetSummary(t *testing.T) {
	f := setupCycleHandler()
	cycle := seedCycle(f)
	seedSpend(f, cycle, 2800, 1000, 900)
	id := cycle.ID.String()

	c, rec := newRequest(http.MethodGet, "/api/v1/cycles/"+id+"/summary", "", "id", id)
	if err := f.handler.GetSummary(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var response CycleSummaryResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.TotalSpent != "4700.00" || response.TotalLimit != "5000.00" {
		t.Errorf("Unexpected totals %s / %s", response.TotalSpent, response.TotalLimit)
	}
	if len(response.Buckets) != 3 {
		t.Fatalf("Expected 3 buckets, got %d", len(response.Buckets))
	}
	needs := response.Buckets[0]
	if needs.Bucket != "needs" || needs.Status != domain.ProgressOver || needs.Percentage != "112.0" {
		t.Errorf("Unexpected needs progress %+v", needs)
	}
}

func TestReallocation_SuggestAndApply(t *testing.T) {
	f := setupCycleHandler()
	cycle := seedCycle(f)
	seedSpend(f, cycle, 2800, 1000, 900)
	id := cycle.ID.String()

	c, rec := newRequest(http.MethodGet, "/api/v1/cycles/"+id+"/reallocation", "", "id", id)
	if err := f.handler.GetReallocation(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var suggestion ReallocationResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &suggestion); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if !suggestion.ShouldReallocate {
		t.Fatal("Expected a reallocation suggestion")
	}
	if suggestion.Proposed != (AllocationResponse{NeedsPct: 0.55, WantsPct: 0.25, SavingsPct: 0.2}) {
		t.Errorf("Unexpected proposal %+v", suggestion.Proposed)
	}
	if len(suggestion.Overspent) != 1 || suggestion.Overspent[0].Amount != "300.00" {
		t.Errorf("Unexpected overspent details %+v", suggestion.Overspent)
	}

	c, rec = newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/reallocation", `{"needsPct": 0.55, "wantsPct": 0.25, "savingsPct": 0.2}`, "id", id)
	if err := f.handler.ApplyReallocation(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if cycle.NeedsPct != 0.55 {
		t.Errorf("Expected stored needs 0.55, got %f", cycle.NeedsPct)
	}

	c, rec = newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/reallocation", `{"needsPct": 0.9, "wantsPct": 0.25, "savingsPct": 0.2}`, "id", id)
	if err := f.handler.ApplyReallocation(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for invalid allocation, got %d", rec.Code)
	}
}

func TestRollover_PreviewAndClose(t *testing.T) {
	f := setupCycleHandler()
	cycle := seedCycle(f)
	seedSpend(f, cycle, 2800, 1000, 900)
	id := cycle.ID.String()

	c, rec := newRequest(http.MethodGet, "/api/v1/cycles/"+id+"/rollover", "", "id", id)
	if err := f.handler.GetRollover(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var preview RolloverAmountsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &preview); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if preview != (RolloverAmountsResponse{Needs: "0.00", Wants: "500.00", Savings: "100.00", Total: "600.00"}) {
		t.Errorf("Unexpected preview %+v", preview)
	}

	c, rec = newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/rollover", `{"carry": true}`, "id", id)
	if err := f.handler.RollOver(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var result RollOverResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if result.Closed.Status != "closed" || result.Next.Status != "active" {
		t.Errorf("Unexpected statuses %s / %s", result.Closed.Status, result.Next.Status)
	}
	if result.Next.StartDate != "2026-10-25" {
		t.Errorf("Expected next cycle to start 2026-10-25, got %s", result.Next.StartDate)
	}
	if result.Next.PreviousCycleID == nil || *result.Next.PreviousCycleID != id {
		t.Errorf("Expected previous cycle id %s", id)
	}
	if len(result.Seeded) != 2 {
		t.Errorf("Expected 2 seeded categories, got %d", len(result.Seeded))
	}

	// Rolling the closed cycle again conflicts
	c, rec = newRequest(http.MethodPost, "/api/v1/cycles/"+id+"/rollover", "", "id", id)
	if err := f.handler.RollOver(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rec.Code)
	}
}
