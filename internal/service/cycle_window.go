package service

import (
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/util"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ComputeCycleWindow returns the payday-anchored period containing referenceDate.
// Dates are compared as calendar days at noon in referenceDate's location.
func ComputeCycleWindow(referenceDate time.Time, paydayDay int) domain.CycleWindow {
	ref := util.DateOnly(referenceDate)
	loc := ref.Location()

	anchor := util.CalculateActualDate(ref.Year(), ref.Month(), paydayDay, loc)

	start := anchor
	if ref.Before(anchor) {
		prevYear, prevMonth := util.PreviousMonth(ref.Year(), ref.Month())
		start = util.CalculateActualDate(prevYear, prevMonth, paydayDay, loc)
	}

	nextYear, nextMonth := util.NextMonth(start.Year(), start.Month())
	nextAnchor := util.CalculateActualDate(nextYear, nextMonth, paydayDay, loc)

	return domain.CycleWindow{
		Start: start,
		End:   util.AddDays(nextAnchor, -1),
	}
}

// NewBudgetCycle builds an unsaved cycle for the window containing referenceDate
// with a snapshot of allocation
func NewBudgetCycle(userID string, referenceDate time.Time, paydayDay int, allocation domain.BudgetAllocation, netIncome decimal.Decimal) *domain.BudgetCycle {
	window := ComputeCycleWindow(referenceDate, paydayDay)
	return &domain.BudgetCycle{
		ID:         uuid.New(),
		UserID:     userID,
		StartDate:  window.Start,
		EndDate:    window.End,
		PaydayDay:  paydayDay,
		NeedsPct:   allocation.NeedsPct,
		WantsPct:   allocation.WantsPct,
		SavingsPct: allocation.SavingsPct,
		NetIncome:  netIncome,
		Status:     domain.CycleStatusActive,
	}
}
