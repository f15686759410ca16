package service

import "github.com/dafibh/fortuna/fortuna-planner/internal/domain"

// strategyAllocations are pre-normalized fixed splits
var strategyAllocations = map[domain.Strategy]domain.BudgetAllocation{
	domain.StrategySurvival:   {NeedsPct: 0.9, WantsPct: 0.1, SavingsPct: 0},
	domain.StrategyBalanced:   {NeedsPct: 0.5, WantsPct: 0.3, SavingsPct: 0.2},
	domain.StrategyAggressive: {NeedsPct: 0.4, WantsPct: 0.2, SavingsPct: 0.4},
}

// StrategyToAllocation returns the fixed split for a named strategy
func StrategyToAllocation(strategy domain.Strategy) (domain.BudgetAllocation, error) {
	allocation, ok := strategyAllocations[strategy]
	if !ok {
		return domain.BudgetAllocation{}, domain.ErrInvalidStrategy
	}
	return allocation, nil
}

// StrategyToAllocationOrDefault returns the fixed split for a strategy, or the balanced split when unknown
func StrategyToAllocationOrDefault(strategy domain.Strategy) domain.BudgetAllocation {
	if allocation, ok := strategyAllocations[strategy]; ok {
		return allocation
	}
	return strategyAllocations[domain.StrategyBalanced]
}
