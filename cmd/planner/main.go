package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-planner/internal/cli"
	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
	"github.com/dafibh/fortuna/fortuna-planner/internal/service"
	"github.com/spf13/cobra"
)

var (
	flagProfile  string
	flagStrategy string
	flagPayday   int
	flagDate     string
)

var rootCmd = &cobra.Command{
	Use:           "planner",
	Short:         "Budget allocation planner",
	Long:          "Score a budget profile, inspect fixed strategies and preview payday cycles.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Compute an allocation from a TOML profile",
	RunE:  runAllocate,
}

var strategyCmd = &cobra.Command{
	Use:       "strategy NAME",
	Short:     "Show the fixed split of a strategy",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(domain.StrategySurvival), string(domain.StrategyBalanced), string(domain.StrategyAggressive)},
	RunE:      runStrategy,
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Show the pay cycle containing a date",
	RunE:  runWindow,
}

func init() {
	allocateCmd.Flags().StringVarP(&flagProfile, "profile", "p", "", "Path to the profile TOML file")
	allocateCmd.Flags().StringVarP(&flagStrategy, "strategy", "s", "", "Use a fixed strategy instead of the scored split")
	_ = allocateCmd.MarkFlagRequired("profile")

	windowCmd.Flags().IntVar(&flagPayday, "payday", 0, "Day of month salary arrives (1-31)")
	windowCmd.Flags().StringVar(&flagDate, "date", "", "Reference date YYYY-MM-DD (default today)")
	_ = windowCmd.MarkFlagRequired("payday")

	rootCmd.AddCommand(allocateCmd, strategyCmd, windowCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func runAllocate(_ *cobra.Command, _ []string) error {
	plan, err := cli.LoadProfile(flagProfile)
	if err != nil {
		return err
	}

	scorer := service.NewAllocationScorer(service.NewFlatRateTaxCalculator(plan.TaxRate))
	result := scorer.ComputeIntelligentAllocation(plan.Profile)

	if flagStrategy != "" {
		strategy := domain.Strategy(strings.ToLower(flagStrategy))
		allocation, err := service.StrategyToAllocation(strategy)
		if err != nil {
			return fmt.Errorf("%w: %s", err, flagStrategy)
		}
		result.Allocation = allocation
		result.Strategy = strategy
		result.Reasoning = append(result.Reasoning, fmt.Sprintf("Overridden by the %s strategy", strategy))
	}

	fmt.Println()
	fmt.Print(cli.RenderAllocation(result))
	return nil
}

func runStrategy(_ *cobra.Command, args []string) error {
	strategy := domain.Strategy(strings.ToLower(args[0]))
	allocation, err := service.StrategyToAllocation(strategy)
	if err != nil {
		return fmt.Errorf("%w: %s", err, args[0])
	}

	fmt.Println()
	fmt.Print(cli.RenderStrategy(strategy, allocation))
	return nil
}

func runWindow(_ *cobra.Command, _ []string) error {
	if flagPayday < domain.MinPaydayDay || flagPayday > domain.MaxPaydayDay {
		return domain.ErrInvalidPayday
	}

	ref := time.Now()
	if flagDate != "" {
		parsed, err := time.ParseInLocation("2006-01-02", flagDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", flagDate, err)
		}
		ref = parsed
	}

	window := service.ComputeCycleWindow(ref, flagPayday)

	fmt.Println()
	fmt.Print(cli.RenderWindow(window, flagPayday))
	return nil
}
