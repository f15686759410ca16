package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dafibh/fortuna/fortuna-planner/internal/domain"
)

// Theme colors
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	moneyStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	borderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// Table is a bordered text table. The first column is left aligned, the rest right aligned.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title in a rounded box.
func RenderTitle(title string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(48).
		Align(lipgloss.Center).
		Padding(0, 1)

	return box.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, numCols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return borderStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle.Render(t.Title) + "\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		cells := make([]string, numCols)
		for i := range numCols {
			h := ""
			if i < len(t.Headers) {
				h = t.Headers[i]
			}
			cells[i] = headerStyle.Render(fmt.Sprintf(" %-*s ", widths[i], h))
		}
		b.WriteString(joinCells(cells))
		b.WriteString(rule("├", "┼", "┤"))
	}

	for _, row := range t.Rows {
		cells := make([]string, numCols)
		for i := range numCols {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if i == 0 {
				cells[i] = valueStyle.Render(fmt.Sprintf(" %-*s ", widths[i], cell))
			} else {
				cells[i] = valueStyle.Render(fmt.Sprintf(" %*s ", widths[i], cell))
			}
		}
		b.WriteString(joinCells(cells))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

func joinCells(cells []string) string {
	sep := borderStyle.Render("│")
	return sep + strings.Join(cells, sep) + sep + "\n"
}

// RenderAllocation renders a scored allocation with the amount each bucket receives.
func RenderAllocation(result *domain.IntelligentAllocationResult) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("ALLOCATION  %s", strings.ToUpper(string(result.Strategy)))))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(domain.Buckets))
	for _, bucket := range domain.Buckets {
		pct := result.Allocation.Pct(bucket)
		rows = append(rows, []string{
			string(bucket),
			FormatPct(pct),
			FormatMoney(result.NetIncome.Mul(decimalFromPct(pct))),
		})
	}
	b.WriteString(RenderTable(Table{
		Headers: []string{"Bucket", "Share", "Amount"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	b.WriteString(RenderTable(Table{
		Title: "Income",
		Rows: [][]string{
			{"Net income", moneyStyle.Render(FormatMoney(result.NetIncome))},
			{"Fixed costs", FormatMoney(result.FixedCosts)},
			{"Disposable", FormatMoney(result.DisposableIncome)},
			{"Fixed cost ratio", FormatPct(result.FixedCostRatio)},
		},
	}))

	if len(result.Reasoning) > 0 {
		b.WriteString("\n  " + headerStyle.Render("Reasoning") + "\n")
		for _, reason := range result.Reasoning {
			b.WriteString("  " + mutedStyle.Render("- "+reason) + "\n")
		}
	}

	return b.String()
}

// RenderStrategy renders the fixed split of a named strategy.
func RenderStrategy(strategy domain.Strategy, allocation domain.BudgetAllocation) string {
	rows := make([][]string, 0, len(domain.Buckets))
	for _, bucket := range domain.Buckets {
		rows = append(rows, []string{string(bucket), FormatPct(allocation.Pct(bucket))})
	}
	return RenderTable(Table{
		Title:   "Strategy " + string(strategy),
		Headers: []string{"Bucket", "Share"},
		Rows:    rows,
	})
}

// RenderWindow renders a cycle window and its length in days.
func RenderWindow(window domain.CycleWindow, paydayDay int) string {
	days := int(window.End.Sub(window.Start).Hours()/24+0.5) + 1
	return RenderTable(Table{
		Title: fmt.Sprintf("Cycle for payday %d", paydayDay),
		Rows: [][]string{
			{"Start", window.Start.Format("2006-01-02")},
			{"End", window.End.Format("2006-01-02")},
			{"Days", fmt.Sprintf("%d", days)},
		},
	})
}
