package output

import (
	"bytes"
	"fmt"

	"github.com/fundsim/fund-longevity/internal/calculation"
	"github.com/fundsim/fund-longevity/internal/domain"
)

// ConsoleFormatter renders profile echoes and study summaries for the
// terminal.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

// FormatProfile renders the loaded profile for inspection before the
// simulations run.
func (ConsoleFormatter) FormatProfile(p *domain.Profile) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "===========================================================")
	fmt.Fprintln(&buf, "General financial settings:")
	fmt.Fprintf(&buf, "Takehome income (after tax and contributions): %s\n", FormatCurrency(p.TakehomeIncome))
	fmt.Fprintf(&buf, "Annual Roth contribution: %s\n", FormatCurrency(p.ContributionRoth))
	fmt.Fprintf(&buf, "Annual IRA contribution: %s\n", FormatCurrency(p.ContributionIRA))
	fmt.Fprintf(&buf, "Annual 401k contribution: %s\n", FormatCurrency(p.ContributionR401k))
	fmt.Fprintf(&buf, "Expense: %s\n", FormatCurrency(p.InitialExpense))
	fmt.Fprintf(&buf, "Inflation rate: %s\n", FormatRate(p.InitialInflation))
	fmt.Fprintf(&buf, "Pension estimate: %s\n", FormatCurrency(p.PensionEstimate))
	fmt.Fprintf(&buf, "Years till retirement: %d\n", p.YearsTillRetirement)
	fmt.Fprintf(&buf, "Years till withdrawal: %d\n", p.YearsTillWithdrawal)
	fmt.Fprintf(&buf, "Years till pension: %d\n", p.YearsTillPension)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Accounts:")
	for _, account := range p.Accounts {
		fmt.Fprintf(&buf, "%s: initial value %s, average growth %s\n",
			account.Name, FormatCurrency(account.InitialValue), FormatRate(account.GrowthRateAvg))
	}
	fmt.Fprintln(&buf, "===========================================================")
	return buf.String()
}

// FormatStudy renders a study summary: a single longevity line for the
// deterministic scenarios, a binned histogram for the randomized one.
func (ConsoleFormatter) FormatStudy(r *calculation.StudyResult) string {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "----------------------------------------------")
	fmt.Fprintf(&buf, "%s simulation summary\n", r.Scenario)
	fmt.Fprintln(&buf, "----------------------------------------------")

	if r.Scenario != calculation.ScenarioRandomizedRecession {
		fmt.Fprintf(&buf, "Fund longevity = %d years.\n", r.FinalState.FundLongevity)
		return buf.String()
	}

	fmt.Fprintf(&buf, "Fund longevity statistics across %d simulations:\n", r.Iterations)
	total := len(r.Longevity)
	last := len(r.Histogram) - 1
	for b, bin := range r.Histogram {
		pct := float64(bin.Count) / float64(total) * 100
		if b == last {
			fmt.Fprintf(&buf, ">= %d years: %d runs (%.1f%%)\n", bin.MinYears, bin.Count, pct)
		} else {
			fmt.Fprintf(&buf, "%d - %d years: %d runs (%.1f%%)\n", bin.MinYears, bin.MaxYears, bin.Count, pct)
		}
	}
	return buf.String()
}
