package domain

import (
	"github.com/shopspring/decimal"
)

// AccountProfile describes one investment account in the user profile.
type AccountProfile struct {
	Name          string          `yaml:"name"`
	InitialValue  decimal.Decimal `yaml:"initial_value"`
	GrowthRateAvg decimal.Decimal `yaml:"growth_rate_avg"`
}

// Profile is the validated user input for a simulation run. It is treated
// as immutable once loaded; every run builds its own mutable state from it,
// so repeated randomized iterations never observe carried-over state.
type Profile struct {
	// Accounts must hold exactly MaxAccounts entries in the fixed order
	// Individual, Roth, IRA, 401k.
	Accounts []AccountProfile `yaml:"accounts"`

	InitialExpense   decimal.Decimal `yaml:"initial_expense"`
	InitialInflation decimal.Decimal `yaml:"initial_inflation"`

	TakehomeIncome    decimal.Decimal `yaml:"takehome_income"`
	ContributionRoth  decimal.Decimal `yaml:"contribution_roth"`
	ContributionIRA   decimal.Decimal `yaml:"contribution_ira"`
	ContributionR401k decimal.Decimal `yaml:"contribution_r401k"`

	// YearsTillRetirement is the year index at which the takehome income
	// and the three contributions stop.
	YearsTillRetirement int `yaml:"years_till_retirement"`

	// Accepted for forward compatibility with penalty-free withdrawal and
	// pension modeling; the current engine does not consume them.
	YearsTillWithdrawal int             `yaml:"years_till_withdrawal"`
	YearsTillPension    int             `yaml:"years_till_pension"`
	PensionEstimate     decimal.Decimal `yaml:"pension_estimate"`
}

// TotalInitialValue sums the starting balances across all accounts.
func (p *Profile) TotalInitialValue() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Accounts {
		total = total.Add(a.InitialValue)
	}
	return total
}
