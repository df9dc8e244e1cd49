package calculation

import (
	"fmt"

	"github.com/fundsim/fund-longevity/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountState tracks one account's per-year sequences during a run. All
// sequences hold exactly domain.MaxYears entries.
type AccountState struct {
	Name          string
	GrowthRateAvg decimal.Decimal

	// Values[i] is the pre-distribution balance at the start of year i.
	Values []decimal.Decimal

	// Availability[i] reports whether the account may be drawn from in
	// year i. It models early-withdrawal restrictions on the
	// tax-advantaged accounts before retirement.
	Availability []bool

	// Distributions[i] is the amount withdrawn from the account in year i.
	Distributions []decimal.Decimal

	// GrowthRates[i] is the growth fraction applied to the account in
	// year i, filled in by a GrowthCurveGenerator.
	GrowthRates []decimal.Decimal
}

// SimulationState is the mutable record a single simulation run operates
// on. It is built fresh from an immutable Profile for every run, so that
// repeated iterations never observe state carried over from a prior run.
type SimulationState struct {
	Accounts [domain.MaxAccounts]*AccountState

	// Expense[i] is the modeled living expense for year i; entries past
	// year 0 are projected by the simulator.
	Expense []decimal.Decimal

	// Inflation[i] is the inflation fraction applied between year i and
	// year i+1.
	Inflation []decimal.Decimal

	TakehomeIncome    decimal.Decimal
	ContributionRoth  decimal.Decimal
	ContributionIRA   decimal.Decimal
	ContributionR401k decimal.Decimal

	YearsTillRetirement int

	// CashReserve is the liquidity buffer spent in down-market years.
	CashReserve decimal.Decimal

	// FundLongevity is the number of years successfully funded, set by
	// FundSimulator.Run.
	FundLongevity int
}

// NewSimulationState builds a run state from a profile, checking the
// structural constraints the engine relies on.
func NewSimulationState(p *domain.Profile) (*SimulationState, error) {
	if len(p.Accounts) != domain.MaxAccounts {
		return nil, fmt.Errorf("profile must define exactly %d accounts, got %d", domain.MaxAccounts, len(p.Accounts))
	}
	if p.YearsTillRetirement < 0 || p.YearsTillRetirement > domain.MaxYears {
		return nil, fmt.Errorf("years till retirement must be within [0, %d], got %d", domain.MaxYears, p.YearsTillRetirement)
	}

	s := &SimulationState{
		Expense:             make([]decimal.Decimal, domain.MaxYears),
		Inflation:           make([]decimal.Decimal, domain.MaxYears),
		TakehomeIncome:      p.TakehomeIncome,
		ContributionRoth:    p.ContributionRoth,
		ContributionIRA:     p.ContributionIRA,
		ContributionR401k:   p.ContributionR401k,
		YearsTillRetirement: p.YearsTillRetirement,
	}

	for c, ap := range p.Accounts {
		account := &AccountState{
			Name:          ap.Name,
			GrowthRateAvg: ap.GrowthRateAvg,
			Values:        make([]decimal.Decimal, domain.MaxYears),
			Availability:  make([]bool, domain.MaxYears),
			Distributions: make([]decimal.Decimal, domain.MaxYears),
			GrowthRates:   make([]decimal.Decimal, domain.MaxYears),
		}
		account.Values[0] = ap.InitialValue
		s.Accounts[c] = account
	}

	// The Individual account is always available. The tax-advantaged
	// accounts open once the retirement year is reached, except in year 0,
	// which stays closed regardless.
	for i := 0; i < domain.MaxYears; i++ {
		s.Accounts[domain.IndividualIndex].Availability[i] = true
		open := i > 0 && i >= p.YearsTillRetirement
		s.Accounts[domain.RothIndex].Availability[i] = open
		s.Accounts[domain.IRAIndex].Availability[i] = open
		s.Accounts[domain.R401kIndex].Availability[i] = open
	}

	s.Expense[0] = p.InitialExpense
	for i := range s.Inflation {
		s.Inflation[i] = p.InitialInflation
	}

	return s, nil
}

// DistributableTotal sums the balances of every account eligible for
// withdrawal in the given year.
func (s *SimulationState) DistributableTotal(year int) decimal.Decimal {
	total := decimal.Zero
	for _, account := range s.Accounts {
		if account.Availability[year] {
			total = total.Add(account.Values[year])
		}
	}
	return total
}
