package config

import (
	"fmt"
	"os"

	"github.com/fundsim/fund-longevity/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	maxAvgGrowth    = decimal.NewFromFloat(domain.MaxAvgGrowth)
	maxAvgInflation = decimal.NewFromFloat(domain.MaxAvgInflation)
	maxContribution = decimal.NewFromInt(domain.MaxContribution)
)

// LoadProfile loads and validates a user profile from a YAML file.
func LoadProfile(filename string) (*domain.Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var profile domain.Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&profile); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}

	return &profile, nil
}

// Validate checks a profile against the documented input bounds.
func Validate(p *domain.Profile) error {
	if len(p.Accounts) != domain.MaxAccounts {
		return fmt.Errorf("profile must define exactly %d accounts (Individual, Roth, IRA, 401k), got %d", domain.MaxAccounts, len(p.Accounts))
	}

	for i, account := range p.Accounts {
		if account.Name == "" {
			return fmt.Errorf("account %d: name is required", i)
		}
		if account.InitialValue.IsNegative() {
			return fmt.Errorf("account %s: starting value must be non-negative", account.Name)
		}
		if account.GrowthRateAvg.IsNegative() || account.GrowthRateAvg.GreaterThan(maxAvgGrowth) {
			return fmt.Errorf("account %s: growth rate must be within [0, %s]", account.Name, maxAvgGrowth)
		}
	}

	if p.InitialExpense.IsNegative() {
		return fmt.Errorf("annual expense must be non-negative")
	}
	if p.TakehomeIncome.IsNegative() {
		return fmt.Errorf("takehome income must be non-negative")
	}
	if p.ContributionRoth.IsNegative() || p.ContributionRoth.GreaterThan(maxContribution) {
		return fmt.Errorf("Roth contribution must be non-negative and no more than %s", maxContribution)
	}
	if p.ContributionIRA.IsNegative() || p.ContributionIRA.GreaterThan(maxContribution) {
		return fmt.Errorf("IRA contribution must be non-negative and no more than %s", maxContribution)
	}
	if p.ContributionR401k.IsNegative() || p.ContributionR401k.GreaterThan(maxContribution) {
		return fmt.Errorf("401k contribution must be non-negative and no more than %s", maxContribution)
	}
	if p.PensionEstimate.IsNegative() {
		return fmt.Errorf("pension estimate must be non-negative")
	}
	if p.InitialInflation.IsNegative() || p.InitialInflation.GreaterThan(maxAvgInflation) {
		return fmt.Errorf("inflation must be within [0, %s]", maxAvgInflation)
	}
	if p.YearsTillRetirement < 0 || p.YearsTillRetirement > domain.MaxYears {
		return fmt.Errorf("years till retirement must be within [0, %d]", domain.MaxYears)
	}
	if p.YearsTillWithdrawal < 0 || p.YearsTillWithdrawal > domain.MaxYears {
		return fmt.Errorf("years till withdrawal must be within [0, %d]", domain.MaxYears)
	}
	if p.YearsTillPension < 0 || p.YearsTillPension > domain.MaxYears {
		return fmt.Errorf("years till pension must be within [0, %d]", domain.MaxYears)
	}

	return nil
}

// ExampleProfile returns a plausible profile for documentation and tests.
func ExampleProfile() *domain.Profile {
	return &domain.Profile{
		Accounts: []domain.AccountProfile{
			{Name: "Brokerage", InitialValue: decimal.NewFromInt(250000), GrowthRateAvg: decimal.NewFromFloat(0.08)},
			{Name: "Roth", InitialValue: decimal.NewFromInt(120000), GrowthRateAvg: decimal.NewFromFloat(0.09)},
			{Name: "IRA", InitialValue: decimal.NewFromInt(180000), GrowthRateAvg: decimal.NewFromFloat(0.07)},
			{Name: "401k", InitialValue: decimal.NewFromInt(350000), GrowthRateAvg: decimal.NewFromFloat(0.08)},
		},
		InitialExpense:      decimal.NewFromInt(60000),
		InitialInflation:    decimal.NewFromFloat(0.025),
		TakehomeIncome:      decimal.NewFromInt(90000),
		ContributionRoth:    decimal.NewFromInt(7000),
		ContributionIRA:     decimal.NewFromInt(7000),
		ContributionR401k:   decimal.NewFromInt(23000),
		YearsTillRetirement: 10,
		YearsTillWithdrawal: 10,
		YearsTillPension:    20,
		PensionEstimate:     decimal.NewFromInt(12000),
	}
}
