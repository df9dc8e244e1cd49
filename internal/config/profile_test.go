package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fundsim/fund-longevity/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validProfileYAML = `accounts:
  - name: Brokerage
    initial_value: 250000
    growth_rate_avg: 0.08
  - name: Roth
    initial_value: 120000
    growth_rate_avg: 0.09
  - name: IRA
    initial_value: 180000
    growth_rate_avg: 0.07
  - name: 401k
    initial_value: 350000
    growth_rate_avg: 0.08
initial_expense: 60000
initial_inflation: 0.025
takehome_income: 90000
contribution_roth: 7000
contribution_ira: 7000
contribution_r401k: 23000
years_till_retirement: 10
years_till_withdrawal: 10
years_till_pension: 20
pension_estimate: 12000
`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	profile, err := LoadProfile(writeProfile(t, validProfileYAML))
	require.NoError(t, err)

	require.Len(t, profile.Accounts, domain.MaxAccounts)
	assert.Equal(t, "Brokerage", profile.Accounts[domain.IndividualIndex].Name)
	assert.Equal(t, "401k", profile.Accounts[domain.R401kIndex].Name)
	assert.True(t, profile.Accounts[0].InitialValue.Equal(decimal.NewFromInt(250000)))
	assert.True(t, profile.Accounts[1].GrowthRateAvg.Equal(decimal.NewFromFloat(0.09)))
	assert.True(t, profile.InitialExpense.Equal(decimal.NewFromInt(60000)))
	assert.True(t, profile.InitialInflation.Equal(decimal.NewFromFloat(0.025)))
	assert.True(t, profile.TakehomeIncome.Equal(decimal.NewFromInt(90000)))
	assert.Equal(t, 10, profile.YearsTillRetirement)
	assert.Equal(t, 20, profile.YearsTillPension)
	assert.True(t, profile.TotalInitialValue().Equal(decimal.NewFromInt(900000)))
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadProfileBadYAML(t *testing.T) {
	_, err := LoadProfile(writeProfile(t, "accounts: [not: {valid"))
	assert.Error(t, err)
}

func TestValidateBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.Profile)
	}{
		{"three accounts", func(p *domain.Profile) { p.Accounts = p.Accounts[:3] }},
		{"unnamed account", func(p *domain.Profile) { p.Accounts[2].Name = "" }},
		{"negative value", func(p *domain.Profile) { p.Accounts[0].InitialValue = decimal.NewFromInt(-1) }},
		{"growth too high", func(p *domain.Profile) { p.Accounts[1].GrowthRateAvg = decimal.NewFromFloat(0.5) }},
		{"negative growth", func(p *domain.Profile) { p.Accounts[1].GrowthRateAvg = decimal.NewFromFloat(-0.01) }},
		{"negative expense", func(p *domain.Profile) { p.InitialExpense = decimal.NewFromInt(-100) }},
		{"negative income", func(p *domain.Profile) { p.TakehomeIncome = decimal.NewFromInt(-100) }},
		{"roth contribution over cap", func(p *domain.Profile) { p.ContributionRoth = decimal.NewFromInt(200000) }},
		{"ira contribution negative", func(p *domain.Profile) { p.ContributionIRA = decimal.NewFromInt(-1) }},
		{"401k contribution over cap", func(p *domain.Profile) { p.ContributionR401k = decimal.NewFromInt(100001) }},
		{"negative pension", func(p *domain.Profile) { p.PensionEstimate = decimal.NewFromInt(-1) }},
		{"inflation too high", func(p *domain.Profile) { p.InitialInflation = decimal.NewFromFloat(0.4) }},
		{"retirement beyond horizon", func(p *domain.Profile) { p.YearsTillRetirement = domain.MaxYears + 1 }},
		{"withdrawal beyond horizon", func(p *domain.Profile) { p.YearsTillWithdrawal = domain.MaxYears + 1 }},
		{"pension beyond horizon", func(p *domain.Profile) { p.YearsTillPension = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ExampleProfile()
			tt.mutate(p)
			assert.Error(t, Validate(p))
		})
	}
}

func TestExampleProfileIsValid(t *testing.T) {
	assert.NoError(t, Validate(ExampleProfile()))
}
