package calculation

import (
	"github.com/fundsim/fund-longevity/internal/domain"
	"github.com/shopspring/decimal"
)

// FundSimulator runs the year-by-year depletion loop over a prepared
// SimulationState whose growth curves have already been populated.
type FundSimulator struct {
	Log     Logger
	Reserve ReservePolicy
}

// NewFundSimulator returns a simulator with the no-op logger and the
// default (disabled) reserve replenishment policy.
func NewFundSimulator() *FundSimulator {
	return &FundSimulator{Log: NopLogger{}, Reserve: FixedTargetPolicy{}}
}

// Run simulates years 0..MaxYears-1 and returns the fund longevity: the
// index of the first year whose net expense cannot be covered, or MaxYears
// when every year is funded. The state's FundLongevity field is set to the
// same value. The loop is deterministic; all randomness lives in the
// growth curves generated beforehand.
func (f *FundSimulator) Run(s *SimulationState) int {
	one := decimal.NewFromInt(1)
	individual := s.Accounts[domain.IndividualIndex]

	longevity := domain.MaxYears
	for i := 0; i < domain.MaxYears; i++ {
		// Once the retirement year is reached, recurring income and
		// contributions stop for the remainder of the run.
		if i == s.YearsTillRetirement {
			f.Log.Debugf("year %d: retirement reached, income and contributions stop", domain.BaseYear+i)
			s.TakehomeIncome = decimal.Zero
			s.ContributionRoth = decimal.Zero
			s.ContributionIRA = decimal.Zero
			s.ContributionR401k = decimal.Zero
		}

		// Cash-reserve policy: spend the buffer after a down year, refill
		// it after an up year. The reserve is assumed to stay below one
		// year's expense and is taken as a whole.
		// TODO: support partial reserve use.
		if i > 0 && individual.GrowthRates[i-1].IsNegative() && s.CashReserve.IsPositive() {
			f.Log.Debugf("year %d: cash reserve %s used up", domain.BaseYear+i, s.CashReserve)
			s.Expense[i] = s.Expense[i].Sub(s.CashReserve)
			s.ClearReserve()
		} else if i > 0 && individual.GrowthRates[i-1].IsPositive() && s.CashReserve.IsZero() {
			target := f.Reserve.ReplenishTarget(s, i)
			if s.AddReserve(target, domain.IndividualIndex, i) {
				f.Log.Debugf("year %d: cash reserve replenished to %s", domain.BaseYear+i, s.CashReserve)
			} else {
				f.Log.Debugf("year %d: unable to replenish cash reserve", domain.BaseYear+i)
			}
		}

		distributable := s.DistributableTotal(i)

		// The year's shortfall after income, and any surplus left over for
		// reinvestment.
		netExpense := s.Expense[i].Sub(s.TakehomeIncome)
		if netExpense.IsNegative() {
			netExpense = decimal.Zero
		}
		surplus := s.TakehomeIncome.Sub(s.Expense[i])
		if surplus.IsNegative() {
			surplus = decimal.Zero
		}

		if netExpense.GreaterThan(distributable) {
			if netExpense.LessThanOrEqual(distributable.Add(s.CashReserve)) {
				// The expense exceeds the investments but the reserve
				// bridges the gap this year.
				f.Log.Debugf("year %d: cash reserve %s covers the shortfall", domain.BaseYear+i, s.CashReserve)
				s.Expense[i] = s.Expense[i].Sub(s.CashReserve)
				netExpense = netExpense.Sub(s.CashReserve)
				s.ClearReserve()
			} else {
				longevity = i
				break
			}
		}

		// Withdraw proportionally across the available accounts. A year
		// with nothing to distribute and nothing left to cover distributes
		// zero from every account.
		var percentage decimal.Decimal
		if distributable.IsPositive() {
			percentage = netExpense.Div(distributable)
		}
		f.Log.Debugf("year %d: net expense %s, distributable %s", domain.BaseYear+i, netExpense, distributable)

		for _, account := range s.Accounts {
			if account.Availability[i] {
				account.Distributions[i] = account.Values[i].Mul(percentage)
			} else {
				account.Distributions[i] = decimal.Zero
			}
			// What remains after distribution grows into next year's
			// pre-distribution value.
			if i+1 < domain.MaxYears {
				account.Values[i+1] = account.Values[i].Sub(account.Distributions[i]).Mul(one.Add(account.GrowthRates[i]))
			}
		}

		inflate := one.Add(s.Inflation[i])

		// Before retirement, reinvest the income surplus and the recurring
		// contributions, then grow next year's contributions and income by
		// inflation. Future contribution limits are unknown, so tracking
		// inflation is a reasonable estimate.
		if i < s.YearsTillRetirement && i+1 < domain.MaxYears {
			individual.Values[i+1] = individual.Values[i+1].Add(surplus)
			s.Accounts[domain.RothIndex].Values[i+1] = s.Accounts[domain.RothIndex].Values[i+1].Add(s.ContributionRoth)
			s.Accounts[domain.IRAIndex].Values[i+1] = s.Accounts[domain.IRAIndex].Values[i+1].Add(s.ContributionIRA)
			s.Accounts[domain.R401kIndex].Values[i+1] = s.Accounts[domain.R401kIndex].Values[i+1].Add(s.ContributionR401k)

			s.ContributionRoth = s.ContributionRoth.Mul(inflate)
			s.ContributionIRA = s.ContributionIRA.Mul(inflate)
			s.ContributionR401k = s.ContributionR401k.Mul(inflate)
			s.TakehomeIncome = s.TakehomeIncome.Mul(inflate)
		}

		if i+1 < domain.MaxYears {
			s.Expense[i+1] = s.Expense[i].Mul(inflate)
		}

		// An idle reserve grows with inflation too.
		if s.CashReserve.IsPositive() {
			s.CashReserve = s.CashReserve.Mul(inflate)
		}
	}

	s.FundLongevity = longevity
	f.Log.Debugf("fund lasts %d years", longevity)
	return longevity
}
